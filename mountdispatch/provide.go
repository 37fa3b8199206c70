// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdispatch

import (
	"github.com/xmidt-org/mount"
	"github.com/xmidt-org/mount/mounthttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the logger name used by dispatchers created with Provide.
const Module = "mountdispatch"

// DispatcherIn holds the dependencies for Provide.
type DispatcherIn struct {
	fx.In

	Logger *zap.Logger `optional:"true"`
}

// Provide makes a *Dispatcher available as the mounthttp.Dispatcher component.
func Provide() fx.Option {
	return fx.Provide(
		func(in DispatcherIn) mounthttp.Dispatcher {
			return New(mount.ModuleLogger(Module, in.Logger))
		},
	)
}
