// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mount

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Module is the logger name used by code in this package.
const Module = "mount"

// ModuleLogger returns a logger named for a module.  If l is nil, the zap global
// logger is used, which discards everything unless the application replaces it.
func ModuleLogger(module string, l *zap.Logger) *zap.Logger {
	if l == nil {
		l = zap.L()
	}

	return l.Named(module)
}

// Logger supplies l as the application's *zap.Logger component and also routes
// fx's own lifecycle events through it.
func Logger(l *zap.Logger) fx.Option {
	if l == nil {
		l = zap.NewNop()
	}

	return fx.Options(
		fx.Supply(l),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
	)
}

// TestLogger is Logger with output sent to a test's log.
func TestLogger(t zaptest.TestingT, opts ...zaptest.LoggerOption) fx.Option {
	return Logger(zaptest.NewLogger(t, opts...))
}
