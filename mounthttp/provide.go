// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/mount"
	"github.com/xmidt-org/mount/mountdeploy"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the logger name used by adapters created with Provide.
const Module = "mounthttp"

// AdapterIn is the set of dependencies for an Adapter created with Provide.
type AdapterIn struct {
	fx.In

	// Unmarshaler reads the ServerConfig
	Unmarshaler mount.Unmarshaler

	// Lifecycle runs the adapter's Start and Stop
	Lifecycle fx.Lifecycle

	// Shutdowner stops the app if the accept loop exits unexpectedly
	Shutdowner fx.Shutdowner

	// Dispatcher is the optional Dispatcher.  Options passed to Provide may
	// override it.
	Dispatcher Dispatcher `optional:"true"`

	// Registry is used to look up applications configured by name
	Registry *mountdeploy.Registry `optional:"true"`

	// Logger is the optional application logger
	Logger *zap.Logger `optional:"true"`

	// Registerer, if present, is where the adapter's metrics are registered
	Registerer prometheus.Registerer `optional:"true"`
}

// Provide unmarshals a ServerConfig from the given key and creates an *Adapter
// component whose Start and Stop are bound to the app's lifecycle.  Options
// are applied after the configuration, so they can override it.
func Provide(key string, opts ...Option[Adapter]) fx.Option {
	return fx.Provide(
		func(in AdapterIn) (*Adapter, error) {
			config, err := mount.UnmarshalKey(key, ServerConfig{})(in.Unmarshaler)
			if err != nil {
				return nil, err
			}

			all := Options[Adapter]{
				WithConfig(config),
				WithResolver(mountdeploy.Resolver{Registry: in.Registry}),
				WithLogger(mount.ModuleLogger(Module, in.Logger)),
				WithServerExit(ShutdownOnExit(in.Shutdowner, DefaultExitCodes.Coder())),
			}

			if in.Dispatcher != nil {
				all = append(all, WithDispatcher(in.Dispatcher))
			}

			if in.Registerer != nil {
				m, err := NewMetrics(in.Registerer, "mount")
				if err != nil {
					return nil, err
				}

				all = append(all, WithMetrics(m))
			}

			adapter, err := NewAdapter(append(all, opts...)...)
			if err != nil {
				return nil, err
			}

			in.Lifecycle.Append(fx.Hook{
				OnStart: adapter.Start,
				OnStop:  adapter.Stop,
			})

			return adapter, nil
		},
	)
}
