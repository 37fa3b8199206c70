// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"errors"

	"github.com/xmidt-org/mount/mountdeploy"
	"go.uber.org/zap"
)

// ErrNilDispatcher is returned by WithDispatcher when given a nil Dispatcher.
var ErrNilDispatcher = errors.New("the dispatcher cannot be nil")

// WithConfig sets the adapter's entire configuration.
func WithConfig(sc ServerConfig) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.config = sc
		return nil
	})
}

// WithApplication sets the application instance of the deployment.  This is how
// code supplies an application when the rest of the configuration is unmarshaled.
// A configured application name is left alone, so configuring both fails Start
// with mountdeploy.ErrConfigurationConflict.
func WithApplication(app mountdeploy.Application) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.config.Deployment.Application = app
		return nil
	})
}

// WithSingletons adds singletons to the deployment.
func WithSingletons(s ...any) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.config.Deployment.Singletons = append(a.config.Deployment.Singletons, s...)
		return nil
	})
}

// WithResolver sets the strategy for deploying descriptors.
func WithResolver(r mountdeploy.Resolver) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.resolver = r
		return nil
	})
}

// WithDispatcher sets the Dispatcher.
func WithDispatcher(d Dispatcher) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		if d == nil {
			return ErrNilDispatcher
		}

		a.dispatcher = d
		return nil
	})
}

// WithLogger sets the adapter's logger.  A nil logger discards output.
func WithLogger(l *zap.Logger) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		if l == nil {
			l = zap.NewNop()
		}

		a.logger = l
		return nil
	})
}

// WithListenerFactory replaces the configuration-driven ListenerFactory.
func WithListenerFactory(f ListenerFactory) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.listenerFactory = f
		return nil
	})
}

// WithListenerChain adds listener decorators.
func WithListenerChain(lc ListenerChain) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.listenerChain = a.listenerChain.Append(lc.c...)
		return nil
	})
}

// WithMiddleware adds handler decorators, applied in order.
func WithMiddleware(m ...Middleware) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.middleware = append(a.middleware, m...)
		return nil
	})
}

// WithMetrics instruments the adapter.
func WithMetrics(m *Metrics) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.metrics = m
		return nil
	})
}

// WithServerExit adds callbacks for when the accept loop exits unexpectedly.
func WithServerExit(f ...ServerExit) Option[Adapter] {
	return OptionFunc[Adapter](func(a *Adapter) error {
		a.onExit = append(a.onExit, f...)
		return nil
	})
}
