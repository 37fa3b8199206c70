// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/xmidt-org/mount/mountdeploy"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Adapter binds a deployment to a listener.  Its lifecycle is
// Stopped, Starting, Running, Stopping, and back to Stopped.  Start and Stop
// are serialized, and configuration can only change while Stopped.
//
// An Adapter is safe for concurrent use.
type Adapter struct {
	lock  sync.Mutex
	state atomic.Int32

	config          ServerConfig
	resolver        mountdeploy.Resolver
	dispatcher      Dispatcher
	listenerFactory ListenerFactory
	listenerChain   ListenerChain
	middleware      []Middleware
	metrics         *Metrics
	onExit          []ServerExit
	logger          *zap.Logger

	// these are only set while Running
	route     mountdeploy.Route
	server    *http.Server
	addr      net.Addr
	cancel    context.CancelFunc
	serveDone chan struct{}
}

// NewAdapter creates a stopped Adapter.  Without a dispatcher, every request
// under the root path gets a 404.
func NewAdapter(opts ...Option[Adapter]) (*Adapter, error) {
	a := &Adapter{
		dispatcher: DispatcherFunc(notFound),
		logger:     zap.NewNop(),
	}

	if err := Options[Adapter](opts).Apply(a); err != nil {
		return nil, err
	}

	return a, nil
}

// State returns the current lifecycle state.
func (a *Adapter) State() State {
	return State(a.state.Load())
}

func (a *Adapter) setState(s State) {
	old := State(a.state.Swap(int32(s)))
	a.logger.Debug("state transition", zap.Stringer("from", old), zap.Stringer("to", s))
}

// Config returns a copy of the current configuration.
func (a *Adapter) Config() ServerConfig {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.config
}

// Addr returns the bound address while running, and nil otherwise.
func (a *Adapter) Addr() net.Addr {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.addr
}

// Route returns the resolved route while running.  The zero Route is returned
// when the adapter isn't running.
func (a *Adapter) Route() mountdeploy.Route {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.route
}

// configure runs f against the configuration, but only when stopped.
func (a *Adapter) configure(f func(*ServerConfig)) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.State() != Stopped {
		return ErrAlreadyStarted
	}

	f(&a.config)
	return nil
}

// Configure replaces the entire configuration.
func (a *Adapter) Configure(sc ServerConfig) error {
	return a.configure(func(c *ServerConfig) { *c = sc })
}

// SetHostname sets the interface to bind.
func (a *Adapter) SetHostname(hostname string) error {
	return a.configure(func(c *ServerConfig) { c.Hostname = hostname })
}

// SetPort sets the port to bind.  The port is validated by Start.
func (a *Adapter) SetPort(port int) error {
	return a.configure(func(c *ServerConfig) { c.Port = port })
}

// SetDeployment sets the deployment to serve.
func (a *Adapter) SetDeployment(d mountdeploy.Descriptor) error {
	return a.configure(func(c *ServerConfig) { c.Deployment = d })
}

// SetRootResourcePath sets the manual root path, which wins over any base path
// the application declares.  This fails with ErrAlreadyStarted once started,
// as the route is fixed for a Running period.
func (a *Adapter) SetRootResourcePath(path string) error {
	return a.configure(func(c *ServerConfig) { c.RootResourcePath = path })
}

// Start resolves the deployment's route, binds the listener, and starts
// serving.  On any error, the adapter is left Stopped.
func (a *Adapter) Start(ctx context.Context) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.State() != Stopped {
		return ErrAlreadyStarted
	}

	descriptor := a.config.Descriptor()
	if len(descriptor.ApplicationName) == 0 && descriptor.Application == nil {
		return ErrNotConfigured
	}

	if err := a.config.Validate(); err != nil {
		return err
	}

	a.setState(Starting)
	err := a.start(ctx, descriptor)
	if err != nil {
		a.logger.Error("unable to start", zap.String("address", a.config.Address()), zap.Error(err))
		a.setState(Stopped)
		return err
	}

	a.logger.Info(
		"started",
		zap.Stringer("address", a.addr),
		zap.String("rootPath", a.route.RootPath),
	)

	a.setState(Running)
	return nil
}

func (a *Adapter) start(ctx context.Context, descriptor mountdeploy.Descriptor) error {
	route, err := a.resolver.Resolve(descriptor)
	if err != nil {
		return err
	}

	h := &handler{
		route:            route,
		dispatcher:       a.dispatcher,
		defaultMediaType: a.config.DefaultMediaType,
		logger:           a.logger,
	}

	server := a.config.NewServer(
		chain(a.metrics, a.logger, a.middleware).Then(newRouter(h)),
	)

	runCtx, cancel := context.WithCancel(context.Background())
	server.BaseContext = func(net.Listener) context.Context {
		return runCtx
	}

	var factory ListenerFactory = a.config
	if a.listenerFactory != nil {
		factory = a.listenerFactory
	}

	listener, err := a.listenerChain.Factory(factory).Listen(ctx, server)
	if err != nil {
		cancel()
		return &BindError{Address: server.Addr, Err: err}
	}

	a.route = route
	a.server = server
	a.addr = listener.Addr()
	a.cancel = cancel
	a.serveDone = make(chan struct{})

	go a.serve(runCtx, server, listener, a.serveDone)
	return nil
}

func (a *Adapter) serve(runCtx context.Context, server *http.Server, l net.Listener, done chan<- struct{}) {
	defer close(done)

	err := server.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	// Stop cancels runCtx before closing the server, so this only
	// happens when the accept loop quits on its own
	if runCtx.Err() == nil {
		a.logger.Error("accept loop exited", zap.Error(err))
		for _, f := range a.onExit {
			f(err)
		}
	}
}

// Stop shuts the server down and releases the listener.  In-flight requests
// blocked reading their bodies fail with an I/O error.  Other in-flight requests
// are given until ctx or the configured ShutdownTimeout expires, after which
// connections are closed.  Stop does not return until the accept loop has exited.
//
// Stopping an adapter that isn't running does nothing.
func (a *Adapter) Stop(ctx context.Context) (err error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.State() != Running {
		return nil
	}

	a.setState(Stopping)
	a.cancel()

	if a.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.ShutdownTimeout)
		defer cancel()
	}

	if err = a.server.Shutdown(ctx); err != nil {
		err = multierr.Append(err, a.server.Close())
	}

	<-a.serveDone
	a.logger.Info("stopped", zap.Stringer("address", a.addr), zap.Error(err))

	a.route = mountdeploy.Route{}
	a.server = nil
	a.addr = nil
	a.cancel = nil
	a.serveDone = nil
	a.setState(Stopped)

	return
}
