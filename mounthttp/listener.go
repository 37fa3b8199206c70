// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"net"
	"net/http"

	"github.com/xmidt-org/mount"
	"go.uber.org/fx"
)

// ListenerFactory creates the listener for a server.  The server's Addr is the
// address to bind.
type ListenerFactory interface {
	Listen(context.Context, *http.Server) (net.Listener, error)
}

// ListenerFactoryFunc is a closure ListenerFactory.
type ListenerFactoryFunc func(context.Context, *http.Server) (net.Listener, error)

func (lff ListenerFactoryFunc) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return lff(ctx, s)
}

// ListenerConstructor decorates a net.Listener.
type ListenerConstructor func(net.Listener) net.Listener

// ListenerChain is an immutable sequence of ListenerConstructors.  The zero
// value is an empty chain.
type ListenerChain struct {
	c []ListenerConstructor
}

// NewListenerChain creates a chain whose constructors run in the given order.
func NewListenerChain(c ...ListenerConstructor) ListenerChain {
	return ListenerChain{
		c: append([]ListenerConstructor{}, c...),
	}
}

// Append returns a new chain with more constructors at the end.
func (lc ListenerChain) Append(more ...ListenerConstructor) ListenerChain {
	if len(more) == 0 {
		return lc
	}

	return ListenerChain{
		c: append(append([]ListenerConstructor{}, lc.c...), more...),
	}
}

// Then decorates next.  The first constructor in the chain is the outermost.
func (lc ListenerChain) Then(next net.Listener) net.Listener {
	for i := len(lc.c) - 1; i >= 0; i-- {
		next = lc.c[i](next)
	}

	return next
}

// Factory decorates every listener next creates with this chain.
func (lc ListenerChain) Factory(next ListenerFactory) ListenerFactory {
	if len(lc.c) == 0 {
		return next
	}

	return ListenerFactoryFunc(func(ctx context.Context, s *http.Server) (net.Listener, error) {
		l, err := next.Listen(ctx, s)
		if err == nil {
			l = lc.Then(l)
		}

		return l, err
	})
}

// CaptureListenAddress sends each new listener's actual address to a channel.
// Handy with port 0.  The channel must have room, as the send happens during Start.
func CaptureListenAddress(ch chan<- net.Addr) ListenerConstructor {
	return func(next net.Listener) net.Listener {
		ch <- next.Addr()
		return next
	}
}

// DefaultListenerFactory is the ListenerFactory used when none is configured.
// The zero value listens on "tcp".
type DefaultListenerFactory struct {
	ListenConfig net.ListenConfig

	// Network must be a TCP network.  If unset, "tcp" is used.
	Network string
}

func (f DefaultListenerFactory) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	network := f.Network
	if len(network) == 0 {
		network = "tcp"
	}

	return f.ListenConfig.Listen(ctx, network, s.Addr)
}

// ServerExit is called when a running adapter's accept loop exits on its own,
// i.e. not because of Stop.  The error is whatever the accept loop returned.
type ServerExit func(error)

// ShutdownOnExit returns a ServerExit that shuts down an fx.App, with an exit
// code computed by mount.ExitCodeFor.
func ShutdownOnExit(sh fx.Shutdowner, coder mount.ErrorCoder) ServerExit {
	return func(err error) {
		sh.Shutdown(fx.ExitCode(mount.ExitCodeFor(err, coder)))
	}
}
