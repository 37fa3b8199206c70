// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/mount/mountdeploy"
	"github.com/xmidt-org/mount/mountentity"
)

// ServerConfig is the externally configurable part of an Adapter.  It is
// normally unmarshaled with viper.
type ServerConfig struct {
	// Network is the tcp network to listen on.  The default is "tcp".
	Network string

	// Hostname is the interface to bind to.  If unset, all interfaces are used.
	Hostname string

	// Port is the port to bind to.  Zero binds an ephemeral port, which
	// Adapter.Addr will report once started.
	Port int

	// RootResourcePath is the manual root path.  If set, it overrides both the
	// deployment's own RootPath and any base path its application declares.
	RootResourcePath string

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// KeepAlive corresponds to net.ListenConfig.KeepAlive.
	KeepAlive time.Duration

	// ShutdownTimeout bounds how long Stop waits for in-flight requests
	// before closing connections outright.  If unset, only the context
	// passed to Stop applies.
	ShutdownTimeout time.Duration

	// Header supplies HTTP headers to emit on every response.
	Header http.Header

	// DefaultMediaType is the media type of request bodies that have no Content-Type.
	DefaultMediaType mountentity.MediaType

	// Deployment describes the application to serve.
	Deployment mountdeploy.Descriptor
}

// Address is the bind address, in host:port form.
func (sc ServerConfig) Address() string {
	return net.JoinHostPort(sc.Hostname, strconv.Itoa(sc.Port))
}

// Validate checks the bind port.  Deployment validation happens when the
// adapter starts.
func (sc ServerConfig) Validate() error {
	if sc.Port < 0 || sc.Port > 65535 {
		return ErrInvalidPort
	}

	return nil
}

// Descriptor returns the deployment with RootResourcePath applied.
func (sc ServerConfig) Descriptor() mountdeploy.Descriptor {
	d := sc.Deployment
	if len(sc.RootResourcePath) > 0 {
		d.RootPath = sc.RootResourcePath
	}

	return d
}

// NewServer creates the http.Server described by this configuration.  Configured
// headers are added to every response h produces.
func (sc ServerConfig) NewServer(h http.Handler) *http.Server {
	if hd := httpaux.NewHeader(sc.Header); hd.Len() > 0 {
		h = addHeaders(hd, h)
	}

	return &http.Server{
		Addr:              sc.Address(),
		Handler:           h,
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		MaxHeaderBytes:    sc.MaxHeaderBytes,
	}
}

// Listen is the ListenerFactory driven by this configuration.
func (sc ServerConfig) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return DefaultListenerFactory{
		ListenConfig: net.ListenConfig{
			KeepAlive: sc.KeepAlive,
		},
		Network: sc.Network,
	}.Listen(ctx, s)
}

// addHeaders decorates next so that every response carries hd.
func addHeaders(hd httpaux.Header, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		hd.AddTo(rw.Header())
		next.ServeHTTP(rw, r)
	})
}
