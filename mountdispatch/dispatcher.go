// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdispatch

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/mount/mountdeploy"
	"github.com/xmidt-org/mount/mounthttp"
	"github.com/xmidt-org/mount/mountentity"
	"go.uber.org/zap"
)

// Dispatcher routes requests to the Resources of their deployment.  A router
// is built the first time a deployment is seen and attached to it, so it is
// released along with the deployment.
type Dispatcher struct {
	logger *zap.Logger
}

var _ mounthttp.Dispatcher = (*Dispatcher)(nil)

// New creates a Dispatcher.  A nil logger discards output.
func New(l *zap.Logger) *Dispatcher {
	if l == nil {
		l = zap.NewNop()
	}

	return &Dispatcher{
		logger: l,
	}
}

func (d *Dispatcher) newRouter(dep *mountdeploy.Deployment) *mux.Router {
	var (
		router = mux.NewRouter()
		count  int
	)

	if dep != nil {
		for _, s := range dep.Singletons() {
			resource, ok := s.(Resource)
			if !ok {
				continue
			}

			for _, route := range resource.Routes() {
				r := router.Path(route.Path).Handler(routeHandler{route: route})
				if len(route.Method) > 0 {
					r.Methods(route.Method)
				}

				count++
			}
		}
	}

	d.logger.Debug("built router", zap.Int("routes", count))
	return router
}

func (d *Dispatcher) router(dep *mountdeploy.Deployment) *mux.Router {
	if dep == nil {
		return d.newRouter(nil)
	}

	// keyed by dispatcher, so distinct dispatchers never share routes
	r := dep.Attachment(d, func() any {
		return d.newRouter(dep)
	})

	return r.(*mux.Router)
}

// acceptable tests whether an Accept header admits mt.  A missing or unparseable
// header accepts anything.
func acceptable(accept string, mt mountentity.MediaType) bool {
	if len(accept) == 0 || mt.IsZero() {
		return true
	}

	parsed := 0
	for _, v := range strings.Split(accept, ",") {
		candidate, err := mountentity.ParseMediaType(strings.TrimSpace(v))
		if err != nil {
			continue
		}

		parsed++
		if candidate.Matches(mt) {
			return true
		}
	}

	return parsed == 0
}

// Dispatch matches the request against its deployment's routes and invokes the handler.
func (d *Dispatcher) Dispatch(ctx context.Context, r *mounthttp.Request) (*mounthttp.Response, error) {
	var (
		match   mux.RouteMatch
		request = &http.Request{
			Method: r.Method,
			URL:    &url.URL{Path: r.Path},
			Header: r.Header,
		}
	)

	if !d.router(r.Deployment).Match(request, &match) {
		cause := ErrNoRoute
		if errors.Is(match.MatchErr, mux.ErrMethodMismatch) {
			cause = ErrMethodNotAllowed
		}

		return nil, &RouteError{Method: r.Method, Path: r.Path, Err: cause}
	}

	route := match.Handler.(routeHandler).route
	if !acceptable(r.Header.Get("Accept"), route.Produces) {
		return nil, &RouteError{Method: r.Method, Path: r.Path, Err: ErrNotAcceptable}
	}

	result, err := route.Handler(withVars(ctx, match.Vars), r)
	if err != nil {
		return nil, err
	}

	if response, ok := result.(*mounthttp.Response); ok {
		return response, nil
	}

	return &mounthttp.Response{
		Entity:    result,
		MediaType: route.Produces,
	}, nil
}
