// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdispatch

import (
	"context"
	"net/http"

	"github.com/xmidt-org/mount/mounthttp"
	"github.com/xmidt-org/mount/mountentity"
)

// Handler produces the result for a routed request.  The returned value may be
// a *mounthttp.Response, which is used as is.  Any other value becomes the
// response entity.
type Handler func(context.Context, *mounthttp.Request) (any, error)

// Route binds a path template, and optionally a method, to a Handler.
type Route struct {
	// Method is the HTTP method.  If unset, any method matches.
	Method string

	// Path is the gorilla/mux path template, relative to the deployment's root path.
	Path string

	// Produces is the optional media type of the handler's results.  When set,
	// requests whose Accept header excludes it are rejected.
	Produces mountentity.MediaType

	Handler Handler
}

// Resource is implemented by singletons that contribute routes.
type Resource interface {
	Routes() []Route
}

// Routes is a Resource backed by a slice.
type Routes []Route

func (r Routes) Routes() []Route {
	return r
}

// routeHandler carries a Route through mux matching.  It is never served.
type routeHandler struct {
	route Route
}

func (rh routeHandler) ServeHTTP(rw http.ResponseWriter, _ *http.Request) {
	rw.WriteHeader(http.StatusInternalServerError)
}

type varsKey struct{}

// Vars returns the path variables of the current request.  The returned map
// is nil outside of a Handler.
func Vars(ctx context.Context) map[string]string {
	v, _ := ctx.Value(varsKey{}).(map[string]string)
	return v
}

func withVars(ctx context.Context, v map[string]string) context.Context {
	return context.WithValue(ctx, varsKey{}, v)
}
