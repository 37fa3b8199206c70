// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdispatch

import (
	"errors"
	"net/http"
)

var (
	// ErrNoRoute indicates that no route matched the request path.
	ErrNoRoute = errors.New("no route matches the request path")

	// ErrMethodNotAllowed indicates that a route matched the path but not the method.
	ErrMethodNotAllowed = errors.New("the route does not allow the request method")

	// ErrNotAcceptable indicates that the client does not accept what the route produces.
	ErrNotAcceptable = errors.New("the route's media type is not acceptable")
)

// RouteError describes a request that could not be routed.  It carries the
// HTTP status appropriate for the failure.
type RouteError struct {
	Method string
	Path   string
	Err    error
}

func (re *RouteError) Error() string {
	return re.Method + " " + re.Path + ": " + re.Err.Error()
}

func (re *RouteError) Unwrap() error {
	return re.Err
}

// StatusCode maps the cause to 404, 405, or 406.
func (re *RouteError) StatusCode() int {
	switch {
	case errors.Is(re.Err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed

	case errors.Is(re.Err, ErrNotAcceptable):
		return http.StatusNotAcceptable

	default:
		return http.StatusNotFound
	}
}
