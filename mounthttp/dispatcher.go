// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/xmidt-org/mount/mountdeploy"
	"github.com/xmidt-org/mount/mountentity"
)

// Request is what a Dispatcher sees of an HTTP request.
type Request struct {
	Method string

	// Path is the request path with the deployment's root path removed.
	// It always begins with a slash.
	Path string

	Query  url.Values
	Header http.Header

	// MediaType is the parsed Content-Type, or the adapter's default
	// media type if the request had none.
	MediaType mountentity.MediaType

	// Body is the request entity.  It can be read once.  Any transport failure,
	// including the adapter stopping mid-read, is an error matching
	// mountentity.ErrIOFailure.
	Body io.Reader

	// Deployment is the deployment this request was routed to.
	Deployment *mountdeploy.Deployment
}

// Text reads the entire body as a string, honoring the charset of MediaType.
func (r *Request) Text() (string, error) {
	return mountentity.ReadString(r.Body, r.MediaType)
}

// DataSource reads the entire body as an immutable snapshot tagged with MediaType.
func (r *Request) DataSource() (mountentity.TaggedBytes, error) {
	return mountentity.ReadAsDataSource(r.Body, r.MediaType)
}

// Response is the result of dispatching a Request.
type Response struct {
	// Status is the HTTP status code.  If unset, http.StatusOK is used when
	// there is an entity and http.StatusNoContent when there isn't.
	Status int

	// Entity is the response value, written with mountentity.NewEntity.
	Entity any

	// MediaType is the optional media type of Entity.  If unset, one is inferred.
	MediaType mountentity.MediaType

	// Header holds any extra response headers.
	Header http.Header
}

// Dispatcher routes a request, already matched to a deployment, to whatever
// handles it.  Errors become error responses; they never affect the server.
type Dispatcher interface {
	Dispatch(context.Context, *Request) (*Response, error)
}

// DispatcherFunc is a closure Dispatcher.
type DispatcherFunc func(context.Context, *Request) (*Response, error)

func (df DispatcherFunc) Dispatch(ctx context.Context, r *Request) (*Response, error) {
	return df(ctx, r)
}

type statusError int

func (se statusError) Error() string {
	return http.StatusText(int(se))
}

func (se statusError) StatusCode() int {
	return int(se)
}

// notFound is the Dispatcher used when none is configured.
func notFound(context.Context, *Request) (*Response, error) {
	return nil, statusError(http.StatusNotFound)
}
