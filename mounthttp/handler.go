// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/mount/mountdeploy"
	"github.com/xmidt-org/mount/mountentity"
	"go.uber.org/zap"
)

// handler bridges HTTP requests under a route's root path to a Dispatcher.
// Everything it holds is fixed for one Running period.
type handler struct {
	route            mountdeploy.Route
	dispatcher       Dispatcher
	defaultMediaType mountentity.MediaType
	logger           *zap.Logger
}

// newRouter matches the route's root path on segment boundaries.  Anything
// else is a 404 that never reaches the dispatcher.
func newRouter(h *handler) *mux.Router {
	router := mux.NewRouter()
	router.MatcherFunc(func(r *http.Request, _ *mux.RouteMatch) bool {
		return h.route.Matches(r.URL.Path)
	}).Handler(h)

	return router
}

// abortReads makes any blocked body read on this request's connection fail
// as soon as ctx is canceled.
func abortReads(ctx context.Context, rw http.ResponseWriter) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		// not every ResponseWriter supports deadlines, and that's fine
		_ = http.NewResponseController(rw).SetReadDeadline(time.Now())
	})
}

func (h *handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	stop := abortReads(r.Context(), rw)
	defer stop()

	request := &Request{
		Method:     r.Method,
		Path:       h.route.Strip(r.URL.Path),
		Query:      r.URL.Query(),
		Header:     r.Header,
		MediaType:  h.defaultMediaType,
		Body:       mountentity.Stream(r.Body),
		Deployment: h.route.Deployment,
	}

	if ct := r.Header.Get("Content-Type"); len(ct) > 0 {
		var err error
		if request.MediaType, err = mountentity.ParseMediaType(ct); err != nil {
			h.writeError(rw, request, err)
			return
		}
	}

	response, err := h.dispatcher.Dispatch(r.Context(), request)
	if err != nil {
		h.writeError(rw, request, err)
		return
	}

	h.writeResponse(rw, request, response)
}

func (h *handler) writeResponse(rw http.ResponseWriter, request *Request, response *Response) {
	if response == nil {
		response = new(Response)
	}

	// all fallible encoding happens here, before the status is committed
	entity, err := mountentity.NewEntity(response.Entity, response.MediaType)
	if err != nil {
		h.writeStatus(rw, request, http.StatusInternalServerError, err)
		return
	}

	header := rw.Header()
	for name, values := range response.Header {
		header[name] = append(header[name], values...)
	}

	if mt := entity.MediaType(); !mt.IsZero() {
		header.Set("Content-Type", mt.String())
	}

	status := response.Status
	if status == 0 {
		status = http.StatusOK
		if response.Entity == nil {
			status = http.StatusNoContent
		}
	}

	// a known size gets a Content-Length, otherwise net/http streams the body
	if size := entity.Size(); size >= 0 && status != http.StatusNoContent {
		header.Set("Content-Length", strconv.FormatInt(size, 10))
	}

	rw.WriteHeader(status)
	if err := entity.Write(rw); err != nil {
		// the status is already on the wire, so all that's left is to stop writing
		h.logger.Error(
			"unable to write response entity",
			zap.String("path", request.Path),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(rw http.ResponseWriter, request *Request, err error) {
	h.writeStatus(rw, request, StatusFor(err), err)
}

func (h *handler) writeStatus(rw http.ResponseWriter, request *Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("dispatch failed", zap.String("method", request.Method), zap.String("path", request.Path), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("method", request.Method), zap.String("path", request.Path), zap.Int("status", status), zap.Error(err))
	}

	http.Error(rw, http.StatusText(status), status)
}
