// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"net/http"

	"github.com/justinas/alice"
	"go.uber.org/zap"
)

// Middleware decorates the adapter's handler.
type Middleware func(http.Handler) http.Handler

// chain builds the full decoration of the adapter's handler.  Panics are recovered
// innermost, so metrics and caller middleware observe the 500.
func chain(metrics *Metrics, logger *zap.Logger, m []Middleware) alice.Chain {
	c := alice.New()
	if metrics != nil {
		c = c.Append(metrics.Then)
	}

	for _, f := range m {
		c = c.Append(alice.Constructor(f))
	}

	return c.Append(recoverPanics(logger))
}

// committedWriter records whether a response has been started.
type committedWriter struct {
	http.ResponseWriter
	committed bool
}

func (cw *committedWriter) WriteHeader(statusCode int) {
	cw.committed = true
	cw.ResponseWriter.WriteHeader(statusCode)
}

func (cw *committedWriter) Write(p []byte) (int, error) {
	cw.committed = true
	return cw.ResponseWriter.Write(p)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (cw *committedWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}

// recoverPanics keeps a panicking dispatcher from taking down the connection's goroutine
// without a response.  http.ErrAbortHandler is passed through, as net/http expects.
// A response that was already started is left alone, since its status is on the wire.
func recoverPanics(logger *zap.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			cw := &committedWriter{ResponseWriter: rw}
			defer func() {
				v := recover()
				if v == nil {
					return
				}

				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.Error(
					"recovered from panic",
					zap.Any("panic", v),
					zap.String("path", r.URL.Path),
					zap.Bool("committed", cw.committed),
				)

				if !cw.committed {
					rw.WriteHeader(http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}
