// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"errors"
	"io"
)

var (
	// ErrIOFailure is matched, via errors.Is, by every error that results from
	// a transport failure while reading or writing an entity.
	ErrIOFailure = errors.New("entity I/O failure")

	// ErrUnsupportedEntity indicates that no encoder could write a value with
	// the requested media type.
	ErrUnsupportedEntity = errors.New("unsupported entity")

	// ErrUnsupportedCharset indicates that a media type named a charset that
	// cannot be decoded.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrInvalidMediaType indicates that a media type could not be parsed.
	ErrInvalidMediaType = errors.New("invalid media type")
)

// IOError is returned when the underlying stream fails during a read or write.
// Any partial result is discarded.
type IOError struct {
	// Op is either "read" or "write"
	Op string

	// Err is the error returned by the stream
	Err error
}

func (e *IOError) Error() string {
	return "entity " + e.Op + " failed: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is allows this error to match ErrIOFailure.
func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

// newIOError wraps err, leaving errors that are already IOErrors alone.
func newIOError(op string, err error) error {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}

	return &IOError{Op: op, Err: err}
}

// failureReader reports every non-EOF error from its source as an IOError.
// This keeps transport failures distinguishable from decoding failures
// when a third-party decoder sits on top of a body.
type failureReader struct {
	source io.Reader
}

func (fr failureReader) Read(p []byte) (int, error) {
	n, err := fr.source.Read(p)
	if err != nil && err != io.EOF {
		err = newIOError("read", err)
	}

	return n, err
}

// Stream wraps a transport body so that every read failure other than io.EOF
// is reported as an IOError.  Use this when handing a raw body to code that
// doesn't go through this package's read functions.
func Stream(source io.Reader) io.Reader {
	if _, ok := source.(failureReader); ok || source == nil {
		return source
	}

	return failureReader{source: source}
}
