// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"errors"
	"net"
	"net/http"

	"github.com/xmidt-org/mount"
	"github.com/xmidt-org/mount/mountentity"
)

const (
	// ExitServeFailure is the process exit code when a running server's accept
	// loop quits on its own.
	ExitServeFailure = 3

	// ExitBindFailure is the process exit code when a server could not acquire its listener.
	ExitBindFailure = 4
)

// DefaultExitCodes are the exit code rules used by Provide.  Pass DefaultExitCodes.Coder()
// to mount.ExitCodeFor with the error from fx.App.Start to exit the same way on
// startup failures.
var DefaultExitCodes = mount.ExitCodes{
	{Err: ErrBindFailure, Code: ExitBindFailure},
	{Err: nil, Code: ExitServeFailure},
	{Err: net.ErrClosed, Code: ExitServeFailure},
}

var (
	// ErrNotConfigured is returned by Adapter.Start when no deployment was configured.
	ErrNotConfigured = errors.New("no deployment has been configured")

	// ErrAlreadyStarted is returned when an adapter is started twice, or when
	// its configuration is changed while it is not stopped.
	ErrAlreadyStarted = errors.New("the adapter has already been started")

	// ErrInvalidPort indicates a port outside 0-65535.
	ErrInvalidPort = errors.New("the port must be between 0 and 65535, inclusive")

	// ErrBindFailure is matched by every BindError.
	ErrBindFailure = errors.New("unable to bind")
)

// BindError is returned by Adapter.Start when the listener could not be created.
// The adapter is always stopped when this error is returned.
type BindError struct {
	Address string
	Err     error
}

func (be *BindError) Error() string {
	return "unable to bind [" + be.Address + "]: " + be.Err.Error()
}

func (be *BindError) Unwrap() error {
	return be.Err
}

// Is allows a BindError to match ErrBindFailure.
func (be *BindError) Is(target error) bool {
	return target == ErrBindFailure
}

// StatusCoder is implemented by errors that know the HTTP status they map to.
type StatusCoder interface {
	StatusCode() int
}

// StatusFor determines the response status for an error returned while
// handling a request:
//
//   - a StatusCoder in the error chain chooses its own status
//   - entity I/O failures are 400
//   - bad or unsupported request media types are 415
//   - anything else is 500
func StatusFor(err error) int {
	var sc StatusCoder
	switch {
	case errors.As(err, &sc):
		return sc.StatusCode()

	case errors.Is(err, mountentity.ErrIOFailure):
		return http.StatusBadRequest

	case errors.Is(err, mountentity.ErrInvalidMediaType), errors.Is(err, mountentity.ErrUnsupportedCharset):
		return http.StatusUnsupportedMediaType

	default:
		return http.StatusInternalServerError
	}
}
