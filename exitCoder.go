// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mount

import "errors"

// DefaultErrorExitCode is the process exit code for a failure nothing else claims.
const DefaultErrorExitCode int = 1

// ExitCoder is implemented by errors that choose their own process exit code.
type ExitCoder interface {
	ExitCode() int
}

// codedError attaches an exit code to a failure
type codedError struct {
	error
	code int
}

func (ce codedError) ExitCode() int { return ce.code }

func (ce codedError) Unwrap() error { return ce.error }

// UseExitCode associates an exit code with err.  This function panics if err is nil.
func UseExitCode(err error, code int) error {
	if err == nil {
		panic("mount: an exit code cannot be associated with a nil error")
	}

	return codedError{error: err, code: code}
}

// ErrorCoder computes an exit code for an error, which may be nil.
type ErrorCoder func(error) int

// ExitCode is a single rule: any error matching Err, as reported by errors.Is,
// exits the process with Code.  A nil Err matches only a nil error, which is
// how a server that stopped without reporting a cause gets a nonzero code.
type ExitCode struct {
	Err  error
	Code int
}

// ExitCodes is an ordered list of rules.  The first matching rule wins.
type ExitCodes []ExitCode

// Coder returns an ErrorCoder that applies these rules.  Errors no rule
// matches get DefaultErrorExitCode, while an unmatched nil error is 0.
func (ec ExitCodes) Coder() ErrorCoder {
	rules := append(ExitCodes(nil), ec...)
	return func(err error) int {
		for _, r := range rules {
			if errors.Is(err, r.Err) {
				return r.Code
			}
		}

		if err != nil {
			return DefaultErrorExitCode
		}

		return 0
	}
}

// ExitCodeFor returns the exit code for err.  An ExitCoder anywhere in err's chain
// wins, then coder if supplied, then DefaultErrorExitCode for non-nil errors.
// A nil error with no coder is zero.
func ExitCodeFor(err error, coder ErrorCoder) int {
	var ec ExitCoder
	switch {
	case errors.As(err, &ec):
		return ec.ExitCode()

	case coder != nil:
		return coder(err)

	case err != nil:
		return DefaultErrorExitCode

	default:
		return 0
	}
}
