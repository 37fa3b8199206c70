// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounttest

import (
	"fmt"
	"testing"
)

// Testable is the minimal interface required for assertions and testing.
// It is satisfied by *testing.T, *testing.B, and fxtest.TB.
type Testable interface {
	Logf(string, ...any)
	Errorf(string, ...any)
	FailNow()
}

// AsTestable converts a value into a Testable.  The v parameter
// may be a Testable or anything with a T() *testing.T method, such as a testify suite.
//
// If v cannot be coerced into a Testable, this function panics.
func AsTestable(v any) Testable {
	if tt, ok := v.(Testable); ok {
		return tt
	}

	type testHolder interface {
		T() *testing.T
	}

	if th, ok := v.(testHolder); ok {
		return th.T()
	}

	panic(fmt.Errorf("%T cannot be converted into a Testable", v))
}
