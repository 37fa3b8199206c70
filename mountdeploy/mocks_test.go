// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

// testApplication is an Application that doesn't declare a base path.
type testApplication struct {
	singletons []any
}

func (ta *testApplication) Singletons() []any {
	return ta.singletons
}

// testResource is a singleton used in tests
type testResource struct {
	name string
}
