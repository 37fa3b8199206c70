// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

import "strings"

// Route binds a Deployment to its effective root path.
type Route struct {
	// RootPath is always normalized
	RootPath string

	Deployment *Deployment
}

// Matches tests if a request path falls under this route's root path.  Matching
// happens on segment boundaries, so /api matches /api and /api/x but not /apix.
func (r Route) Matches(path string) bool {
	if r.RootPath == DefaultRootPath {
		return true
	}

	return strings.HasPrefix(path, r.RootPath) &&
		(len(path) == len(r.RootPath) || path[len(r.RootPath)] == '/')
}

// Strip removes the root path from a request path.  The remainder always begins
// with a slash.  The path must already match this route.
func (r Route) Strip(path string) string {
	if r.RootPath != DefaultRootPath {
		path = path[len(r.RootPath):]
	}

	if len(path) == 0 || path[0] != '/' {
		path = "/" + path
	}

	return path
}
