// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

import "strings"

// DefaultRootPath is used when neither a manual root path nor an application
// base path is available.
const DefaultRootPath = "/"

// Normalize ensures that path has a leading slash and no trailing slashes.
// The empty string, along with any path made up only of slashes, normalizes to "/".
func Normalize(path string) string {
	path = strings.TrimRight(path, "/")
	switch {
	case len(path) == 0:
		return DefaultRootPath

	case path[0] != '/':
		return "/" + path

	default:
		return path
	}
}

// ResolveRootPath computes the effective root path.  A non-empty manual path wins,
// then a non-empty annotated path, then DefaultRootPath.  The result is always normalized.
func ResolveRootPath(manual, annotated string) string {
	switch {
	case len(manual) > 0:
		return Normalize(manual)

	case len(annotated) > 0:
		return Normalize(annotated)

	default:
		return DefaultRootPath
	}
}
