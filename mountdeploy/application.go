// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

// Application is a deployable unit.  Its singletons are the handler instances
// a dispatcher routes requests to.
type Application interface {
	Singletons() []any
}

// ApplicationPath is an optional interface an Application may implement to
// declare its own base path.
type ApplicationPath interface {
	ApplicationPath() string
}

// BasePathFunc derives the declared base path of an application.  The boolean
// result indicates whether the application declares one at all.
type BasePathFunc func(Application) (string, bool)

// AnnotatedBasePath is the default BasePathFunc.  It consults the ApplicationPath
// interface.  An empty path is treated as undeclared.
func AnnotatedBasePath(app Application) (string, bool) {
	if ap, ok := app.(ApplicationPath); ok {
		p := ap.ApplicationPath()
		return p, len(p) > 0
	}

	return "", false
}

// Basic is a simple Application with a fixed set of singletons.
type Basic struct {
	// Path is the optional declared base path
	Path string

	// Resources are the singletons for this application
	Resources []any
}

func (b Basic) Singletons() []any {
	return append([]any{}, b.Resources...)
}

func (b Basic) ApplicationPath() string {
	return b.Path
}
