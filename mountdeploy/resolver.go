// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

// Resolver deploys descriptors and computes their routes.  The zero value
// is usable, though it cannot deploy named applications.
type Resolver struct {
	// Registry is used to look up named applications.  If unset, any
	// Descriptor with an ApplicationName fails to deploy.
	Registry *Registry

	// BasePath derives an application's declared base path.  If unset,
	// AnnotatedBasePath is used.
	BasePath BasePathFunc
}

// Deploy validates a descriptor and instantiates its application.
func (r Resolver) Deploy(d Descriptor) (*Deployment, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	app := d.Application
	if app == nil {
		if r.Registry == nil {
			return nil, &ApplicationNotFoundError{Name: d.ApplicationName}
		}

		var err error
		if app, err = r.Registry.New(d.ApplicationName); err != nil {
			return nil, err
		}
	}

	basePath := r.BasePath
	if basePath == nil {
		basePath = AnnotatedBasePath
	}

	deployment := &Deployment{
		descriptor:  d,
		application: app,
		singletons:  NewSingletonSet(app.Singletons()...),
	}

	if p, ok := basePath(app); ok {
		deployment.basePath = p
	}

	for _, s := range d.Singletons {
		deployment.singletons.Add(s)
	}

	return deployment, nil
}

// Resolve deploys a descriptor and computes its Route.  Resolve is idempotent
// for a given descriptor.
func (r Resolver) Resolve(d Descriptor) (Route, error) {
	deployment, err := r.Deploy(d)
	if err != nil {
		return Route{}, err
	}

	return Route{
		RootPath:   ResolveRootPath(d.RootPath, deployment.basePath),
		Deployment: deployment,
	}, nil
}
