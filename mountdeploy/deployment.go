// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

import "sync"

// Deployment is a live Descriptor, with its application instantiated.
// Its configuration is immutable.  Values derived from it, such as a
// dispatcher's routes, can be cached with Attachment and are dropped
// along with the Deployment.
type Deployment struct {
	descriptor  Descriptor
	application Application
	basePath    string
	singletons  SingletonSet

	attachments sync.Map
}

// Descriptor returns the configuration this deployment was created from.
func (d *Deployment) Descriptor() Descriptor {
	return d.descriptor
}

// Application returns the deployed application.
func (d *Deployment) Application() Application {
	return d.application
}

// BasePath returns the base path declared by the application, which will be
// empty if the application declared none.
func (d *Deployment) BasePath() string {
	return d.basePath
}

// Singletons returns the deployment's handler instances: the application's
// singletons followed by the descriptor's, with duplicates removed.
func (d *Deployment) Singletons() []any {
	return d.singletons.Values()
}

// Attachment returns the value stored under key, invoking create to produce it
// the first time key is seen.  Concurrent callers may each invoke create, but all
// of them get the same value.  Keys follow the same rules as for context.WithValue.
func (d *Deployment) Attachment(key any, create func() any) any {
	if v, ok := d.attachments.Load(key); ok {
		return v
	}

	v, _ := d.attachments.LoadOrStore(key, create())
	return v
}
