// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

// Descriptor is the configuration of a single deployment.  Exactly one of
// ApplicationName or Application must be set.
type Descriptor struct {
	// ApplicationName is the name of an application in a Registry.
	ApplicationName string `mapstructure:"application"`

	// Application is an explicit application instance.  This field can only be
	// set in code.
	Application Application `mapstructure:"-"`

	// RootPath is the manual root path.  If set, it overrides any base path
	// the application declares.
	RootPath string

	// Singletons are additional handler instances deployed alongside the
	// application's own singletons.
	Singletons []any `mapstructure:"-"`
}

// Validate checks the mutually exclusive application fields.
func (d Descriptor) Validate() error {
	switch {
	case len(d.ApplicationName) > 0 && d.Application != nil:
		return ErrConfigurationConflict

	case len(d.ApplicationName) == 0 && d.Application == nil:
		return ErrNoApplication

	default:
		return nil
	}
}
