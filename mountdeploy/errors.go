// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

import (
	"errors"
	"strconv"
)

var (
	// ErrConfigurationConflict indicates that a Descriptor named an application
	// and also supplied an application instance.
	ErrConfigurationConflict = errors.New("an application name and an application instance cannot both be set")

	// ErrNoApplication indicates that a Descriptor had neither an application name
	// nor an application instance.
	ErrNoApplication = errors.New("no application has been configured")

	// ErrInvalidConstructor is returned by Registry.Register when the constructor
	// does not produce an Application.
	ErrInvalidConstructor = errors.New("an application constructor must be a function returning an Application and an optional error")
)

// ApplicationNotFoundError is returned when a named application has not been registered.
type ApplicationNotFoundError struct {
	Name string
}

func (anfe *ApplicationNotFoundError) Error() string {
	return "no application registered with the name " + strconv.Quote(anfe.Name)
}
