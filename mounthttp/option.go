// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import "go.uber.org/multierr"

// Option modifies a target object.
type Option[T any] interface {
	Apply(*T) error
}

// OptionFunc is a closure Option.
type OptionFunc[T any] func(*T) error

func (of OptionFunc[T]) Apply(t *T) error {
	return of(t)
}

// Options groups several options.  Every option is applied, and all errors
// are returned together.
type Options[T any] []Option[T]

func (o Options[T]) Apply(t *T) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// InvalidOption returns an Option that always fails with err.
func InvalidOption[T any](err error) Option[T] {
	return OptionFunc[T](func(*T) error {
		return err
	})
}
