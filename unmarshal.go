// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mount

// UnmarshalKey returns an fx constructor for a T read from the given configuration key.
// An empty key unmarshals the whole configuration.  The prototype supplies defaults
// for anything the configuration omits.
func UnmarshalKey[T any](key string, prototype T) func(Unmarshaler) (T, error) {
	return func(u Unmarshaler) (T, error) {
		var (
			target = prototype
			err    error
		)

		if len(key) > 0 {
			err = u.UnmarshalKey(key, &target)
		} else {
			err = u.Unmarshal(&target)
		}

		return target, err
	}
}
