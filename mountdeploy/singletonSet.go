// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

import "reflect"

// identity is the key for values that cannot be used directly as map keys,
// such as maps, slices, and funcs.
type identity struct {
	t reflect.Type
	p uintptr
}

func identityOf(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		return v
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return identity{t: rv.Type(), p: rv.Pointer()}

	default:
		// a struct or array holding something incomparable has no identity
		// beyond itself, so every such value is distinct
		return new(byte)
	}
}

// SingletonSet is an insertion-ordered set of handler instances where membership
// is by identity.  Pointers are the same singleton only when they point to the
// same object.  The zero value is an empty set ready to use.
type SingletonSet struct {
	keys   map[any]struct{}
	values []any
}

// NewSingletonSet creates a set containing the given singletons, skipping nils and duplicates.
func NewSingletonSet(singletons ...any) SingletonSet {
	var ss SingletonSet
	for _, s := range singletons {
		ss.Add(s)
	}

	return ss
}

// Add inserts a singleton.  This method returns false if v was nil or was already present.
func (ss *SingletonSet) Add(v any) bool {
	if v == nil {
		return false
	}

	key := identityOf(v)
	if _, exists := ss.keys[key]; exists {
		return false
	}

	if ss.keys == nil {
		ss.keys = make(map[any]struct{})
	}

	ss.keys[key] = struct{}{}
	ss.values = append(ss.values, v)
	return true
}

// Contains tests if v is a member of this set.
func (ss SingletonSet) Contains(v any) bool {
	if v == nil {
		return false
	}

	_, exists := ss.keys[identityOf(v)]
	return exists
}

// Len returns the number of singletons.
func (ss SingletonSet) Len() int {
	return len(ss.values)
}

// Values returns the singletons, in insertion order.  The returned slice is a copy.
func (ss SingletonSet) Values() []any {
	return append([]any{}, ss.values...)
}
