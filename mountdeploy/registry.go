// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountdeploy

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"go.uber.org/dig"
)

var (
	applicationType = reflect.TypeOf((*Application)(nil)).Elem()
	errorType       = reflect.TypeOf((*error)(nil)).Elem()
	inType          = reflect.TypeOf(dig.In{})
)

// Registry holds named application constructors.  Constructors are ordinary
// dig constructors: they may accept any dependencies supplied through Provide.
//
// Each named application is built at most once.  Subsequent lookups return
// the same instance.
type Registry struct {
	lock      sync.Mutex
	container *dig.Container
	names     map[string]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		container: dig.New(),
		names:     make(map[string]bool),
	}
}

// Provide supplies dependencies for application constructors.
func (r *Registry) Provide(ctors ...any) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, ctor := range ctors {
		if err := r.container.Provide(ctor); err != nil {
			return err
		}
	}

	return nil
}

// Register associates a constructor with an application name.  The constructor must
// be a function whose first return value implements Application, optionally followed
// by an error.
func (r *Registry) Register(name string, ctor any) error {
	adapted, err := adaptConstructor(ctor)
	if err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.container.Provide(adapted.Interface(), dig.Name(name)); err != nil {
		return fmt.Errorf("unable to register application %q: %w", name, err)
	}

	r.names[name] = true
	return nil
}

// New returns the application registered with the given name, building it if necessary.
func (r *Registry) New(name string) (app Application, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if !r.names[name] {
		return nil, &ApplicationNotFoundError{Name: name}
	}

	// dig.In struct with a single, named Application field
	in := reflect.StructOf([]reflect.StructField{
		{
			Name:      "In",
			Anonymous: true,
			Type:      inType,
		},
		{
			Name: "Application",
			Type: applicationType,
			Tag:  reflect.StructTag("name:" + strconv.Quote(name)),
		},
	})

	invoke := reflect.MakeFunc(
		reflect.FuncOf([]reflect.Type{in}, nil, false),
		func(args []reflect.Value) []reflect.Value {
			app, _ = args[0].Field(1).Interface().(Application)
			return nil
		},
	)

	err = r.container.Invoke(invoke.Interface())
	return
}

// adaptConstructor produces a function with the same inputs as ctor whose
// outputs are (Application, error), so that dig registers it under the
// Application interface rather than the concrete type.
func adaptConstructor(ctor any) (reflect.Value, error) {
	cv := reflect.ValueOf(ctor)
	if cv.Kind() != reflect.Func {
		return reflect.Value{}, ErrInvalidConstructor
	}

	ct := cv.Type()
	switch {
	case ct.NumOut() == 1:
	case ct.NumOut() == 2 && ct.Out(1) == errorType:
	default:
		return reflect.Value{}, ErrInvalidConstructor
	}

	if !ct.Out(0).Implements(applicationType) {
		return reflect.Value{}, ErrInvalidConstructor
	}

	in := make([]reflect.Type, ct.NumIn())
	for i := range in {
		in[i] = ct.In(i)
	}

	ft := reflect.FuncOf(in, []reflect.Type{applicationType, errorType}, ct.IsVariadic())
	return reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		var results []reflect.Value
		if ct.IsVariadic() {
			results = cv.CallSlice(args)
		} else {
			results = cv.Call(args)
		}

		app := reflect.New(applicationType).Elem()
		if !isNil(results[0]) {
			app.Set(results[0])
		}

		errValue := reflect.New(errorType).Elem()
		if len(results) > 1 && !results[1].IsNil() {
			errValue.Set(results[1])
		}

		return []reflect.Value{app, errValue}
	}), nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()

	default:
		return false
	}
}
