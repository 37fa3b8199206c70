// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mount

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Exact fails any unmarshal that leaves configuration keys unused.
func Exact(dc *mapstructure.DecoderConfig) {
	dc.ErrorUnused = true
}

// WeaklyTypedInput sets the DecoderConfig.WeaklyTypedInput flag, allowing
// values such as "8080" to decode into integer fields.
func WeaklyTypedInput(f bool) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = f
	}
}

// Merge flattens several slices of options into one option, applied in order.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}

// DefaultDecodeHooks replaces the decode hooks with viper's own defaults
// plus TextUnmarshalerHookFunc.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

// ComposeDecodeHooks appends hooks after any that are already configured.
func ComposeDecodeHooks(fs ...mapstructure.DecodeHookFunc) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		if dc.DecodeHook != nil {
			fs = append([]mapstructure.DecodeHookFunc{dc.DecodeHook}, fs...)
		}

		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(fs...)
	}
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// TextUnmarshalerHookFunc decodes strings into any type T where *T implements
// encoding.TextUnmarshaler, as well as into *T itself.  Deeper indirection isn't
// supported.  Any other source or destination is passed through untouched.
func TextUnmarshalerHookFunc(_, to reflect.Type, src any) (any, error) {
	text, ok := src.(string)
	if !ok {
		return src, nil
	}

	pointer := to.Kind() == reflect.Pointer
	target := to
	if pointer {
		target = to.Elem()
	}

	if target.Kind() == reflect.Pointer || !reflect.PointerTo(target).Implements(textUnmarshalerType) {
		return src, nil
	}

	ptr := reflect.New(target)
	err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
	if pointer {
		return ptr.Interface(), err
	}

	return ptr.Elem().Interface(), err
}
