// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mount

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrNilViper is returned by ForViper when no viper instance was supplied.
var ErrNilViper = errors.New("the viper instance cannot be nil")

// Unmarshaler reads configuration into arbitrary values.
type Unmarshaler interface {
	// Unmarshal reads the entire configuration into value
	Unmarshal(value any) error

	// UnmarshalKey reads a subtree of the configuration into value
	UnmarshalKey(key string, value any) error
}

// ViperUnmarshaler is the Unmarshaler backed by spf13/viper.
type ViperUnmarshaler struct {
	// Viper is the required source of configuration
	Viper *viper.Viper

	// Options are applied to every unmarshal operation
	Options []viper.DecoderConfigOption

	// Logger receives a debug entry for each unmarshal.  If unset, nothing is logged.
	Logger *zap.Logger
}

func (vu ViperUnmarshaler) log(key string, value any) {
	if vu.Logger != nil {
		vu.Logger.Debug("unmarshal", zap.String("key", key), zap.String("type", fmt.Sprintf("%T", value)))
	}
}

// Unmarshal implements Unmarshaler.
func (vu ViperUnmarshaler) Unmarshal(value any) error {
	vu.log("", value)
	return vu.Viper.Unmarshal(value, vu.Options...)
}

// UnmarshalKey implements Unmarshaler.
func (vu ViperUnmarshaler) UnmarshalKey(key string, value any) error {
	vu.log(key, value)
	return vu.Viper.UnmarshalKey(key, value, vu.Options...)
}

// ViperUnmarshalerIn is the set of dependencies for the Unmarshaler created by ForViper.
type ViperUnmarshalerIn struct {
	fx.In

	Viper *viper.Viper

	// Options are appended to the options passed to ForViper
	Options []viper.DecoderConfigOption `optional:"true"`

	// Logger is the optional application logger
	Logger *zap.Logger `optional:"true"`
}

// ForViper supplies v to the enclosing fx.App along with an Unmarshaler backed by it.
// DefaultDecodeHooks is always applied first, so MediaTypes, durations, and other
// text values decode from strings.
func ForViper(v *viper.Viper, o ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(ErrNilViper)
	}

	return fx.Options(
		fx.Supply(v),
		fx.Provide(
			func(in ViperUnmarshalerIn) Unmarshaler {
				options := make([]viper.DecoderConfigOption, 0, 1+len(o)+len(in.Options))
				options = append(options, DefaultDecodeHooks)
				options = append(options, o...)
				options = append(options, in.Options...)

				return ViperUnmarshaler{
					Viper:   in.Viper,
					Options: options,
					Logger:  ModuleLogger(Module, in.Logger),
				}
			},
		),
	)
}
