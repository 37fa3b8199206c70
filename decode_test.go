// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mount

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/mount/mountentity"
)

type decodeConfig struct {
	Timeout   time.Duration
	Names     []string
	MediaType mountentity.MediaType
	Optional  *mountentity.MediaType
}

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func testTextUnmarshalerHookFuncValue(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	result, err := TextUnmarshalerHookFunc(
		reflect.TypeOf(""),
		reflect.TypeOf(mountentity.MediaType{}),
		"text/plain; charset=utf-8",
	)

	require.NoError(err)
	require.IsType(mountentity.MediaType{}, result)
	assert.True(mountentity.TextPlainUTF8.Equal(result.(mountentity.MediaType)))
}

func testTextUnmarshalerHookFuncPointer(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	result, err := TextUnmarshalerHookFunc(
		reflect.TypeOf(""),
		reflect.TypeOf((*mountentity.MediaType)(nil)),
		"application/json",
	)

	require.NoError(err)
	require.IsType((*mountentity.MediaType)(nil), result)
	assert.True(mountentity.ApplicationJSON.Equal(*result.(*mountentity.MediaType)))
}

func testTextUnmarshalerHookFuncError(t *testing.T) {
	_, err := TextUnmarshalerHookFunc(
		reflect.TypeOf(""),
		reflect.TypeOf(mountentity.MediaType{}),
		"this is not a media type",
	)

	assert.ErrorIs(t, err, mountentity.ErrInvalidMediaType)
}

func testTextUnmarshalerHookFuncPassThrough(t *testing.T) {
	testData := []struct {
		name string
		to   reflect.Type
		src  any
	}{
		{"NotAString", reflect.TypeOf(mountentity.MediaType{}), 123},
		{"NotAnUnmarshaler", reflect.TypeOf(0), "123"},
		{"DoublePointer", reflect.TypeOf((**mountentity.MediaType)(nil)), "text/plain"},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			result, err := TextUnmarshalerHookFunc(reflect.TypeOf(record.src), record.to, record.src)
			assert.NoError(t, err)
			assert.Equal(t, record.src, result)
		})
	}
}

func TestTextUnmarshalerHookFunc(t *testing.T) {
	t.Run("Value", testTextUnmarshalerHookFuncValue)
	t.Run("Pointer", testTextUnmarshalerHookFuncPointer)
	t.Run("Error", testTextUnmarshalerHookFuncError)
	t.Run("PassThrough", testTextUnmarshalerHookFuncPassThrough)
}

func TestDefaultDecodeHooks(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = newTestViper(t, `
timeout: 15s
names: a,b,c
mediaType: application/json
optional: text/plain
`)

		config decodeConfig
	)

	require.NoError(v.Unmarshal(&config, DefaultDecodeHooks))
	assert.Equal(15*time.Second, config.Timeout)
	assert.Equal([]string{"a", "b", "c"}, config.Names)
	assert.True(mountentity.ApplicationJSON.Equal(config.MediaType))
	require.NotNil(config.Optional)
	assert.True(mountentity.TextPlain.Equal(*config.Optional))
}

func TestExact(t *testing.T) {
	var (
		v      = newTestViper(t, "timeout: 1s\nunused: true\n")
		config decodeConfig
	)

	assert.NoError(t, v.Unmarshal(&config, DefaultDecodeHooks))
	assert.Error(t, v.Unmarshal(&config, DefaultDecodeHooks, Exact))
}

func TestWeaklyTypedInput(t *testing.T) {
	var (
		dc = mapstructure.DecoderConfig{}
	)

	WeaklyTypedInput(true)(&dc)
	assert.True(t, dc.WeaklyTypedInput)
	WeaklyTypedInput(false)(&dc)
	assert.False(t, dc.WeaklyTypedInput)
}

func TestMerge(t *testing.T) {
	var (
		assert = assert.New(t)
		dc     mapstructure.DecoderConfig
		calls  []string
	)

	record := func(name string) viper.DecoderConfigOption {
		return func(*mapstructure.DecoderConfig) {
			calls = append(calls, name)
		}
	}

	Merge(
		[]viper.DecoderConfigOption{record("a"), record("b")},
		nil,
		[]viper.DecoderConfigOption{Exact, record("c")},
	)(&dc)

	assert.Equal([]string{"a", "b", "c"}, calls)
	assert.True(dc.ErrorUnused)
}

func TestComposeDecodeHooks(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = newTestViper(t, "timeout: 2m\nmediaType: text/html\n")
		config  decodeConfig
		called  bool
	)

	spy := func(from, to reflect.Type, src any) (any, error) {
		called = true
		return src, nil
	}

	require.NoError(v.Unmarshal(&config, DefaultDecodeHooks, ComposeDecodeHooks(spy)))
	assert.True(called)
	assert.Equal(2*time.Minute, config.Timeout)
	assert.Equal("text/html", config.MediaType.String())

	// no existing hooks
	var dc mapstructure.DecoderConfig
	ComposeDecodeHooks(spy)(&dc)
	assert.NotNil(dc.DecodeHook)
}
