// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/mount"
)

// namedListener records the order of decoration
type namedListener struct {
	net.Listener
	name string
}

func nameListener(name string) ListenerConstructor {
	return func(next net.Listener) net.Listener {
		return namedListener{Listener: next, name: name}
	}
}

func testDefaultListenerFactoryBasic(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		factory DefaultListenerFactory
	)

	listener, err := factory.Listen(context.Background(), &http.Server{Addr: "127.0.0.1:0"})
	require.NoError(err)
	require.NotNil(listener)
	assert.NotNil(listener.Addr())
	listener.Close()
}

func testDefaultListenerFactoryError(t *testing.T) {
	factory := DefaultListenerFactory{
		Network: "this is a bad network",
	}

	listener, err := factory.Listen(context.Background(), &http.Server{Addr: ":0"})
	assert.Error(t, err)
	if !assert.Nil(t, listener) {
		listener.Close()
	}
}

func TestDefaultListenerFactory(t *testing.T) {
	t.Run("Basic", testDefaultListenerFactoryBasic)
	t.Run("Error", testDefaultListenerFactoryError)
}

func testListenerChainEmpty(t *testing.T) {
	var (
		assert  = assert.New(t)
		lc      ListenerChain
		factory = DefaultListenerFactory{}
	)

	assert.Equal(lc, lc.Append())
	assert.Equal(factory, lc.Factory(factory))
}

func testListenerChainOrder(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		base    = NewListenerChain(nameListener("first"))
		lc      = base.Append(nameListener("second"))
	)

	listener, err := lc.Factory(DefaultListenerFactory{}).Listen(
		context.Background(),
		&http.Server{Addr: "127.0.0.1:0"},
	)

	require.NoError(err)
	defer listener.Close()

	outer, ok := listener.(namedListener)
	require.True(ok)
	assert.Equal("first", outer.name)

	inner, ok := outer.Listener.(namedListener)
	require.True(ok)
	assert.Equal("second", inner.name)

	// the original chain is unchanged
	assert.Len(base.c, 1)
}

func testListenerChainFactoryError(t *testing.T) {
	var (
		expectedErr = errors.New("expected")
		called      bool
		lc          = NewListenerChain(func(next net.Listener) net.Listener {
			called = true
			return next
		})
	)

	listener, err := lc.Factory(ListenerFactoryFunc(func(context.Context, *http.Server) (net.Listener, error) {
		return nil, expectedErr
	})).Listen(context.Background(), &http.Server{})

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, listener)
	assert.False(t, called)
}

func TestListenerChain(t *testing.T) {
	t.Run("Empty", testListenerChainEmpty)
	t.Run("Order", testListenerChainOrder)
	t.Run("FactoryError", testListenerChainFactoryError)
}

func TestCaptureListenAddress(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		ch      = make(chan net.Addr, 1)
	)

	listener, err := NewListenerChain(CaptureListenAddress(ch)).
		Factory(DefaultListenerFactory{}).
		Listen(context.Background(), &http.Server{Addr: "127.0.0.1:0"})

	require.NoError(err)
	defer listener.Close()

	select {
	case addr := <-ch:
		assert.Equal(listener.Addr(), addr)
	default:
		assert.Fail("no address was captured")
	}
}

func TestShutdownOnExit(t *testing.T) {
	var (
		sh     = new(mockShutdowner)
		exit   = ShutdownOnExit(sh, nil)
		custom = ShutdownOnExit(sh, func(error) int { return 7 })
	)

	sh.ExpectShutdown().Return(nil).Times(3)
	exit(errors.New("expected"))
	exit(mount.UseExitCode(errors.New("expected"), 3))
	custom(nil)

	sh.AssertExpectations(t)
	sh.AssertNumberOfCalls(t, "Shutdown", 3)
}
