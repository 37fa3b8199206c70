// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"context"
	"errors"
	"net"

	"github.com/stretchr/testify/mock"
	"go.uber.org/fx"
)

type mockOption[T any] struct {
	mock.Mock
}

func (m *mockOption[T]) Apply(t *T) error {
	return m.Called(t).Error(0)
}

func (m *mockOption[T]) ExpectApply(t *T) *mock.Call {
	return m.On("Apply", t)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, r *Request) (*Response, error) {
	args := m.Called(ctx, r)
	response, _ := args.Get(0).(*Response)
	return response, args.Error(1)
}

func (m *mockDispatcher) ExpectDispatch(response *Response, err error) *mock.Call {
	return m.On("Dispatch", mock.Anything, mock.AnythingOfType("*mounthttp.Request")).Return(response, err)
}

type mockShutdowner struct {
	mock.Mock
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	return m.Called(opts).Error(0)
}

func (m *mockShutdowner) ExpectShutdown() *mock.Call {
	return m.On("Shutdown", mock.Anything)
}

// failingListener is a real listener whose accept loop fails immediately.
type failingListener struct {
	net.Listener
}

var errAccept = errors.New("accept failed")

func (fl failingListener) Accept() (net.Conn, error) {
	return nil, errAccept
}
