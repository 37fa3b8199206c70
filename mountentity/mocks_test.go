// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"github.com/stretchr/testify/mock"
)

// mockSink is a mocked io.WriteCloser
type mockSink struct {
	mock.Mock
}

func (m *mockSink) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *mockSink) ExpectWrite(n int, err error) *mock.Call {
	return m.On("Write", mock.AnythingOfType("[]uint8")).Return(n, err)
}

func (m *mockSink) Close() error {
	return m.Called().Error(0)
}

// sizer is a stub Sizer
type sizer int64

func (s sizer) Size() int64 {
	return int64(s)
}
