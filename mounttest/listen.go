// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounttest

import (
	"net"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/mount/mounthttp"
)

// ListenCapture is an adapter option that sends each bound address to ch.
// Give ch a buffer, since the send happens during Start.
func ListenCapture(ch chan<- net.Addr) mounthttp.Option[mounthttp.Adapter] {
	return mounthttp.WithListenerChain(
		mounthttp.NewListenerChain(mounthttp.CaptureListenAddress(ch)),
	)
}

// ListenReceive waits for an address sent by ListenCapture.  If timeout
// elapses first, the test fails and nil is returned.
func ListenReceive(t any, ch <-chan net.Addr, timeout time.Duration) net.Addr {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case a := <-ch:
		return a

	case <-timer.C:
		tt := AsTestable(t)
		assert.Fail(tt, "no listen address received", "timeout: %s", timeout)
		tt.FailNow()
		return nil
	}
}

// URL produces an http URL for path on a running adapter.
func URL(a *mounthttp.Adapter, path string) string {
	return "http://" + a.Addr().String() + path
}
