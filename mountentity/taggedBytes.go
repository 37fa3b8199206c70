// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"bytes"
	"io"
)

// TaggedBytes is an immutable snapshot of an entity body together with its
// media type.  The zero value is an empty body with no media type.
type TaggedBytes struct {
	mediaType MediaType
	data      []byte
}

// NewTaggedBytes copies data and tags it with a media type.
func NewTaggedBytes(data []byte, mt MediaType) TaggedBytes {
	tb := TaggedBytes{
		mediaType: mt,
	}

	if len(data) > 0 {
		tb.data = append([]byte{}, data...)
	}

	return tb
}

// MediaType returns the tag for these bytes
func (tb TaggedBytes) MediaType() MediaType {
	return tb.mediaType
}

// Len is the number of bytes in this snapshot
func (tb TaggedBytes) Len() int {
	return len(tb.data)
}

// Bytes returns a copy of the snapshot
func (tb TaggedBytes) Bytes() []byte {
	return append([]byte{}, tb.data...)
}

// String returns the snapshot as a string, without any charset decoding.
func (tb TaggedBytes) String() string {
	return string(tb.data)
}

// Reader returns a new reader positioned at the start of the snapshot.
func (tb TaggedBytes) Reader() *bytes.Reader {
	return bytes.NewReader(tb.data)
}

// WriteTo writes the snapshot to w.
func (tb TaggedBytes) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(tb.data)
	if err == nil && n < len(tb.data) {
		err = io.ErrShortWrite
	}

	if err != nil {
		err = newIOError("write", err)
	}

	return int64(n), err
}
