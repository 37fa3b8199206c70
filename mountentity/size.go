// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

// UnknownSize is returned by EstimateSize when the byte length of a value
// cannot be known without writing it.  Callers should fall back to a
// streaming transfer, not treat this as an error.
const UnknownSize int64 = -1

// Sizer is implemented by values that know their encoded length.
type Sizer interface {
	Size() int64
}

// lener is implemented by bytes.Buffer, bytes.Reader, strings.Reader, and TaggedBytes.
// For readers, Len is the number of unread bytes, which is what will be written.
type lener interface {
	Len() int
}

// EstimateSize returns the number of bytes v will occupy when written as an entity,
// or UnknownSize.  A nil value has a size of zero.
func EstimateSize(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0

	case string:
		return int64(len(t))

	case []byte:
		return int64(len(t))

	case lener:
		return int64(t.Len())

	case Sizer:
		return t.Size()

	default:
		return UnknownSize
	}
}
