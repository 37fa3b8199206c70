// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"fmt"
	"io"
)

// Entity is a value prepared for writing as a response body.  The encoder
// has already been selected and in-memory encodings already done, so writing
// can only fail with I/O errors.
type Entity struct {
	mediaType MediaType
	size      int64
	write     func(io.Writer) error
}

// MediaType is the content type of this entity, possibly inferred.  This will
// be the zero value for an empty entity with no declared media type.
func (e Entity) MediaType() MediaType {
	return e.mediaType
}

// Size is the encoded length, or UnknownSize.
func (e Entity) Size() int64 {
	return e.size
}

// Write encodes this entity to sink.  The zero Entity writes nothing.
func (e Entity) Write(sink io.Writer) error {
	if e.write == nil {
		return nil
	}

	return e.write(sink)
}

func newEntity[T any](e Encoder[T], v T, mt, inferred MediaType) (Entity, error) {
	if mt.IsZero() {
		mt = inferred
	}

	if !e.Writeable(mt) {
		return Entity{}, fmt.Errorf("%w: cannot write %T as %s", ErrUnsupportedEntity, v, mt)
	}

	if m, ok := any(e).(Marshaler[T]); ok {
		data, err := m.Marshal(v, mt)
		if err != nil {
			return Entity{}, err
		}

		return Entity{
			mediaType: mt,
			size:      int64(len(data)),
			write: func(sink io.Writer) error {
				_, err := TaggedBytes{data: data}.WriteTo(sink)
				return err
			},
		}, nil
	}

	return Entity{
		mediaType: mt,
		size:      e.Size(v, mt),
		write: func(sink io.Writer) error {
			return e.Encode(sink, v, mt)
		},
	}, nil
}

// NewEntity selects an encoder for v.  If mt is the zero MediaType, one is inferred:
//
//   - string is text/plain; charset=utf-8
//   - []byte and io.Reader are application/octet-stream
//   - TaggedBytes uses its own tag
//   - anything else is application/json
//
// A nil v is an empty entity.  Strings and JSON values are encoded here, so an
// unsupported charset or an unmarshalable value fails before anything is written.
func NewEntity(v any, mt MediaType) (Entity, error) {
	switch t := v.(type) {
	case nil:
		return Entity{mediaType: mt}, nil

	case string:
		return newEntity[string](StringCodec{}, t, mt, TextPlainUTF8)

	case []byte:
		return newEntity[[]byte](BytesCodec{}, t, mt, ApplicationOctetStream)

	case TaggedBytes:
		return newEntity[TaggedBytes](DataSourceCodec{}, t, mt, t.MediaType())

	case io.Reader:
		return newEntity[io.Reader](ReaderEncoder{}, t, mt, ApplicationOctetStream)

	default:
		return newEntity[any](JSONCodec[any]{}, t, mt, ApplicationJSON)
	}
}
