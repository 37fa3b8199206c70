// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
)

// Decoder reads a T from a streamed body.
type Decoder[T any] interface {
	// Readable tests if this decoder can handle bodies of the given media type
	Readable(MediaType) bool

	// Decode drains source into a T
	Decode(source io.Reader, mt MediaType) (T, error)
}

// Encoder writes a T as a body.
type Encoder[T any] interface {
	// Writeable tests if this encoder can produce the given media type
	Writeable(MediaType) bool

	// Size estimates the encoded length of v, returning UnknownSize
	// if that isn't possible without encoding v
	Size(v T, mt MediaType) int64

	// Encode writes v to sink
	Encode(sink io.Writer, v T, mt MediaType) error
}

// Marshaler is implemented by encoders that produce a body in memory.  NewEntity
// marshals up front with such encoders, so their failures happen before anything
// is written and the entity's size is always known.
type Marshaler[T any] interface {
	Marshal(v T, mt MediaType) ([]byte, error)
}

// Codec is implemented by types that can both read and write a T.
type Codec[T any] interface {
	Decoder[T]
	Encoder[T]
}

var (
	_ Codec[string]      = StringCodec{}
	_ Codec[[]byte]      = BytesCodec{}
	_ Codec[TaggedBytes] = DataSourceCodec{}
	_ Encoder[io.Reader] = ReaderEncoder{}
	_ Codec[any]         = JSONCodec[any]{}

	_ Marshaler[string] = StringCodec{}
	_ Marshaler[any]    = JSONCodec[any]{}
)

// StringCodec handles string entities of any media type, honoring the charset parameter.
type StringCodec struct{}

func (StringCodec) Readable(MediaType) bool  { return true }
func (StringCodec) Writeable(MediaType) bool { return true }

func (StringCodec) Decode(source io.Reader, mt MediaType) (string, error) {
	return ReadString(source, mt)
}

func (StringCodec) Size(v string, mt MediaType) int64 {
	if isUTF8(mt.Charset()) {
		return int64(len(v))
	}

	return UnknownSize
}

// Marshal converts v to the charset named by mt.  An unknown charset is an
// ErrUnsupportedCharset, and text the charset can't represent is an ErrUnsupportedEntity.
func (StringCodec) Marshal(v string, mt MediaType) ([]byte, error) {
	charset := mt.Charset()
	if isUTF8(charset) {
		return []byte(v), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCharset, charset)
	}

	data, err := enc.NewEncoder().Bytes([]byte(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedEntity, err)
	}

	return data, nil
}

func (sc StringCodec) Encode(sink io.Writer, v string, mt MediaType) error {
	data, err := sc.Marshal(v, mt)
	if err == nil {
		_, err = TaggedBytes{data: data}.WriteTo(sink)
	}

	return err
}

// BytesCodec handles raw byte slices of any media type.
type BytesCodec struct{}

func (BytesCodec) Readable(MediaType) bool  { return true }
func (BytesCodec) Writeable(MediaType) bool { return true }

func (BytesCodec) Decode(source io.Reader, mt MediaType) ([]byte, error) {
	tb, err := ReadAsDataSource(source, mt)
	if err != nil {
		return nil, err
	}

	return tb.Bytes(), nil
}

func (BytesCodec) Size(v []byte, _ MediaType) int64 {
	return int64(len(v))
}

func (BytesCodec) Encode(sink io.Writer, v []byte, _ MediaType) error {
	_, err := TaggedBytes{data: v}.WriteTo(sink)
	return err
}

// DataSourceCodec handles TaggedBytes.  Decoded values carry the media type of the body.
type DataSourceCodec struct{}

func (DataSourceCodec) Readable(MediaType) bool  { return true }
func (DataSourceCodec) Writeable(MediaType) bool { return true }

func (DataSourceCodec) Decode(source io.Reader, mt MediaType) (TaggedBytes, error) {
	return ReadAsDataSource(source, mt)
}

func (DataSourceCodec) Size(v TaggedBytes, _ MediaType) int64 {
	return int64(v.Len())
}

func (DataSourceCodec) Encode(sink io.Writer, v TaggedBytes, _ MediaType) error {
	_, err := Copy(sink, v.Reader())
	return err
}

// ReaderEncoder streams an io.Reader to the sink with Copy.  There is no
// corresponding decoder, as a request body already is an io.Reader.
type ReaderEncoder struct{}

func (ReaderEncoder) Writeable(MediaType) bool { return true }

func (ReaderEncoder) Size(v io.Reader, _ MediaType) int64 {
	if l, ok := v.(lener); ok {
		return int64(l.Len())
	}

	return UnknownSize
}

func (ReaderEncoder) Encode(sink io.Writer, v io.Reader, _ MediaType) error {
	_, err := Copy(sink, v)
	return err
}

// JSONCodec handles application/json and +json bodies.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Readable(mt MediaType) bool  { return mt.IsJSON() }
func (JSONCodec[T]) Writeable(mt MediaType) bool { return mt.IsJSON() }

func (JSONCodec[T]) Decode(source io.Reader, _ MediaType) (v T, err error) {
	err = json.NewDecoder(failureReader{source: source}).Decode(&v)
	return
}

// Size always returns UnknownSize, since the length is only known after marshaling.
func (JSONCodec[T]) Size(T, MediaType) int64 {
	return UnknownSize
}

// Marshal encodes v.  Values encoding/json rejects are an ErrUnsupportedEntity.
func (JSONCodec[T]) Marshal(v T, _ MediaType) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedEntity, err)
	}

	return data, nil
}

func (jc JSONCodec[T]) Encode(sink io.Writer, v T, mt MediaType) error {
	data, err := jc.Marshal(v, mt)
	if err == nil {
		_, err = TaggedBytes{data: data}.WriteTo(sink)
	}

	return err
}
