// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func testNewEntityInference(t *testing.T) {
	testData := []struct {
		name         string
		value        any
		expectedType MediaType
		expectedSize int64
		expectedBody string
	}{
		{"string", "hello", TextPlainUTF8, 5, "hello"},
		{"bytes", []byte("raw"), ApplicationOctetStream, 3, "raw"},
		{"tagged", NewTaggedBytes([]byte("<a/>"), MustParseMediaType("application/xml")), MustParseMediaType("application/xml"), 4, "<a/>"},
		{"reader", io.MultiReader(strings.NewReader("streamed")), ApplicationOctetStream, UnknownSize, "streamed"},
		{"buffer", bytes.NewBufferString("buffered"), ApplicationOctetStream, 8, "buffered"},
		{"json", jsonValue{Name: "x", Count: 1}, ApplicationJSON, 22, `{"name":"x","count":1}`},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
				output  bytes.Buffer
			)

			e, err := NewEntity(record.value, MediaType{})
			require.NoError(err)
			assert.True(record.expectedType.Equal(e.MediaType()), e.MediaType().String())
			assert.Equal(record.expectedSize, e.Size())
			require.NoError(e.Write(&output))
			assert.Equal(record.expectedBody, output.String())
		})
	}
}

func testNewEntityNil(t *testing.T) {
	var (
		assert = assert.New(t)
		output bytes.Buffer
	)

	e, err := NewEntity(nil, MediaType{})
	assert.NoError(err)
	assert.True(e.MediaType().IsZero())
	assert.Zero(e.Size())
	assert.NoError(e.Write(&output))
	assert.Zero(output.Len())
}

func testNewEntityExplicitMediaType(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		latin1  = TextPlain.WithParam("charset", "iso-8859-1")
		output  bytes.Buffer
	)

	e, err := NewEntity("café", latin1)
	require.NoError(err)
	assert.True(latin1.Equal(e.MediaType()))
	assert.Equal(int64(4), e.Size())
	require.NoError(e.Write(&output))
	assert.Equal([]byte{'c', 'a', 'f', 0xe9}, output.Bytes())

	// and back again
	actual, err := StringCodec{}.Decode(&output, latin1)
	require.NoError(err)
	assert.Equal("café", actual)
}

func testNewEntityUnsupported(t *testing.T) {
	_, err := NewEntity(jsonValue{}, TextPlain)
	assert.ErrorIs(t, err, ErrUnsupportedEntity)
}

func testNewEntityEncodeFailure(t *testing.T) {
	testData := []struct {
		name      string
		value     any
		mediaType MediaType
		expected  error
	}{
		{"UnknownCharset", "hi", MustParseMediaType("text/plain; charset=bogus"), ErrUnsupportedCharset},
		{"UnrepresentableText", "日本", TextPlain.WithParam("charset", "iso-8859-1"), ErrUnsupportedEntity},
		{"UnmarshalableJSON", map[string]any{"c": make(chan int)}, MediaType{}, ErrUnsupportedEntity},
		{"UnmarshalableExplicitJSON", func() {}, ApplicationJSON, ErrUnsupportedEntity},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			// any write to this sink fails the test
			sink := new(mockSink)

			e, err := NewEntity(record.value, record.mediaType)
			assert.ErrorIs(t, err, record.expected)
			assert.NoError(t, e.Write(sink))
			sink.AssertNotCalled(t, "Write")
		})
	}
}

func testNewEntityWriteFailure(t *testing.T) {
	var (
		expectedErr = errors.New("expected")
		sink        = new(mockSink)
	)

	sink.ExpectWrite(0, expectedErr)
	e, err := NewEntity("hello", MediaType{})
	require.NoError(t, err)

	err = e.Write(sink)
	assert.ErrorIs(t, err, ErrIOFailure)
	assert.ErrorIs(t, err, expectedErr)
}

func TestNewEntity(t *testing.T) {
	t.Run("Inference", testNewEntityInference)
	t.Run("Nil", testNewEntityNil)
	t.Run("ExplicitMediaType", testNewEntityExplicitMediaType)
	t.Run("Unsupported", testNewEntityUnsupported)
	t.Run("EncodeFailure", testNewEntityEncodeFailure)
	t.Run("WriteFailure", testNewEntityWriteFailure)
}

// TestEntityRoundTrip writes bodies as responses and reads them back as requests.
func TestEntityRoundTrip(t *testing.T) {
	for _, size := range bodySizes {
		t.Run(strconv.Itoa(size), func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
				body    = randomBody(size)
				wire    bytes.Buffer
			)

			e, err := NewEntity(body, MediaType{})
			require.NoError(err)
			assert.Equal(int64(size), e.Size())
			require.NoError(e.Write(&wire))

			decoded, err := BytesCodec{}.Decode(&wire, e.MediaType())
			require.NoError(err)
			require.NotNil(decoded)
			assert.Equal(body, decoded)
		})
	}
}

func TestJSONCodec(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		codec   = JSONCodec[jsonValue]{}
		wire    bytes.Buffer
	)

	assert.True(codec.Readable(ApplicationJSON))
	assert.True(codec.Writeable(MustParseMediaType("application/vnd.test+json")))
	assert.False(codec.Readable(TextPlain))

	require.NoError(codec.Encode(&wire, jsonValue{Name: "round", Count: 2}, ApplicationJSON))
	actual, err := codec.Decode(&wire, ApplicationJSON)
	require.NoError(err)
	assert.Equal(jsonValue{Name: "round", Count: 2}, actual)

	_, err = codec.Decode(strings.NewReader("{not json"), ApplicationJSON)
	assert.Error(err)
	assert.NotErrorIs(err, ErrIOFailure)

	err = JSONCodec[any]{}.Encode(&wire, make(chan int), ApplicationJSON)
	assert.ErrorIs(err, ErrUnsupportedEntity)
	assert.NotErrorIs(err, ErrIOFailure)

	expectedErr := errors.New("expected")
	_, err = codec.Decode(io.MultiReader(strings.NewReader(`{"name":`), iotest.ErrReader(expectedErr)), ApplicationJSON)
	assert.ErrorIs(err, ErrIOFailure)
	assert.ErrorIs(err, expectedErr)
}

