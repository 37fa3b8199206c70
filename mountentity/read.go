// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// TextChunkSize is the size of each read performed when draining a body into a string.
const TextChunkSize = 100

// readPooled drains source into a pooled buffer using reads of chunkSize bytes.
// Only io.EOF terminates the loop successfully.  Errors are returned as is, so
// transport failures must already be IOErrors, e.g. by way of Stream.  The caller
// must return the buffer with bytebufferpool.Put, even if this function returns an error.
func readPooled(source io.Reader, chunkSize int) (*bytebufferpool.ByteBuffer, error) {
	bb := bytebufferpool.Get()
	if source == nil {
		return bb, nil
	}

	chunk := make([]byte, chunkSize)
	for {
		n, err := source.Read(chunk)
		if n > 0 {
			bb.Write(chunk[:n]) //nolint:errcheck // never fails
		}

		switch {
		case err == io.EOF:
			return bb, nil

		case err != nil:
			return bb, err
		}
	}
}

// ReadAll drains source into a string.  The length of the body does not need
// to be known in advance.  A nil source is an empty body.
//
// If source fails with anything other than io.EOF, the partial result is
// discarded and an *IOError is returned.
func ReadAll(source io.Reader) (string, error) {
	return readString(Stream(source))
}

func readString(source io.Reader) (string, error) {
	bb, err := readPooled(source, TextChunkSize)
	defer bytebufferpool.Put(bb)
	if err != nil {
		return "", err
	}

	return bb.String(), nil
}

// isUTF8 tests if a charset needs no decoding
func isUTF8(charset string) bool {
	return len(charset) == 0 ||
		strings.EqualFold(charset, "utf-8") ||
		strings.EqualFold(charset, "utf8")
}

// ReadString is like ReadAll, but decodes the body from the charset named by
// the media type.  Bodies without a charset are assumed to be UTF-8.  A body
// the charset cannot decode is an ErrUnsupportedCharset, not an I/O failure.
func ReadString(source io.Reader, mt MediaType) (string, error) {
	charset := mt.Charset()
	if isUTF8(charset) || source == nil {
		return ReadAll(source)
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCharset, charset)
	}

	return decodeString(source, enc.NewDecoder())
}

// decodeString reads source through dec.  Only failures of source itself are IOErrors.
func decodeString(source io.Reader, dec *encoding.Decoder) (string, error) {
	s, err := readString(dec.Reader(Stream(source)))
	if err != nil && !errors.Is(err, ErrIOFailure) {
		err = fmt.Errorf("%w: %w", ErrUnsupportedCharset, err)
	}

	return s, err
}

// ReadAsDataSource buffers the entire body and tags it with a media type.  The
// returned TaggedBytes is an independent snapshot.  The source must not be read
// again after this function returns.
func ReadAsDataSource(source io.Reader, mt MediaType) (TaggedBytes, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	if source != nil {
		if _, err := bb.ReadFrom(source); err != nil {
			return TaggedBytes{}, newIOError("read", err)
		}
	}

	return NewTaggedBytes(bb.B, mt), nil
}
