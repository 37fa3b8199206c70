// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mountentity

import (
	"fmt"
	"mime"
	"strings"
)

// Wildcard is the type or subtype that matches anything.
const Wildcard = "*"

var (
	// AnyMediaType is */*
	AnyMediaType = NewMediaType(Wildcard, Wildcard, nil)

	// TextPlain is text/plain with no parameters
	TextPlain = NewMediaType("text", "plain", nil)

	// TextPlainUTF8 is the media type inferred for string entities
	TextPlainUTF8 = NewMediaType("text", "plain", map[string]string{"charset": "utf-8"})

	// ApplicationOctetStream is the media type inferred for raw bytes and streams
	ApplicationOctetStream = NewMediaType("application", "octet-stream", nil)

	// ApplicationJSON is the media type inferred for structured values
	ApplicationJSON = NewMediaType("application", "json", nil)
)

// MediaType is an immutable content type.  The zero value is an empty media type,
// which is used throughout this package to mean "not specified".
//
// MediaType implements encoding.TextUnmarshaler, so it can be decoded directly
// from configuration.
type MediaType struct {
	typ     string
	subtype string
	params  map[string]string
}

// NewMediaType creates a MediaType from its parts.  The type, subtype, and parameter
// names are lowercased.  The params map is copied.
func NewMediaType(typ, subtype string, params map[string]string) MediaType {
	mt := MediaType{
		typ:     strings.ToLower(typ),
		subtype: strings.ToLower(subtype),
	}

	if len(params) > 0 {
		mt.params = make(map[string]string, len(params))
		for k, v := range params {
			mt.params[strings.ToLower(k)] = v
		}
	}

	return mt
}

// ParseMediaType parses a Content-Type or Accept style value, e.g. "text/plain; charset=utf-8".
func ParseMediaType(v string) (MediaType, error) {
	full, params, err := mime.ParseMediaType(v)
	if err != nil {
		return MediaType{}, fmt.Errorf("%w: %q: %s", ErrInvalidMediaType, v, err)
	}

	typ, subtype, ok := strings.Cut(full, "/")
	if !ok || len(typ) == 0 || len(subtype) == 0 {
		return MediaType{}, fmt.Errorf("%w: %q", ErrInvalidMediaType, v)
	}

	return NewMediaType(typ, subtype, params), nil
}

// MustParseMediaType is like ParseMediaType, but panics on an error.
func MustParseMediaType(v string) MediaType {
	mt, err := ParseMediaType(v)
	if err != nil {
		panic(err)
	}

	return mt
}

// Type is the primary type, e.g. "text"
func (mt MediaType) Type() string {
	return mt.typ
}

// Subtype is the subtype, e.g. "plain"
func (mt MediaType) Subtype() string {
	return mt.subtype
}

// IsZero tests if this is the empty media type.
func (mt MediaType) IsZero() bool {
	return len(mt.typ) == 0 && len(mt.subtype) == 0
}

// Param returns the named parameter.  Names are case insensitive.
func (mt MediaType) Param(name string) (v string, ok bool) {
	v, ok = mt.params[strings.ToLower(name)]
	return
}

// Params returns a copy of this media type's parameters.
func (mt MediaType) Params() map[string]string {
	p := make(map[string]string, len(mt.params))
	for k, v := range mt.params {
		p[k] = v
	}

	return p
}

// Charset returns the charset parameter, or the empty string if there is none.
func (mt MediaType) Charset() string {
	v, _ := mt.Param("charset")
	return v
}

// WithParam returns a copy of this media type with the given parameter set.
func (mt MediaType) WithParam(name, value string) MediaType {
	p := mt.Params()
	p[strings.ToLower(name)] = value
	return NewMediaType(mt.typ, mt.subtype, p)
}

// IsJSON tests for application/json or any structured +json subtype.
func (mt MediaType) IsJSON() bool {
	return mt.subtype == "json" || strings.HasSuffix(mt.subtype, "+json")
}

// IsText tests for any text/* type.
func (mt MediaType) IsText() bool {
	return mt.typ == "text"
}

// Matches tests if two media types are compatible, honoring wildcards on
// either side.  Parameters are ignored.
func (mt MediaType) Matches(other MediaType) bool {
	switch {
	case mt.typ == Wildcard || other.typ == Wildcard:
		return true

	case mt.typ != other.typ:
		return false

	default:
		return mt.subtype == Wildcard || other.subtype == Wildcard || mt.subtype == other.subtype
	}
}

// Equal tests for exact equality, including parameters.
func (mt MediaType) Equal(other MediaType) bool {
	if mt.typ != other.typ || mt.subtype != other.subtype || len(mt.params) != len(other.params) {
		return false
	}

	for k, v := range mt.params {
		if ov, ok := other.params[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// String formats this media type as it would appear in a Content-Type header.
// The zero value formats as the empty string.
func (mt MediaType) String() string {
	if mt.IsZero() {
		return ""
	}

	return mime.FormatMediaType(mt.typ+"/"+mt.subtype, mt.params)
}

// MarshalText implements encoding.TextMarshaler
func (mt MediaType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  An empty value yields
// the zero MediaType.
func (mt *MediaType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*mt = MediaType{}
		return nil
	}

	parsed, err := ParseMediaType(string(text))
	if err == nil {
		*mt = parsed
	}

	return err
}
