// File: encoding.go
// Title: Base64 with Text Encodings
// Description: Base64 conversion of text through a character encoding from
//              golang.org/x/text/encoding, UTF-8 by default.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Invalid UTF-8 after decoding is replaced with U+FFFD

package stringx

import (
	"encoding/base64"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/msto63/quickx/foundation/core/errors"
)

// UTF8 is the default text encoding
var UTF8 encoding.Encoding = unicode.UTF8

func textEncoding(enc []encoding.Encoding) encoding.Encoding {
	if len(enc) > 0 && enc[0] != nil {
		return enc[0]
	}
	return UTF8
}

// ToBase64 encodes s with enc (UTF-8 when omitted) and returns the bytes as
// standard base64. Text the encoding cannot represent is an error.
func ToBase64(s string, enc ...encoding.Encoding) (string, error) {
	e := textEncoding(enc)
	if e == UTF8 {
		return base64.StdEncoding.EncodeToString([]byte(s)), nil
	}
	raw, err := e.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return "", errors.StringxInvalidFormat("ToBase64", s, "text representable in "+EncodingName(e), err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// FromBase64 decodes standard base64 and interprets the bytes with enc
// (UTF-8 when omitted). Invalid UTF-8 sequences decode to U+FFFD.
func FromBase64(b64 string, enc ...encoding.Encoding) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return "", errors.StringxInvalidFormat("FromBase64", b64, "standard base64", err)
	}
	e := textEncoding(enc)
	if e == UTF8 {
		return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
	}
	text, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.StringxInvalidFormat("FromBase64", b64, EncodingName(e)+" bytes", err)
	}
	return string(text), nil
}

// LookupEncoding returns the encoding for a WHATWG label such as "utf-8",
// "utf-16le", "latin1" or "shift_jis"
func LookupEncoding(name string) (encoding.Encoding, error) {
	e, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, errors.InvalidInput(errors.ModuleStringx, "LookupEncoding", "encoding", name, "unknown encoding label")
	}
	return e, nil
}

// EncodingName returns the canonical name of e, or "unknown"
func EncodingName(e encoding.Encoding) string {
	name, err := htmlindex.Name(e)
	if err != nil {
		return "unknown"
	}
	return name
}
