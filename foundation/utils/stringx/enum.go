// File: enum.go
// Title: String to Enum Mapping
// Description: Maps text to one of a closed set of values by String() name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"strings"
)

// ToEnum returns the value among values whose String() equals s after
// trimming surrounding whitespace. An empty or unknown s returns the zero
// value and false.
func ToEnum[T fmt.Stringer](s string, values []T) (T, bool) {
	return toEnum(s, values, func(a, b string) bool { return a == b })
}

// ToEnumIgnoreCase is ToEnum with ordinal case-insensitive matching
func ToEnumIgnoreCase[T fmt.Stringer](s string, values []T) (T, bool) {
	return toEnum(s, values, strings.EqualFold)
}

func toEnum[T fmt.Stringer](s string, values []T, eq func(a, b string) bool) (T, bool) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, false
	}
	for _, v := range values {
		if eq(v.String(), s) {
			return v, true
		}
	}
	return zero, false
}
