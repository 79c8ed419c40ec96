// File: stringx.go
// Title: Core String Utility Functions
// Description: Rune-safe substring extraction, delimiter search, blank
//              checks, truncation and padding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-13 v0.2.0: Left/Right/Between with error variants, dropped interning

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/quickx/foundation/core/errors"
)

// ===============================
// Substrings
// ===============================

// Left returns the first n runes of s, or all of s when it is shorter.
// n <= 0 gives "".
func Left(s string, n int) string {
	if n <= 0 {
		return ""
	}
	// walk at most n runes instead of converting the whole string
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Right returns the last n runes of s, or all of s when it is shorter.
// n <= 0 gives "".
func Right(s string, n int) string {
	if n <= 0 {
		return ""
	}
	end := len(s)
	for end > 0 && n > 0 {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		end -= size
		n--
	}
	return s[end:]
}

// LeftOrError is Left, failing with CodeInvalidLength when n is negative
// or exceeds the rune count of s
func LeftOrError(s string, n int) (string, error) {
	if length := utf8.RuneCountInString(s); n < 0 || n > length {
		return "", errors.StringxLengthExceeded("LeftOrError", n, length)
	}
	return Left(s, n), nil
}

// RightOrError is Right, failing with CodeInvalidLength when n is negative
// or exceeds the rune count of s
func RightOrError(s string, n int) (string, error) {
	if length := utf8.RuneCountInString(s); n < 0 || n > length {
		return "", errors.StringxLengthExceeded("RightOrError", n, length)
	}
	return Right(s, n), nil
}

// Between returns the text strictly between the first occurrence of start
// and the first occurrence of end after it. It returns "" when either is
// missing.
func Between(s, start, end string) string {
	out, _ := between(s, start, end)
	return out
}

// BetweenOrError is Between, failing with an error matching
// mdwerror.ErrNotFound when a delimiter is missing
func BetweenOrError(s, start, end string) (string, error) {
	out, missing := between(s, start, end)
	if missing != "" {
		return "", errors.StringxDelimiterNotFound("BetweenOrError", missing)
	}
	return out, nil
}

// between returns the enclosed text, or the delimiter that was not found
func between(s, start, end string) (string, string) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", start
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", end
	}
	return rest[:j], ""
}

// ===============================
// Checks
// ===============================

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ===============================
// Shaping
// ===============================

// Truncate truncates a string to maxLen runes, ending with ellipsis if it
// was cut. An ellipsis as long as maxLen or longer is dropped.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return Left(s, maxLen)
	}
	return Left(s, maxLen-ellipsisLen) + ellipsis
}

// Reverse reverses a string rune by rune
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// PadLeft pads s on the left with pad up to width runes.
// If the string is already longer than width, it returns the original string.
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad up to width runes.
// If the string is already longer than width, it returns the original string.
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}
