// File: lines.go
// Title: Line Ending Handling
// Description: Line ending normalization and splitting on CRLF, CR and LF.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: SplitLines in stringx.go
// - 2026-10-13 v0.2.0: NormalizeLineEndings with platform default
// - 2026-10-14 v0.2.1: An explicit empty newline strips line endings

package stringx

import (
	"runtime"
	"strings"
)

// DefaultNewline is the platform line ending
var DefaultNewline = platformNewline()

func platformNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// lineEndings matches CRLF before CR so a CRLF pair counts once
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineEndings replaces every CRLF, CR and LF in s with newline,
// DefaultNewline when omitted. An empty newline removes the line endings.
func NormalizeLineEndings(s string, newline ...string) string {
	nl := DefaultNewline
	if len(newline) > 0 {
		nl = newline[0]
	}
	s = lineEndings.Replace(s)
	if nl == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", nl)
}

// SplitLines splits s on CRLF, CR and LF. A trailing line ending yields a
// final empty line, and "" yields [""].
func SplitLines(s string) []string {
	return strings.Split(lineEndings.Replace(s), "\n")
}
