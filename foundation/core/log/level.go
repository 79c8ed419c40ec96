// File: level.go
// Title: Log Levels
// Description: Severity levels for log entries, their textual forms and
//              parsing from configuration values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-12 v0.2.0: Text (un)marshalling for config decoding, kind-aware ParseError

package log

import (
	"strings"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal", "audit"}
var levelShort = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "FTL", "AUD"}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

// String returns the string representation of the log level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString returns a three letter representation of the log level
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelShort[l]
}

// Color returns the ANSI color code for the log level (for console output)
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m"
	case LevelDebug:
		return "\033[36m"
	case LevelInfo:
		return "\033[32m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	case LevelFatal:
		return "\033[35m"
	case LevelAudit:
		return "\033[34m"
	default:
		return "\033[0m"
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a string into a log level. "information" is accepted
// as an alias of info.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// Is makes parse failures match mdwerror.ErrInvalidArgument
func (e *ParseError) Is(target error) bool {
	return target == mdwerror.ErrInvalidArgument
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAudit}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
