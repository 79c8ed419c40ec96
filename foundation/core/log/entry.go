// File: entry.go
// Title: Log Entry
// Description: The Entry record handed to formatters and the Fields map used
//              for structured key-value data.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured fields
// - 2026-10-12 v0.2.0: Dropped request/user context, sorted key access
// - 2026-10-14 v0.3.0: Entry reduced to what the formatters render

package log

import (
	"maps"
	"slices"
	"time"
)

// Entry is one formatted record. Fields holds the logger's context fields
// overlaid with the call's fields.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
	Caller    *CallerInfo
}

// CallerInfo is the call site recorded when caller tracking is enabled
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields are key-value pairs attached to an entry
type Fields map[string]interface{}

// Field returns a single-pair Fields
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Clone returns a shallow copy; nil stays nil
func (f Fields) Clone() Fields {
	return maps.Clone(f)
}

// Keys returns the field names sorted
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// NewEntry returns an entry stamped with the current time and empty fields
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
