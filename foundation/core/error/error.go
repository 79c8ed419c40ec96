// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, details and a
//              captured stack trace, plus the two error kinds used across
//              quickx. Error stays compatible with the standard errors package:
//              Unwrap exposes the cause and Is matches the kind sentinels.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-12 v0.2.0: ErrInvalidArgument / ErrNotFound kinds, dropped user and request metadata
// - 2026-10-14 v0.3.0: One constructor path, removed context, String and root cause accessors

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"time"
)

// Error kinds. Every *Error with a validation code matches ErrInvalidArgument
// and every *Error with CodeNotFound matches ErrNotFound under errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

// Error is a coded error with details and the stack of its creation
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	details   map[string]interface{}
	operation string
	stack     []StackFrame
}

// StackFrame is one captured call site
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxErrorChainDepth limits how many *Error values Wrap stacks
	MaxErrorChainDepth = 15

	// MaxStackFrames limits the frames captured per error
	MaxStackFrames = 20
)

// newError builds an uncoded error; skip counts frames above newError's caller
func newError(message string, cause error, skip int) *Error {
	return &Error{
		message:   message,
		cause:     cause,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
		stack:     callers(skip + 2),
	}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return newError(message, nil, 1)
}

// Wrap wraps err with message. Code, severity, operation and details of a
// wrapped *Error are inherited. Chains deeper than MaxErrorChainDepth are
// collapsed onto their root cause.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth, root := chainOf(err); depth >= MaxErrorChainDepth {
		e := newError(fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, root.Error()), nil, 1)
		e.code = GetCode(err)
		e.severity = SeverityHigh
		e.details["truncated"] = true
		e.details["original_depth"] = depth
		return e
	}

	wrapped := newError(message, err, 1)
	if qErr, ok := err.(*Error); ok {
		wrapped.code = qErr.code
		wrapped.severity = qErr.severity
		wrapped.operation = qErr.operation
		maps.Copy(wrapped.details, qErr.details)
	}
	return wrapped
}

// chainOf follows direct *Error causes and returns the number of links
// and the last error reached
func chainOf(err error) (int, error) {
	depth, last := 0, err
	for current := err; current != nil; depth++ {
		last = current
		qErr, ok := current.(*Error)
		if !ok {
			return depth + 1, last
		}
		current = qErr.cause
	}
	return depth, last
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the error belongs to the target kind.
func (e *Error) Is(target error) bool {
	kind := e.code.Kind()
	return kind != nil && target == kind
}

// WithCode sets the error code. A severity left at the default is derived
// from the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = severityOf(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds every pair of details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	maps.Copy(e.details, details)
	return e
}

// WithOperation records the failing operation, conventionally "module.Func"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Severity() Severity {
	return e.severity
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	return maps.Clone(e.details)
}

func (e *Error) Operation() string {
	return e.operation
}

// StackTrace returns a copy of the captured frames, innermost first
func (e *Error) StackTrace() []StackFrame {
	return append([]StackFrame(nil), e.stack...)
}

// MarshalJSON renders the error for the JSON log formatter
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	if len(e.stack) > 0 {
		data["stack_trace"] = e.stack
	}
	return json.Marshal(data)
}

func callers(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			return stack
		}
	}
}

// HasCode checks if any error in the chain carries the code
func HasCode(err error, code Code) bool {
	var qErr *Error
	for errors.As(err, &qErr) {
		if qErr.code == code {
			return true
		}
		err = qErr.cause
	}
	return false
}

// GetCode returns the code of the first *Error in the chain, or CodeUnknown
func GetCode(err error) Code {
	var qErr *Error
	if errors.As(err, &qErr) {
		return qErr.code
	}
	return CodeUnknown
}
