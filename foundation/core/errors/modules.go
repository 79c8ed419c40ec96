// File: modules.go
// Title: Module Error Constructors
// Description: Shorthand constructors used by the quickx packages. Argument
//              misuse produces validation codes (matching ErrInvalidArgument);
//              missing content produces CodeNotFound (matching ErrNotFound).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial module helpers
// - 2026-10-13 v0.2.0: Rewritten around the two error kinds

package errors

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTimex   = "timex"
	ModuleDatex   = "datex"
	ModuleStringx = "stringx"
	ModuleSeqx    = "seqx"
	ModuleMathx   = "mathx"
	ModuleLog     = "log"
	ModuleConfig  = "config"
	ModuleI18n    = "i18n"
)

// RequiredArgument reports an absent reference argument
func RequiredArgument(module, operation, name string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeRequiredField).
		Messagef("%s: %s must not be nil", operation, name).
		Detail("argument", name).
		Build()
}

// OutOfRange reports a numeric argument violating its precondition
func OutOfRange(module, operation, name string, value interface{}, constraint string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeValueOutOfRange).
		Messagef("%s: %s must be %s, got %v", operation, name, constraint, value).
		Detail("argument", name).
		Detail("value", value).
		Detail("constraint", constraint).
		Build()
}

// InvalidInput reports an argument that is present but unusable
func InvalidInput(module, operation, name string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidInput).
		Messagef("%s: invalid %s %q: %s", operation, name, fmt.Sprint(value), reason).
		Detail("argument", name).
		Detail("value", value).
		Build()
}

// InvalidFormat reports input that does not match the expected format
func InvalidFormat(module, operation string, input interface{}, expected string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidFormat).
		Messagef("%s: input does not match %s", operation, expected).
		Cause(cause).
		Detail("input", input).
		Detail("expected_format", expected).
		Build()
}

// NotFound reports missing content in otherwise valid input
func NotFound(module, operation, what string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeNotFound).
		Messagef("%s: %s %q not found", operation, what, fmt.Sprint(identifier)).
		Detail(what, identifier).
		Build()
}

// ===============================
// timex / datex
// ===============================

// TimexInvalidInterval reports a zero or negative truncate/round interval
func TimexInvalidInterval(operation string, d time.Duration) *mdwerror.Error {
	return OutOfRange(ModuleTimex, operation, "interval", d, "> 0")
}

// TimexInvalidTimezone reports an absent or unresolvable timezone
func TimexInvalidTimezone(operation, timezone string, cause error) *mdwerror.Error {
	reason := "timezone identifier is empty"
	if cause != nil {
		reason = cause.Error()
	}
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Code(mdwerror.CodeInvalidInput).
		Messagef("%s: invalid timezone %q: %s", operation, timezone, reason).
		Cause(cause).
		Detail("timezone", timezone).
		Build()
}

// TimexNilLocation reports an absent *time.Location argument
func TimexNilLocation(operation, name string) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation(operation).
		Code(mdwerror.CodeInvalidInput).
		Messagef("%s: %s location must not be nil", operation, name).
		Detail("argument", name).
		Detail("timezone", nil).
		Build()
}

// TimexParseError reports an unparsable timestamp
func TimexParseError(operation, input, expectedFormat string, cause error) *mdwerror.Error {
	return InvalidFormat(ModuleTimex, operation, input, expectedFormat, cause)
}

// DatexInvalidDate reports an out-of-calendar date
func DatexInvalidDate(operation string, date interface{}) *mdwerror.Error {
	return InvalidInput(ModuleDatex, operation, "date", date, "not a valid calendar date")
}

// ===============================
// stringx
// ===============================

// StringxLengthExceeded reports a length argument outside [0, length]
func StringxLengthExceeded(operation string, n, length int) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Code(mdwerror.CodeInvalidLength).
		Messagef("%s: length %d is outside the string length %d", operation, n, length).
		Detail("length", n).
		Detail("actual_length", length).
		Build()
}

// StringxDelimiterNotFound reports a delimiter absent from the source text
func StringxDelimiterNotFound(operation, delimiter string) *mdwerror.Error {
	return NotFound(ModuleStringx, operation, "delimiter", delimiter)
}

// StringxInvalidFormat reports malformed text input
func StringxInvalidFormat(operation, input, expected string, cause error) *mdwerror.Error {
	return InvalidFormat(ModuleStringx, operation, input, expected, cause)
}

// ===============================
// seqx
// ===============================

// SeqxNilArgument reports a nil sequence or callback
func SeqxNilArgument(operation, name string) *mdwerror.Error {
	return RequiredArgument(ModuleSeqx, operation, name)
}

// SeqxOutOfRange reports a paging or batching argument violating its precondition
func SeqxOutOfRange(operation, name string, value int, constraint string) *mdwerror.Error {
	return OutOfRange(ModuleSeqx, operation, name, value, constraint)
}

// ===============================
// mathx
// ===============================

// MathxInvalidDecimal reports a string that is not a decimal number
func MathxInvalidDecimal(input string) *mdwerror.Error {
	return InvalidFormat(ModuleMathx, "NewDecimal", input, "decimal number", nil)
}

// MathxOutOfRange reports a digit count outside the supported range
func MathxOutOfRange(operation, name string, value int, constraint string) *mdwerror.Error {
	return OutOfRange(ModuleMathx, operation, name, value, constraint)
}

// MathxDivisionByZero reports a zero divisor
func MathxDivisionByZero(operation string) *mdwerror.Error {
	return InvalidInput(ModuleMathx, operation, "divisor", 0, "division by zero")
}

// ===============================
// log / config
// ===============================

// LogNilSink reports a scope opened without a sink
func LogNilSink(operation string) *mdwerror.Error {
	return RequiredArgument(ModuleLog, operation, "sink")
}

// LogEmptyMethod reports a scope opened without a method name
func LogEmptyMethod(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleLog).
		Operation(operation).
		Code(mdwerror.CodeRequiredField).
		Messagef("%s: method name must not be empty", operation).
		Detail("argument", "method").
		Build()
}

// ConfigInvalidValue reports a setting that cannot be applied
func ConfigInvalidValue(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("Settings").
		Code(mdwerror.CodeInvalidConfig).
		Messagef("invalid value %v for %s: %s", value, key, reason).
		Detail("key", key).
		Detail("value", value).
		Build()
}
