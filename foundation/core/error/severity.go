// File: severity.go
// Title: Error Severity Levels
// Description: Severity of an error. The logger picks the level of a logged
//              *Error from it.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Mapping reduced to library codes
// - 2026-10-14 v0.3.0: Code mapping unexported, alerting removed

package error

// Severity ranks an error from caller mistake to invariant breach
type Severity int

const (
	// SeverityLow marks caller mistakes: bad arguments, missing delimiters
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh marks broken configuration or environment
	SeverityHigh

	// SeverityCritical is reserved for internal invariant violations
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// severityOf is the severity WithCode assigns when none was set explicitly
func severityOf(code Code) Severity {
	switch {
	case code == CodeInternal:
		return SeverityCritical
	case code.Kind() != nil:
		return SeverityLow
	}
	switch code {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return SeverityHigh
	}
	return SeverityMedium
}
