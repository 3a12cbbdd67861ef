// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors. The logger uses them to choose a
//              log level; codes map to a default severity.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-13 v0.2.0: Severity mapping for the reduced code set
// - 2026-10-15 v0.3.0: Table-driven names

package error

// Severity ranks how much an error matters, from SeverityLow to
// SeverityCritical.
type Severity int

const (
	// SeverityLow covers bad input the caller can correct.
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a code.
	SeverityMedium

	// SeverityHigh covers failures of the environment, such as I/O.
	SeverityHigh

	// SeverityCritical means data or the process can no longer be trusted.
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// Level returns the numeric level, 0 to 3.
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert reports whether s is high or critical.
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode returns the default severity of code.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeDataCorruption, CodeServiceUnavailable, CodeEnvironmentError:
		return SeverityCritical
	case CodeIOError, CodeUnauthorized, CodeForbidden, CodePermissionDenied,
		CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeParseError, CodeEncodingError, CodeMissingProperty:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
