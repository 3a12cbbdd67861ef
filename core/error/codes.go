// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the extx utility packages. These codes enable structured error
//              handling, API response formatting and status mapping at service
//              boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-13 v0.2.0: Replaced platform codes with parsing and encoding codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Access
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeForbidden        Code = "FORBIDDEN"
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// Storage and I/O
	CodeIOError        Code = "IO_ERROR"
	CodeDataCorruption Code = "DATA_CORRUPTION"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Operations
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeUnsupportedType  Code = "UNSUPPORTED_TYPE"
	CodeResourceLocked   Code = "RESOURCE_LOCKED"

	// Encoding and parsing
	CodeParseError      Code = "PARSE_ERROR"
	CodeEncodingError   Code = "ENCODING_ERROR"
	CodeMissingProperty Code = "MISSING_PROPERTY"
	CodeOverflow        Code = "OVERFLOW"

	// Service and network
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError         Code = "NETWORK_ERROR"
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	return c.Category() != "generic" || isGeneric(c)
}

func isGeneric(c Code) bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnauthorized, CodeForbidden, CodePermissionDenied:
		return "access"
	case CodeIOError, CodeDataCorruption, CodeDuplicateEntry:
		return "storage"
	case CodeInvalidOperation, CodeUnsupportedType, CodeResourceLocked:
		return "operation"
	case CodeParseError, CodeEncodingError, CodeMissingProperty, CodeOverflow:
		return "encoding"
	case CodeServiceUnavailable, CodeNetworkError, CodeExternalServiceError:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeUnauthorized:
		return 401
	case CodeForbidden, CodePermissionDenied:
		return 403
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength, CodeParseError, CodeEncodingError,
		CodeMissingProperty, CodeOverflow, CodeUnsupportedType:
		return 400
	case CodeDuplicateEntry, CodeResourceLocked, CodeInvalidOperation:
		return 409
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeNetworkError:
		return 503
	case CodeExternalServiceError:
		return 502
	default:
		return 500
	}
}
