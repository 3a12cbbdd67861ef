// Package errors provides the standard error handling interface for all extx
// utility packages. This is the error API that the packages use.
//
// Package: errors
// Title: Standard Error Handling API for extx
// Description: This package provides common error patterns, standardized error
//              codes and utilities for creating consistent errors across all
//              extx utility packages. It builds on the core error package to
//              provide package-specific error handling while keeping errors
//              consistent for analysis and monitoring.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-13 v0.2.0: Codes for enumx, hashx, urlx, jsonx and numberx
// - 2026-10-15 v0.3.0: Builder, codes and helpers in separate files
//
// Package Overview:
//
// # Standardized Error Codes
//
// Module-specific error codes for consistent error categorization:
//   - Common codes: INVALID_INPUT, INVALID_FORMAT, OUT_OF_RANGE, etc.
//   - enumx codes: ENUMX_NOT_ENUM, ENUMX_DUPLICATE_TYPE, ENUMX_INVALID_CATALOG
//   - stringx codes: STRINGX_INVALID_FORMAT, STRINGX_ENCODING_ERROR, STRINGX_INVALID_PATTERN
//   - hashx codes: HASHX_UNKNOWN_ALGORITHM, HASHX_READ_FAILED
//   - jsonx codes: JSONX_INVALID_JSON, JSONX_MISSING_PROPERTY, etc.
//   - numberx codes: NUMBERX_INVALID_NUMBER, NUMBERX_OVERFLOW
//
// # Error Creation Utilities
//
// The ErrorBuilder is the base of all helpers:
//
//	err := errors.NewErrorBuilder(errors.ModuleHashx).
//		Operation("hash_reader").
//		Cause(readErr).
//		Code(errors.CodeHashxReadFailed).
//		Build()
//
// Shortcuts cover the common cases: InvalidInput, InvalidFormat,
// OperationFailed, ValidationFailed, OutOfRange and NotFound, plus
// package-specific helpers such as EnumxNotEnum or NumberxOverflow.
//
// # Error Analysis Functions
//
//	if errors.IsModuleError(err, errors.ModuleEnumx) {
//		op := errors.OperationOf(err)
//		...
//	}
//
// Both look through wrapping, so an enumx error returned inside a
// fmt.Errorf("%w") still reports its module.
//
// Every error created here is a *mdwerror.Error, so it carries a code,
// a severity, an ID and a stack trace, and it converts to a gRPC status.
package errors
