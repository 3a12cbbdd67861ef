// File: helpers.go
// Title: Generic Error Shortcuts and Analysis
// Description: Shortcuts for the failure kinds every extx package reports
//              and functions that read the module and operation back out
//              of an error chain.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-07-26 v0.1.1: OutOfRange messages start with "validation failed:"
// - 2026-10-15 v0.3.0: Analysis walks the chain with errors.As

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/extx/core/error"
)

// InvalidInput reports an argument that the operation cannot use.
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports input whose shape is wrong. The code is the
// module's own format code where it has one.
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message("invalid format in " + module).
		Code(invalidFormatCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed wraps cause as a high severity failure of operation.
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ValidationFailed reports a field that failed a check. The code is
// <MODULE>_VALIDATION_FAILED.
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("validation failed for %s: %s", field, reason)).
		Code(strings.ToUpper(module) + "_VALIDATION_FAILED").
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange reports a value outside [min, max].
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound reports a missing item.
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ModuleOf returns the module recorded by the outermost builder error in
// err's chain, or "".
func ModuleOf(err error) string {
	return detailOf(err, DetailModule)
}

// OperationOf returns the operation recorded by the outermost builder error
// in err's chain, or "".
func OperationOf(err error) string {
	return detailOf(err, DetailOperation)
}

// IsModuleError reports whether err was built for module.
func IsModuleError(err error, module string) bool {
	m := ModuleOf(err)
	return m != "" && m == module
}

func detailOf(err error, key string) string {
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		return ""
	}
	s, _ := mdwErr.Details()[key].(string)
	return s
}
