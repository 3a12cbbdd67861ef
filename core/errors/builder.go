// File: builder.go
// Title: Fluent Error Builder
// Description: ErrorBuilder assembles *mdwerror.Error values that carry the
//              originating module and operation in their details, so every
//              extx package reports failures the same way.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-13 v0.2.0: Codes for enumx, hashx, urlx, jsonx and numberx
// - 2026-10-15 v0.3.0: Builder split out, fallback codes from the module table

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/extx/core/error"
)

// Detail keys every builder error carries.
const (
	DetailModule    = "module"
	DetailOperation = "operation"
)

// ErrorBuilder collects the parts of a module error. The zero severity is
// medium; a missing code falls back to the module's operation failure code.
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	code      string
	cause     error
	severity  mdwerror.Severity
	details   map[string]interface{}
}

// NewErrorBuilder starts an error for module.
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		severity: mdwerror.SeverityMedium,
		details:  map[string]interface{}{},
	}
}

func (b *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	b.operation = operation
	return b
}

func (b *ErrorBuilder) Message(message string) *ErrorBuilder {
	b.message = message
	return b
}

func (b *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

func (b *ErrorBuilder) Code(code string) *ErrorBuilder {
	b.code = code
	return b
}

func (b *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	b.severity = severity
	return b
}

// Detail records one key/value pair. The module and operation keys are
// always overwritten by Build.
func (b *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	b.details[key] = value
	return b
}

// Build creates the error. A nil cause produces a fresh error, otherwise the
// cause is wrapped and stays reachable through errors.Is and errors.As.
func (b *ErrorBuilder) Build() *mdwerror.Error {
	code := b.code
	if code == "" {
		code = operationFailedCode(b.module)
	}

	message := b.message
	if message == "" {
		message = b.qualifiedOperation() + " failed"
	}

	var err *mdwerror.Error
	if b.cause != nil {
		err = mdwerror.Wrap(b.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	details := make(map[string]interface{}, len(b.details)+2)
	for k, v := range b.details {
		details[k] = v
	}
	details[DetailModule] = b.module
	if b.operation != "" {
		details[DetailOperation] = b.operation
		err = err.WithOperation(b.qualifiedOperation())
	}

	// WithCode derives a severity, so the explicit one is applied last.
	return err.
		WithCode(mdwerror.Code(code)).
		WithDetails(details).
		WithSeverity(b.severity)
}

func (b *ErrorBuilder) qualifiedOperation() string {
	if b.operation == "" {
		return b.module
	}
	return fmt.Sprintf("%s.%s", b.module, b.operation)
}
