// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type: a message with a code, severity,
//              details, the failing operation and a stack trace, compatible
//              with the standard errors package.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-13 v0.2.0: Error IDs for correlating logged and returned errors
// - 2026-10-15 v0.3.0: Lookups through errors.As, request and localization
//                       fields removed

package error

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"maps"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxErrorChainDepth bounds how many *Error values Wrap stacks before it
	// flattens the chain into one message.
	MaxErrorChainDepth = 15

	// MaxStackFrames bounds the captured stack trace.
	MaxStackFrames = 20
)

// Error is a structured error. The With methods modify the error in place
// and return it for chaining.
type Error struct {
	id        string
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	details   map[string]interface{}
	operation string
	stack     []StackFrame
}

// StackFrame is one captured call site.
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

func newError(message string, cause error) *Error {
	return &Error{
		id:        uuid.NewString(),
		message:   message,
		cause:     cause,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
		stack:     captureStack(4),
	}
}

// New creates an error with CodeUnknown and medium severity.
func New(message string) *Error {
	return newError(message, nil)
}

// Wrap adds message in front of err. A wrapped *Error passes on its ID,
// code, severity and details. Chains deeper than MaxErrorChainDepth are
// flattened. Wrap(nil, ...) returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		flat := newError(fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, rootOf(err).Error()), nil)
		flat.severity = SeverityHigh
		flat.details["truncated"] = true
		flat.details["original_depth"] = depth
		return flat
	}

	wrapped := newError(message, err)
	var inner *Error
	if stderrors.As(err, &inner) {
		wrapped.id = inner.id
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		maps.Copy(wrapped.details, inner.details)
	}
	return wrapped
}

func chainDepth(err error) int {
	depth := 0
	for e, ok := err.(*Error); ok; e, ok = e.cause.(*Error) {
		depth++
	}
	return depth
}

func rootOf(err error) error {
	for {
		e, ok := err.(*Error)
		if !ok || e.cause == nil {
			return err
		}
		err = e.cause
	}
}

// Error implements error. The causes' messages follow after a colon.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code. While the severity is still the medium default,
// it is derived from the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithDetails(details map[string]interface{}) *Error {
	maps.Copy(e.details, details)
	return e
}

// WithOperation names the operation that failed, e.g. "config.Load".
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// ID identifies the error in logs. Wrapping an *Error keeps its ID.
func (e *Error) ID() string { return e.id }

func (e *Error) Code() Code { return e.code }

func (e *Error) Severity() Severity { return e.severity }

func (e *Error) Timestamp() time.Time { return e.timestamp }

func (e *Error) Operation() string { return e.operation }

// Details returns a copy of the details.
func (e *Error) Details() map[string]interface{} {
	return maps.Clone(e.details)
}

// StackTrace returns a copy of the captured frames, innermost first.
func (e *Error) StackTrace() []StackFrame {
	return append([]StackFrame(nil), e.stack...)
}

// RootCause returns the innermost error of the chain, or e itself.
func (e *Error) RootCause() error {
	return rootOf(e)
}

// String renders the error with its metadata, one field per line.
func (e *Error) String() string {
	lines := []string{
		"Error: " + e.message,
		"ID: " + e.id,
		"Code: " + string(e.code),
		"Severity: " + e.severity.String(),
		"Timestamp: " + e.timestamp.Format(time.RFC3339),
	}
	if e.operation != "" {
		lines = append(lines, "Operation: "+e.operation)
	}
	if len(e.details) > 0 {
		pairs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
		}
		lines = append(lines, "Details: {"+strings.Join(pairs, ", ")+"}")
	}
	if e.cause != nil {
		lines = append(lines, "Cause: "+e.cause.Error())
	}
	return strings.Join(lines, "\n")
}

// MarshalJSON renders the error for structured logs.
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"error_id":  e.id,
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

// captureStack records the caller frames above skip.
func captureStack(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return stack
}

// HasCode reports whether the first *Error in err's chain has code.
func HasCode(err error, code Code) bool {
	var e *Error
	return stderrors.As(err, &e) && e.code == code
}

// GetCode returns the code of the first *Error in err's chain, or
// CodeUnknown.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first *Error in err's chain, or
// SeverityMedium.
func GetSeverity(err error) Severity {
	var e *Error
	if stderrors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}
