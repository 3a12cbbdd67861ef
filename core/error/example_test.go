// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the extx error handling system.
//              These examples demonstrate common use cases.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-13 v0.2.0: Examples for parsing errors and gRPC status mapping

package error

import (
	"fmt"
	"io/fs"
	"strings"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("catalog file could not be read").
		WithCode(CodeIOError).
		WithDetail("path", "/etc/extx/enums.toml").
		WithSeverity(SeverityHigh)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: catalog file could not be read
	// Code: IO_ERROR
	// Severity: high
}

// ExampleWrap demonstrates wrapping an existing error with context
func ExampleWrap() {
	err := Wrap(fs.ErrNotExist, "enum catalog not found").
		WithCode(CodeNotFound).
		WithDetail("path", "enums.yaml").
		WithOperation("load_catalog")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: enum catalog not found: file does not exist
	// Code: NOT_FOUND
}

// ExampleError_WithDetails demonstrates adding multiple details to an error
func ExampleError_WithDetails() {
	err := New("json is missing required properties").
		WithCode(CodeMissingProperty).
		WithDetails(map[string]interface{}{
			"type":    "Order",
			"missing": []string{"id", "total"},
			"offset":  0,
		})

	fmt.Println("Error:", err.Error())
	fmt.Println("Details count:", len(err.Details()))
	fmt.Println("Type:", err.Details()["type"])

	// Output:
	// Error: json is missing required properties
	// Details count: 3
	// Type: Order
}

// ExampleHasCode demonstrates checking for specific error codes
func ExampleHasCode() {
	err := New("value does not fit into int8").
		WithCode(CodeOverflow)

	if HasCode(err, CodeOverflow) {
		fmt.Println("This is an overflow error")
	}

	if HasCode(err, CodeParseError) {
		fmt.Println("This is a parse error")
	} else {
		fmt.Println("This is not a parse error")
	}

	// Output:
	// This is an overflow error
	// This is not a parse error
}

// ExampleGetSeverityFromCode demonstrates automatic severity assignment
func ExampleGetSeverityFromCode() {
	codes := []Code{
		CodeDataCorruption,
		CodeIOError,
		CodeInvalidOperation,
		CodeParseError,
	}

	for _, code := range codes {
		severity := GetSeverityFromCode(code)
		fmt.Printf("Code: %s -> Severity: %s (Should Alert: %t)\n",
			code, severity, severity.ShouldAlert())
	}

	// Output:
	// Code: DATA_CORRUPTION -> Severity: critical (Should Alert: true)
	// Code: IO_ERROR -> Severity: high (Should Alert: true)
	// Code: INVALID_OPERATION -> Severity: medium (Should Alert: false)
	// Code: PARSE_ERROR -> Severity: low (Should Alert: false)
}

// ExampleError_RootCause demonstrates finding the root cause of error chains
func ExampleError_RootCause() {
	original := New("unexpected end of input").WithCode(CodeParseError)
	middle := Wrap(original, "catalog decoding failed")
	top := Wrap(middle, "startup failed")

	fmt.Println("Top error:", top.Error())
	fmt.Println("Root cause:", top.RootCause().Error())
	fmt.Println("Root cause code:", GetCode(top.RootCause()))
	fmt.Println("Same ID:", top.ID() == original.ID())

	// Output:
	// Top error: startup failed: catalog decoding failed: unexpected end of input
	// Root cause: unexpected end of input
	// Root cause code: PARSE_ERROR
	// Same ID: true
}

// ExampleError_MarshalJSON demonstrates JSON serialization for logging
func ExampleError_MarshalJSON() {
	err := New("unknown hash algorithm").
		WithCode(CodeInvalidInput).
		WithOperation("hashx.ParseAlgorithm").
		WithDetail("algorithm", "crc7")

	data, _ := err.MarshalJSON()
	fmt.Println("Has error_id:", strings.Contains(string(data), `"error_id":"`+err.ID()+`"`))
	fmt.Println("Has code:", strings.Contains(string(data), `"code":"INVALID_INPUT"`))

	// Output:
	// Has error_id: true
	// Has code: true
}

// Example_parseError demonstrates categorizing a parsing failure
func Example_parseError() {
	parseDigits := func(s string) error {
		for i, r := range s {
			if r < '0' || r > '9' {
				return New("non-digit character in input").
					WithCode(CodeParseError).
					WithDetail("input", s).
					WithDetail("position", i)
			}
		}
		return nil
	}

	err := parseDigits("12a4")
	if err != nil {
		fmt.Println("Parse error:", err.Error())
		fmt.Println("Category:", GetCode(err).Category())
		fmt.Println("HTTP Status:", GetCode(err).HTTPStatus())
		fmt.Println("gRPC Status:", GetCode(err).GRPCCode())
	}

	// Output:
	// Parse error: non-digit character in input
	// Category: encoding
	// HTTP Status: 400
	// gRPC Status: InvalidArgument
}
