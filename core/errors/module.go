// File: module.go
// Title: Package-Specific Error Helpers
// Description: One helper per recurring failure of an extx package, so call
//              sites stay short and each failure always carries the same
//              code, details and severity.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: stringx, mapx and slicex helpers
// - 2026-10-13 v0.2.0: enumx, hashx, jsonx and numberx helpers
// - 2026-10-15 v0.3.0: Slice index errors use the slicex code

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/extx/core/error"
)

func StringxValidationError(operation, input, expected string) *mdwerror.Error {
	return ValidationFailed(ModuleStringx, operation, input, expected)
}

func StringxFormatError(input, expectedFormat string) *mdwerror.Error {
	return InvalidFormat(ModuleStringx, input, expectedFormat)
}

// EnumxNotEnum is critical: it means a type was used as an enum without
// ever being registered.
func EnumxNotEnum(typeName string) *mdwerror.Error {
	return NewErrorBuilder(ModuleEnumx).
		Operation("cache_of").
		Message(fmt.Sprintf("type %s is not an enum type: register a definition or implement Definer", typeName)).
		Code(CodeEnumxNotEnum).
		Detail("type", typeName).
		Severity(mdwerror.SeverityCritical).
		Build()
}

func EnumxDuplicateType(typeName string) *mdwerror.Error {
	return NewErrorBuilder(ModuleEnumx).
		Operation("register").
		Message(fmt.Sprintf("enum type %s is already registered", typeName)).
		Code(CodeEnumxDuplicateType).
		Detail("type", typeName).
		Severity(mdwerror.SeverityHigh).
		Build()
}

func SlicexIndexOutOfRange(operation string, index, length int) *mdwerror.Error {
	return NewErrorBuilder(ModuleSlicex).
		Operation(operation).
		Message(fmt.Sprintf("index %d out of range for length %d", index, length)).
		Code(CodeSlicexIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Build()
}

func SlicexEmptySlice(operation string) *mdwerror.Error {
	return InvalidInput(ModuleSlicex, operation, "empty slice", "non-empty slice")
}

func MapxKeyNotFound(operation, key string) *mdwerror.Error {
	return NewErrorBuilder(ModuleMapx).
		Operation(operation).
		Message(fmt.Sprintf("key '%s' not found", key)).
		Code(CodeMapxKeyNotFound).
		Detail("key", key).
		Severity(mdwerror.SeverityLow).
		Build()
}

func HashxUnknownAlgorithm(name string) *mdwerror.Error {
	return NewErrorBuilder(ModuleHashx).
		Operation("resolve_algorithm").
		Message(fmt.Sprintf("unknown hash algorithm '%s'", name)).
		Code(CodeHashxUnknownAlgorithm).
		Detail("algorithm", name).
		Build()
}

func JsonxMissingProperties(typeName string, missing []string) *mdwerror.Error {
	return NewErrorBuilder(ModuleJsonx).
		Operation("check_required").
		Message(fmt.Sprintf("json is missing required properties of %s: %s", typeName, strings.Join(missing, ", "))).
		Code(CodeJsonxMissingProperty).
		Detail("type", typeName).
		Detail("missing", missing).
		Severity(mdwerror.SeverityLow).
		Build()
}

func NumberxInvalidNumber(operation string, input interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumberx).
		Operation(operation).
		Message(fmt.Sprintf("invalid number in %s.%s", ModuleNumberx, operation)).
		Code(CodeNumberxInvalidNumber).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

func NumberxOverflow(operation string, input interface{}, target string) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumberx).
		Operation(operation).
		Message(fmt.Sprintf("value does not fit into %s", target)).
		Code(CodeNumberxOverflow).
		Detail("input", input).
		Detail("target", target).
		Build()
}
