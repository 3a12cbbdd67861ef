// File: codes.go
// Title: Module Names and Error Codes
// Description: Module identifiers and the error codes each extx package
//              reports, plus the per-module fallback codes the builder and
//              the generic helpers use.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial code set
// - 2026-10-13 v0.2.0: Codes for enumx, hashx, urlx, jsonx and numberx
// - 2026-10-15 v0.3.0: Fallback codes held in one table

package errors

const (
	ModuleEnumx   = "enumx"
	ModuleStringx = "stringx"
	ModuleMapx    = "mapx"
	ModuleSlicex  = "slicex"
	ModuleHashx   = "hashx"
	ModuleUrlx    = "urlx"
	ModuleJsonx   = "jsonx"
	ModuleNumberx = "numberx"
)

// Codes shared by all modules.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
)

const (
	CodeEnumxNotEnum         = "ENUMX_NOT_ENUM"
	CodeEnumxDuplicateType   = "ENUMX_DUPLICATE_TYPE"
	CodeEnumxInvalidCatalog  = "ENUMX_INVALID_CATALOG"
	CodeEnumxOperationFailed = "ENUMX_OPERATION_FAILED"

	CodeStringxInvalidFormat  = "STRINGX_INVALID_FORMAT"
	CodeStringxEncodingError  = "STRINGX_ENCODING_ERROR"
	CodeStringxInvalidPattern = "STRINGX_INVALID_PATTERN"

	CodeMapxKeyNotFound     = "MAPX_KEY_NOT_FOUND"
	CodeMapxOperationFailed = "MAPX_OPERATION_FAILED"

	CodeSlicexIndexOutOfRange = "SLICEX_INDEX_OUT_OF_RANGE"
	CodeSlicexOperationFailed = "SLICEX_OPERATION_FAILED"

	CodeHashxUnknownAlgorithm = "HASHX_UNKNOWN_ALGORITHM"
	CodeHashxReadFailed       = "HASHX_READ_FAILED"
	CodeHashxOperationFailed  = "HASHX_OPERATION_FAILED"

	CodeUrlxInvalidURL      = "URLX_INVALID_URL"
	CodeUrlxOperationFailed = "URLX_OPERATION_FAILED"

	CodeJsonxInvalidJSON     = "JSONX_INVALID_JSON"
	CodeJsonxMissingProperty = "JSONX_MISSING_PROPERTY"
	CodeJsonxReadFailed      = "JSONX_READ_FAILED"
	CodeJsonxOperationFailed = "JSONX_OPERATION_FAILED"

	CodeNumberxInvalidNumber   = "NUMBERX_INVALID_NUMBER"
	CodeNumberxOverflow        = "NUMBERX_OVERFLOW"
	CodeNumberxOperationFailed = "NUMBERX_OPERATION_FAILED"
)

type moduleCodes struct {
	invalidFormat   string
	operationFailed string
}

var modules = map[string]moduleCodes{
	ModuleEnumx:   {CodeEnumxInvalidCatalog, CodeEnumxOperationFailed},
	ModuleStringx: {CodeStringxInvalidFormat, CodeOperationFailed},
	ModuleMapx:    {CodeInvalidFormat, CodeMapxOperationFailed},
	ModuleSlicex:  {CodeInvalidFormat, CodeSlicexOperationFailed},
	ModuleHashx:   {CodeInvalidFormat, CodeHashxOperationFailed},
	ModuleUrlx:    {CodeUrlxInvalidURL, CodeUrlxOperationFailed},
	ModuleJsonx:   {CodeJsonxInvalidJSON, CodeJsonxOperationFailed},
	ModuleNumberx: {CodeNumberxInvalidNumber, CodeNumberxOperationFailed},
}

func invalidFormatCode(module string) string {
	if c, ok := modules[module]; ok {
		return c.invalidFormat
	}
	return CodeInvalidFormat
}

func operationFailedCode(module string) string {
	if c, ok := modules[module]; ok {
		return c.operationFailed
	}
	return CodeOperationFailed
}
