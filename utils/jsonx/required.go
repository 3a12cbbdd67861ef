// File: required.go
// Title: Required Property Checks
// Description: Verifies that a JSON object carries every property a struct
//              type marks as required with the extx:"required" tag, before
//              the document is decoded.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package jsonx

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/msto63/extx/core/errors"
)

// TagName is the struct tag that marks required properties.
const TagName = "extx"

var requiredCache sync.Map // reflect.Type -> []string

// CheckRequired reports whether data is a JSON object that contains every
// required property of v's struct type with a non-null value. v may be a
// struct value or a pointer to one. Malformed JSON and non-struct types
// are errors; a valid document that is not an object reports false.
func CheckRequired(data []byte, v any) (bool, error) {
	missing, isObject, err := missingRequired(data, v)
	if err != nil {
		return false, err
	}
	return isObject && len(missing) == 0, nil
}

// ValidateRequired is CheckRequired that names the missing properties in a
// JSONX_MISSING_PROPERTY error.
func ValidateRequired(data []byte, v any) error {
	missing, isObject, err := missingRequired(data, v)
	if err != nil {
		return err
	}
	if !isObject {
		return errors.InvalidInput(errors.ModuleJsonx, "validate_required", string(data), "JSON object")
	}
	if len(missing) > 0 {
		return errors.JsonxMissingProperties(structType(v).String(), missing)
	}
	return nil
}

// RequiredFields lists the JSON names of the required properties of v's
// struct type in field order.
func RequiredFields(v any) ([]string, error) {
	t := structType(v)
	if t == nil {
		return nil, errors.InvalidInput(errors.ModuleJsonx, "required_fields", v, "struct or pointer to struct")
	}
	return requiredOf(t), nil
}

// missingRequired also reports whether data holds a JSON object at all.
func missingRequired(data []byte, v any) ([]string, bool, error) {
	required, err := RequiredFields(v)
	if err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, false, invalidJSON("check_required", nil)
	}
	if trimmed[0] != '{' {
		return nil, false, nil
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &object); err != nil {
		return nil, false, invalidJSON("check_required", err)
	}

	var missing []string
	for _, name := range required {
		raw, ok := object[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, name)
		}
	}
	return missing, true, nil
}

func structType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func requiredOf(t reflect.Type) []string {
	if cached, ok := requiredCache.Load(t); ok {
		return cached.([]string)
	}
	names := collectRequired(t, nil)
	actual, _ := requiredCache.LoadOrStore(t, names)
	return actual.([]string)
}

// collectRequired walks exported fields. Embedded structs without a JSON
// name are flattened the way encoding/json flattens them.
func collectRequired(t reflect.Type, names []string) []string {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, _, _ := strings.Cut(jsonTag, ",")

		if field.Anonymous && name == "" {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				names = collectRequired(ft, names)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		if hasOption(field.Tag.Get(TagName), "required") {
			if name == "" {
				name = field.Name
			}
			names = append(names, name)
		}
	}
	return names
}

func hasOption(tag, option string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == option {
			return true
		}
	}
	return false
}

func invalidJSON(operation string, cause error) error {
	b := errors.NewErrorBuilder(errors.ModuleJsonx).
		Operation(operation).
		Message("invalid JSON document").
		Code(errors.CodeJsonxInvalidJSON)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}
