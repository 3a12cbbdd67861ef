// File: validation.go
// Title: Configuration Validation and Struct Binding
// Description: Rule based validation of configuration keys and binding of a
//              configuration section onto a struct with go-viper/mapstructure.
//              Both see environment overrides the way the getters do.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation and binding implementation
// - 2026-10-15 v0.3.0: Value types as an enum, binding via mapstructure,
//                       environment overrides honoured, Err on results

package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	mdwerror "github.com/msto63/extx/core/error"
	"github.com/msto63/extx/utils/enumx"
	"github.com/msto63/extx/utils/mapx"
)

// ValueType is the kind of value a rule expects.
type ValueType int

const (
	TypeAny ValueType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeDuration
	TypeStringSlice
)

func (ValueType) EnumDefinition() enumx.Definition[ValueType] {
	return enumx.Values(
		enumx.Member[ValueType]{Name: "any", Value: TypeAny},
		enumx.Member[ValueType]{Name: "string", Value: TypeString},
		enumx.Member[ValueType]{Name: "int", Value: TypeInt},
		enumx.Member[ValueType]{Name: "float", Value: TypeFloat},
		enumx.Member[ValueType]{Name: "bool", Value: TypeBool},
		enumx.Member[ValueType]{Name: "duration", Value: TypeDuration},
		enumx.Member[ValueType]{Name: "stringslice", Value: TypeStringSlice, Label: "[]string"},
	)
}

func (t ValueType) String() string { return enumx.GetDescription(t) }

// ValidationRule constrains one key. Min and Max bound numbers by value and
// strings and lists by length; nil means unbounded.
type ValidationRule struct {
	Required bool
	Type     ValueType
	Min      interface{}
	Max      interface{}
	Pattern  string      // regular expression a string value must match
	Default  interface{} // stored when the key is absent
}

// ValidationRules maps dotted keys to their rules.
type ValidationRules map[string]ValidationRule

// ValidationResult lists one message per failed key, sorted by key.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err is nil for a valid result and an INVALID_CONFIG error otherwise.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate checks every rule. Defaults of absent keys are stored, and
// whole-number floats validated as TypeInt are stored as int64.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ValidationResult{Valid: true}
	for _, key := range mapx.SortedKeys(rules) {
		if err := c.validateKey(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateKey(key string, rule ValidationRule) error {
	value := c.lookup(key)
	if env, ok := c.envValue(key); ok {
		value = env
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("%s is required", key)
		}
		if rule.Default != nil {
			setNestedValue(c.data, key, rule.Default)
		}
		return nil
	}

	size, err := c.checkType(key, value, rule.Type)
	if err != nil {
		return err
	}
	if rule.Min != nil && size < cast.ToFloat64(rule.Min) {
		return fmt.Errorf("%s must be at least %v", key, rule.Min)
	}
	if rule.Max != nil && size > cast.ToFloat64(rule.Max) {
		return fmt.Errorf("%s must be at most %v", key, rule.Max)
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("%s has an invalid pattern: %v", key, err)
		}
		if !re.MatchString(cast.ToString(value)) {
			return fmt.Errorf("%s does not match %s", key, rule.Pattern)
		}
	}
	return nil
}

// checkType returns the measure Min and Max apply to: the value of a
// number, the rune count of a string or the length of a list.
func (c *Config) checkType(key string, value interface{}, want ValueType) (float64, error) {
	mismatch := func() error {
		return fmt.Errorf("%s must be %s, got %T", key, want, value)
	}

	switch want {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return 0, mismatch()
		}
		return float64(utf8.RuneCountInString(s)), nil
	case TypeInt:
		if f, ok := value.(float64); ok {
			if f != float64(int64(f)) {
				return 0, mismatch()
			}
			setNestedValue(c.data, key, int64(f))
		}
		n, err := cast.ToInt64E(value)
		if err != nil {
			return 0, mismatch()
		}
		return float64(n), nil
	case TypeFloat:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return 0, mismatch()
		}
		return f, nil
	case TypeBool:
		if _, err := cast.ToBoolE(value); err != nil {
			return 0, mismatch()
		}
		return 0, nil
	case TypeDuration:
		d, err := cast.ToDurationE(value)
		if err != nil {
			return 0, mismatch()
		}
		return float64(d), nil
	case TypeStringSlice:
		list, err := toStringSlice(value)
		if err != nil {
			return 0, mismatch()
		}
		return float64(len(list)), nil
	default:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return float64(utf8.RuneCountInString(cast.ToString(value))), nil
		}
		return f, nil
	}
}

// BindToStruct decodes the section under keyPrefix into target, a pointer
// to a struct. Fields are matched by their config tag, or by name ignoring
// case, and values are converted weakly ("8" binds to an int). Environment
// overrides apply per field. Fields tagged validate:"required" must end up
// set. An empty keyPrefix binds the whole configuration.
func (c *Config) BindToStruct(keyPrefix string, target interface{}) error {
	const op = "config.BindToStruct"

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return mdwerror.New("target must be a pointer to struct").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op)
	}

	c.mu.RLock()
	section, err := c.section(keyPrefix)
	c.mu.RUnlock()
	if err != nil {
		return err
	}

	st := rv.Elem().Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		key := fieldKey(field)
		if key == "" {
			continue
		}
		full := key
		if keyPrefix != "" {
			full = keyPrefix + "." + key
		}
		c.mu.RLock()
		env, ok := c.envValue(full)
		c.mu.RUnlock()
		if ok {
			section[key] = env
		}
		if section[key] == nil && strings.Contains(field.Tag.Get("validate"), "required") {
			return mdwerror.New(fmt.Sprintf("required field '%s' not found in configuration", full)).
				WithCode(mdwerror.CodeValidationFailed).
				WithOperation(op).
				WithDetail("key", full)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result: target,
	})
	if err != nil {
		return mdwerror.Wrap(err, "cannot build decoder").
			WithCode(mdwerror.CodeInternal).
			WithOperation(op)
	}
	if err := decoder.Decode(section); err != nil {
		return mdwerror.Wrap(err, "cannot bind configuration").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op).
			WithDetail("keyPrefix", keyPrefix)
	}
	return nil
}

// section returns a copy of the map under keyPrefix. A missing section is
// empty; a key holding a plain value is an error.
func (c *Config) section(keyPrefix string) (map[string]interface{}, error) {
	if keyPrefix == "" {
		return deepCopyMap(c.data), nil
	}
	switch v := c.lookup(keyPrefix).(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return deepCopyMap(v), nil
	default:
		return nil, mdwerror.New(fmt.Sprintf("configuration key '%s' is not a section", keyPrefix)).
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.BindToStruct").
			WithDetail("keyPrefix", keyPrefix)
	}
}

// fieldKey is the key a field binds to, or "" for skipped fields.
func fieldKey(field reflect.StructField) string {
	if !field.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(field.Tag.Get("config"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	}
	return name
}
