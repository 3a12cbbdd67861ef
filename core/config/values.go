// File: values.go
// Title: Typed Configuration Values
// Description: Typed getters over dotted keys. An environment override wins
//              over the file value, and a value that cannot be converted
//              falls back to the supplied default.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Split from config.go, conversions through spf13/cast

package config

import (
	"time"

	"github.com/spf13/cast"

	"github.com/msto63/extx/utils/enumx"
	mdwstringx "github.com/msto63/extx/utils/stringx"
)

// raw returns the environment override for key, or else the loaded value.
func (c *Config) raw(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.envValue(key); ok {
		return v
	}
	return c.lookup(key)
}

func get[T any](c *Config, key string, convert func(interface{}) (T, error), defaultValue []T) T {
	if v := c.raw(key); v != nil {
		if out, err := convert(v); err == nil {
			return out
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	var zero T
	return zero
}

func (c *Config) GetString(key string, defaultValue ...string) string {
	return get(c, key, cast.ToStringE, defaultValue)
}

func (c *Config) GetInt(key string, defaultValue ...int) int {
	return get(c, key, cast.ToIntE, defaultValue)
}

func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	return get(c, key, cast.ToBoolE, defaultValue)
}

// GetDuration accepts Go duration strings; plain numbers are nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	return get(c, key, cast.ToDurationE, defaultValue)
}

// GetStringSlice reads a list. A single string, as environment variables
// provide, is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	return get(c, key, toStringSlice, defaultValue)
}

func toStringSlice(v interface{}) ([]string, error) {
	if s, ok := v.(string); ok {
		return mdwstringx.SplitAndTrim(s, ","), nil
	}
	return cast.ToStringSliceE(v)
}

// GetEnum resolves a value to a member of T through enumx. Names and labels
// match case-insensitively, and flag enums accept several names. Values
// that match no member yield defaultValue.
func GetEnum[T enumx.Integer](c *Config, key string, defaultValue T) T {
	if v, ok := enumx.TryToEnum[T](c.GetString(key)); ok {
		return v
	}
	return defaultValue
}
