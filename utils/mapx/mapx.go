// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map helpers for reading, updating and transforming
//              Go maps, including insert-or-update, lazy insertion and
//              closing of resource-holding values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-14 v0.2.0: AddOrUpdate, GetOrAdd, TryGet, RemoveIfExists, ClearAndClose

package mapx

import (
	"cmp"
	stderrors "errors"
	"fmt"
	"io"
	"slices"

	"github.com/msto63/extx/core/errors"
)

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns a slice of all values from the map
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Merge combines multiple maps into a new map. Later maps override earlier
// ones for duplicate keys.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Filter creates a new map with the entries matching the predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Invert creates a new map by swapping keys and values. When several keys
// share a value, which of them survives is unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	if m == nil {
		return nil
	}

	inverted := make(map[V]K, len(m))
	for k, v := range m {
		inverted[v] = k
	}
	return inverted
}

// AddOrUpdate stores value under key, replacing any existing value.
// It reports whether the key was newly added.
func AddOrUpdate[K comparable, V any](m map[K]V, key K, value V) bool {
	_, exists := m[key]
	m[key] = value
	return !exists
}

// GetOrAdd returns the value stored under key. A missing key is filled with
// factory(key) first; factory is not called for keys already present.
func GetOrAdd[K comparable, V any](m map[K]V, key K, factory func(K) V) V {
	if v, ok := m[key]; ok {
		return v
	}
	v := factory(key)
	m[key] = v
	return v
}

// TryGet returns the value under key and whether it exists. A missing key
// yields the zero value of V.
func TryGet[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// GetOrDefault returns the value under key or defaultValue when absent.
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return defaultValue
}

// MustGet returns the value under key or a MAPX_KEY_NOT_FOUND error.
func MustGet[K comparable, V any](m map[K]V, key K) (V, error) {
	v, ok := m[key]
	if !ok {
		return v, errors.MapxKeyNotFound("must_get", fmt.Sprint(key))
	}
	return v, nil
}

// RemoveIfExists deletes key and reports whether it was present.
func RemoveIfExists[K comparable, V any](m map[K]V, key K) bool {
	if _, ok := m[key]; !ok {
		return false
	}
	delete(m, key)
	return true
}

// ClearAndClose closes every value implementing io.Closer and empties the
// map. All values are closed even when some fail; the failures are joined
// into a single MAPX_OPERATION_FAILED error.
func ClearAndClose[K comparable, V any](m map[K]V) error {
	var errs []error
	for k, v := range m {
		if c, ok := any(v).(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %v: %w", k, err))
			}
		}
	}
	clear(m)

	if len(errs) == 0 {
		return nil
	}
	return errors.NewErrorBuilder(errors.ModuleMapx).
		Operation("clear_and_close").
		Message(fmt.Sprintf("%d of the map values failed to close", len(errs))).
		Cause(stderrors.Join(errs...)).
		Code(errors.CodeMapxOperationFailed).
		Detail("failures", len(errs)).
		Build()
}
