// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements slice utility functions for transformation, search
//              and in-place replacement with generic type support.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-14 v0.2.0: ReplaceFirst, ReplaceAt, First; trimmed helper set

package slicex

import (
	"fmt"
	"strings"

	"github.com/msto63/extx/core/errors"
)

// ===============================
// Transformation
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns the distinct elements in order of first appearance
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Chunk splits the slice into pieces of at most size elements
func Chunk[T any](slice []T, size int) [][]T {
	if slice == nil || size <= 0 {
		return nil
	}
	if len(slice) == 0 {
		return [][]T{}
	}

	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for size < len(slice) {
		slice, chunks = slice[size:], append(chunks, slice[:size:size])
	}
	return append(chunks, slice)
}

// GroupBy groups elements by the key returned from keyFunc
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, item := range slice {
		key := keyFunc(item)
		result[key] = append(result[key], item)
	}
	return result
}

// ===============================
// Search
// ===============================

// Contains checks if the slice contains the element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) >= 0
}

// IndexOf returns the index of the first occurrence of element, or -1
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// IndexOfBy returns the index of the first element matching predicate, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Find returns the first element matching predicate
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	if i := IndexOfBy(slice, predicate); i >= 0 {
		return slice[i], true
	}
	var zero T
	return zero, false
}

// First returns the first element or an error for an empty slice
func First[T any](slice []T) (T, error) {
	if len(slice) == 0 {
		var zero T
		return zero, errors.SlicexEmptySlice("first")
	}
	return slice[0], nil
}

// ===============================
// In-Place Replacement
// ===============================

// ReplaceFirst overwrites the first element matching selector with newItem,
// in place. It reports whether an element was replaced; later matches are
// left untouched.
func ReplaceFirst[T any](slice []T, newItem T, selector func(T) bool) bool {
	i := IndexOfBy(slice, selector)
	if i < 0 {
		return false
	}
	slice[i] = newItem
	return true
}

// ReplaceAt overwrites the element at index with newItem, in place.
func ReplaceAt[T any](slice []T, index int, newItem T) error {
	if index < 0 || index >= len(slice) {
		return errors.SlicexIndexOutOfRange("replace_at", index, len(slice))
	}
	slice[index] = newItem
	return nil
}

// ===============================
// String Conversion
// ===============================

// Join converts elements to strings and joins them with separator
func Join[T any](slice []T, separator string) string {
	parts := make([]string, len(slice))
	for i, item := range slice {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, separator)
}
