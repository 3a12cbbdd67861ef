// Package slicex implements generic slice helpers for the extx utilities.
//
// Package: slicex
// Title: Extended Slice Utilities for Go
// Description: Transformation, search and in-place replacement helpers for
//              Go slices of any element type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: ReplaceFirst and ReplaceAt, trimmed helper set
//
// # Transformation
//
// Filter, Map, Unique, Chunk and GroupBy return new slices or maps and never
// modify their input.
//
// # Replacement
//
// ReplaceFirst and ReplaceAt write into the slice they are given:
//
//	users := []User{{ID: 1}, {ID: 2}}
//	slicex.ReplaceFirst(users, User{ID: 2, Name: "updated"}, func(u User) bool {
//		return u.ID == 2
//	})
//
// Only the first matching element is replaced. ReplaceAt reports an index
// outside the slice as SLICEX_INDEX_OUT_OF_RANGE.
package slicex
