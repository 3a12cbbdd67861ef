// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic helpers for working with maps,
//              covering lookups with defaults, lazy insertion and the
//              cleanup of maps holding closable resources.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-14 v0.3.0: Dictionary operations, trimmed transformation helpers

// Package mapx provides generic helpers for working with maps.
//
// # Lookups
//
//	port := mapx.GetOrDefault(settings, "port", "8080")
//	if v, ok := mapx.TryGet(cache, key); ok { ... }
//	v, err := mapx.MustGet(registry, name) // MAPX_KEY_NOT_FOUND when absent
//
// # Updates
//
// AddOrUpdate stores a value and reports whether the key was new. GetOrAdd
// calls its factory only for missing keys:
//
//	conn := mapx.GetOrAdd(pool, host, dial)
//
// # Resource Maps
//
// ClearAndClose closes every value that implements io.Closer and empties the
// map. Close failures do not stop the sweep; they are joined into one error.
//
// # Concurrency
//
// The functions do no locking. Callers sharing a map between goroutines must
// synchronize access themselves.
package mapx
