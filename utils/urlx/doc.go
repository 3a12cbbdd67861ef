// File: doc.go
// Title: Package Documentation for urlx
// Description: Package urlx provides helpers for URLs and outgoing HTTP
//              requests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package urlx provides helpers for URLs and outgoing HTTP requests.
//
// The query helpers never modify the URL they receive. When nothing changes
// they return the same pointer, otherwise a copy:
//
//	u, _ := urlx.Parse("https://api.example.com/items?page=1")
//	next, _ := urlx.SetQueryParam(u, "page", "2")
//	bare := urlx.RemoveQueryParams(next, "page", "sort")
//
// ReplacePathTokens fills {name} placeholders in the path, matching names
// without regard to case and escaping each value as a single segment:
//
//	urlx.ReplacePathTokens(u, map[string]string{"id": "42"})
//
// CloneRequest buffers the request body so the original and the clone can
// both be sent.
package urlx
