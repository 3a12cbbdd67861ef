// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              extx utilities, offering Unicode-safe slicing, defaults,
//              token replacement and hex conversion.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-14 v0.3.0: Token replacement, hex conversion, Left and Right

// Package stringx provides extended string operations.
//
// All functions count runes, not bytes, so multi-byte characters are never
// split.
//
// # Checks and Defaults
//
//	mdwstringx.IsBlank(" \t")                 // true
//	mdwstringx.FromBlankDefault("", "n/a")    // "n/a"
//	mdwstringx.FirstNonBlank("", " ", "x")    // "x"
//
// # Slicing and Padding
//
//	mdwstringx.Left("Grüße", 3)               // "Grü"
//	mdwstringx.Right("Grüße", 2)              // "ße"
//	mdwstringx.Truncate("long text", 6, "…")  // "long …"
//	mdwstringx.PadRight("id", 5, ' ')         // "id   "
//	mdwstringx.RepeatRune('─', 10)
//
// # Token Replacement
//
// Placeholders between an opening and a closing rune are replaced from a
// map. Unknown placeholders stay as they are:
//
//	mdwstringx.ReplaceTokensDefault("/users/{id}/{tab}", map[string]string{"id": "7"})
//	// "/users/7/{tab}"
//
// ReplaceTokensFunc takes a lookup function instead, for values that need
// escaping or are computed on demand.
//
// # Hex Conversion
//
//	mdwstringx.ToHex("ä")          // "C3A4"
//	mdwstringx.FromHex("c3a4")     // "ä", nil
//
// # Error Handling
//
// Functions that can fail return *mdwerror.Error values from the core/errors
// helpers with stringx codes such as STRINGX_INVALID_FORMAT and
// STRINGX_INVALID_PATTERN.
package stringx
