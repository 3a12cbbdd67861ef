// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library: blank checks, defaults, rune-aware slicing,
//              padding and repetition.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-14 v0.2.0: Left, Right, Repeat, RepeatRune, SplitAndTrim;
//                       interning, case and random helpers removed

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/extx/core/errors"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FromDefault returns the string if not empty, otherwise returns the default value
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// FromBlankDefault returns the string if not blank, otherwise returns the default value
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// ValidateNotBlank validates that a string is not blank, following standard error patterns
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return errors.StringxValidationError("validate_not_blank", s, "non-blank string")
	}
	return nil
}

// Left returns the first n runes of s. A count beyond the length returns s,
// a count of zero or less returns "".
func Left(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Right returns the last n runes of s. A count beyond the length returns s,
// a count of zero or less returns "".
func Right(s string, n int) string {
	if n <= 0 {
		return ""
	}
	end := len(s)
	for i := 0; i < n && end > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		end -= size
	}
	return s[end:]
}

// Truncate shortens s to maxLen runes, ending with ellipsis when cut.
// If the ellipsis does not fit, the plain prefix is returned.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return Left(s, maxLen)
	}
	return Left(s, maxLen-ellipsisLen) + ellipsis
}

// Repeat returns s repeated count times. Empty input or a count of zero or
// less yields "".
func Repeat(s string, count int) string {
	if s == "" || count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// RepeatRune returns r repeated count times. The zero rune yields "".
func RepeatRune(r rune, count int) string {
	if r == 0 || count <= 0 {
		return ""
	}
	return strings.Repeat(string(r), count)
}

// PadRight pads s with pad up to width runes. Longer strings are returned
// unchanged.
func PadRight(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), missing)
}

// PadLeft pads s with pad on the left up to width runes.
func PadLeft(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(string(pad), missing) + s
}

// SplitAndTrim splits s on sep, trims every part and drops empty parts.
func SplitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
