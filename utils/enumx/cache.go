// File: cache.go
// Title: Enum Type Cache
// Description: Builds the immutable per-type cache of label, name and flag
//              mappings, resolves text to enum values against it and renders
//              values back into labels. Flag values are decomposed greedily
//              from the widest mask down, so composite members win over the
//              members they are made of.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Whole-input lookup before tokenizing, TryParse

package enumx

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// flagEntry is one non-zero flag member, keyed by its bit pattern.
type flagEntry struct {
	bits  uint64
	label string
}

// Cache holds everything needed to resolve and describe values of one enum
// type. It is immutable after NewCache returns and safe for concurrent use.
type Cache[T Integer] struct {
	flags   bool
	mask    uint64
	members []Member[T]
	labels  map[T]string
	lookup  map[string]T
	entries []flagEntry // sorted by bits, descending
}

// NewCache builds the cache for a definition. Names and labels are
// registered case-insensitively; on key collisions the first member wins.
// A definition without members yields an empty cache that never matches.
func NewCache[T Integer](def Definition[T]) *Cache[T] {
	c := &Cache[T]{
		flags:   def.Flags,
		mask:    widthMask[T](),
		members: slices.Clone(def.Members),
		labels:  make(map[T]string, len(def.Members)),
		lookup:  make(map[string]T, len(def.Members)*2),
	}

	for _, m := range def.Members {
		label := m.DisplayLabel()

		if _, exists := c.labels[m.Value]; !exists {
			c.labels[m.Value] = label
		}

		c.register(m.Name, m.Value)
		if label != m.Name {
			c.register(label, m.Value)
		}

		if !c.flags {
			continue
		}
		bits := toBits(m.Value, c.mask)
		if bits == 0 {
			continue
		}
		c.entries = append(c.entries, flagEntry{bits: bits, label: label})
	}

	if c.flags {
		// Composite masks (All = Read|Write) must be tried before their parts.
		slices.SortStableFunc(c.entries, func(a, b flagEntry) int {
			return cmp.Compare(b.bits, a.bits)
		})
	}

	return c
}

func (c *Cache[T]) register(key string, value T) {
	k := foldKey(key)
	if k == "" {
		return
	}
	if _, exists := c.lookup[k]; !exists {
		c.lookup[k] = value
	}
}

// foldKey normalizes a name for case-insensitive lookup.
func foldKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// IsFlags reports whether values of this type combine as bit flags.
func (c *Cache[T]) IsFlags() bool {
	return c.flags
}

// Len returns the number of distinct member values.
func (c *Cache[T]) Len() int {
	return len(c.labels)
}

// Members returns a copy of the member table in declaration order.
func (c *Cache[T]) Members() []Member[T] {
	return slices.Clone(c.members)
}

// Dict returns a snapshot of all member values and their labels.
func (c *Cache[T]) Dict() map[T]string {
	return maps.Clone(c.labels)
}

// IsDefined reports whether v is the value of a declared member.
func (c *Cache[T]) IsDefined(v T) bool {
	_, ok := c.labels[v]
	return ok
}

// Lookup resolves a single name or label, ignoring case and surrounding
// whitespace.
func (c *Cache[T]) Lookup(token string) (T, bool) {
	k := foldKey(token)
	if k == "" {
		var zero T
		return zero, false
	}
	v, ok := c.lookup[k]
	return v, ok
}

// Parse resolves text using DefaultSeparators. Unknown tokens are ignored
// and input without any match resolves to the zero value.
func (c *Cache[T]) Parse(input string) T {
	v, _ := c.TryParseWith(input, DefaultSeparators)
	return v
}

// ParseWith resolves text split on the given separator characters.
func (c *Cache[T]) ParseWith(input, separators string) T {
	v, _ := c.TryParseWith(input, separators)
	return v
}

// TryParse is Parse that also reports whether anything matched.
func (c *Cache[T]) TryParse(input string) (T, bool) {
	return c.TryParseWith(input, DefaultSeparators)
}

// TryParseWith resolves text split on the given separator characters and
// reports whether anything matched. For plain enums only the first
// non-empty token is consulted; for flag enums every matching token is
// OR-ed into the result.
func (c *Cache[T]) TryParseWith(input, separators string) (T, bool) {
	var zero T

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return zero, false
	}
	if separators == "" {
		separators = DefaultSeparators
	}

	// Labels may contain separator characters ("Read Only").
	if v, ok := c.lookup[foldKey(trimmed)]; ok {
		return v, true
	}

	if !c.flags {
		var (
			result  T
			matched bool
		)
		eachToken(trimmed, separators, func(token string) bool {
			result, matched = c.Lookup(token)
			return false
		})
		return result, matched
	}

	var (
		combined uint64
		matched  bool
	)
	eachToken(trimmed, separators, func(token string) bool {
		if v, ok := c.Lookup(token); ok {
			combined |= toBits(v, c.mask)
			matched = true
		}
		return true
	})
	return fromBits[T](combined), matched
}

// ParseTokens resolves an already split token list. Each entry is matched
// whole. Plain enums return the first entry that matches; flag enums
// combine every match.
func (c *Cache[T]) ParseTokens(tokens []string) T {
	return parseEach(c, tokens)
}

// ParseBytes is ParseTokens for byte slices.
func (c *Cache[T]) ParseBytes(tokens [][]byte) T {
	return parseEach(c, tokens)
}

func parseEach[T Integer, S ~string | ~[]byte](c *Cache[T], tokens []S) T {
	var zero T
	if len(tokens) == 0 {
		return zero
	}

	if !c.flags {
		for _, token := range tokens {
			if v, ok := c.Lookup(string(token)); ok {
				return v
			}
		}
		return zero
	}

	var combined uint64
	for _, token := range tokens {
		if v, ok := c.Lookup(string(token)); ok {
			combined |= toBits(v, c.mask)
		}
	}
	return fromBits[T](combined)
}

// Describe renders v as text. Plain values map to their label. Flag values
// are decomposed by scanning flag members from the widest mask down and
// consuming every mask fully contained in the remaining bits; the matched
// labels are joined by delimiter in ascending bit order. Values that match
// nothing are rendered as their number.
func (c *Cache[T]) Describe(v T, delimiter string) string {
	if !c.flags {
		if label, ok := c.labels[v]; ok {
			return label
		}
		return formatValue(v)
	}

	remaining := toBits(v, c.mask)
	if remaining == 0 {
		if label, ok := c.labels[v]; ok {
			return label
		}
		return formatValue(v)
	}

	var matched []string
	for _, e := range c.entries {
		if remaining&e.bits == e.bits {
			matched = append(matched, e.label)
			remaining &^= e.bits
			if remaining == 0 {
				break
			}
		}
	}
	if len(matched) == 0 {
		return formatValue(v)
	}

	slices.Reverse(matched)
	return strings.Join(matched, delimiter)
}

// eachToken calls fn for every non-blank token of s. Any run of separator
// characters is a single boundary. fn returns false to stop.
func eachToken(s, separators string, fn func(token string) bool) {
	isSep := func(r rune) bool {
		return strings.ContainsRune(separators, r)
	}

	for len(s) > 0 {
		start := strings.IndexFunc(s, func(r rune) bool { return !isSep(r) })
		if start < 0 {
			return
		}
		s = s[start:]

		end := strings.IndexFunc(s, isSep)
		token := s
		if end >= 0 {
			token = s[:end]
			s = s[end:]
		} else {
			s = ""
		}

		token = strings.TrimFunc(token, unicode.IsSpace)
		if token == "" {
			continue
		}
		if !fn(token) {
			return
		}
	}
}
