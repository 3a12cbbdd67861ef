// File: api.go
// Title: Package-Level Enum Conversions
// Description: Convenience functions over the default registry for resolving
//              text to enum values, rendering values as labels and listing the
//              members of an enum type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package enumx

// ToEnum resolves text to a value of T. Text that matches nothing yields
// the zero value. It panics if T is not an enum type.
func ToEnum[T Integer](text string) T {
	return MustCacheOf[T](defaultRegistry).Parse(text)
}

// ToEnumWith is ToEnum with custom separator characters.
func ToEnumWith[T Integer](text, separators string) T {
	return MustCacheOf[T](defaultRegistry).ParseWith(text, separators)
}

// TryToEnum is ToEnum that reports whether any token matched.
func TryToEnum[T Integer](text string) (T, bool) {
	return MustCacheOf[T](defaultRegistry).TryParse(text)
}

// ToEnumTokens resolves a pre-split list of names or labels.
func ToEnumTokens[T Integer](tokens []string) T {
	return MustCacheOf[T](defaultRegistry).ParseTokens(tokens)
}

// ToEnumBytes resolves a pre-split list of byte-slice tokens.
func ToEnumBytes[T Integer](tokens [][]byte) T {
	return MustCacheOf[T](defaultRegistry).ParseBytes(tokens)
}

// GetDescription renders value as its label. Flag values are decomposed
// into member labels joined by delimiter, which defaults to a space.
func GetDescription[T Integer](value T, delimiter ...string) string {
	d := DefaultDelimiter
	if len(delimiter) > 0 {
		d = delimiter[0]
	}
	return MustCacheOf[T](defaultRegistry).Describe(value, d)
}

// EnumDict returns a copy of every member value of T and its label.
func EnumDict[T Integer]() map[T]string {
	return MustCacheOf[T](defaultRegistry).Dict()
}

// Members returns the members of T in declaration order.
func Members[T Integer]() []Member[T] {
	return MustCacheOf[T](defaultRegistry).Members()
}

// IsDefined reports whether value is a declared member of T.
func IsDefined[T Integer](value T) bool {
	return MustCacheOf[T](defaultRegistry).IsDefined(value)
}
