// File: enumx.go
// Title: Enum Type Descriptors
// Description: Declares the member table that describes an enum type, the
//              Definer hook enum types implement to describe themselves, and
//              the width-aware conversions between enum values and the 64-bit
//              bit patterns used for flag composition.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package enumx

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// DefaultSeparators are the token boundaries used when parsing text.
// Any run of these characters counts as a single boundary.
const DefaultSeparators = ", |"

// DefaultDelimiter joins flag labels in descriptions.
const DefaultDelimiter = " "

// Integer is the set of types an enum may be declared on.
type Integer interface {
	constraints.Integer
}

// Member is one named value of an enum type.
type Member[T Integer] struct {
	// Name is the symbolic identifier, e.g. "ReadWrite".
	Name string `json:"name" yaml:"name" toml:"name"`

	// Value is the underlying value of the member.
	Value T `json:"value" yaml:"value" toml:"value"`

	// Label is the optional human-readable text. Empty means Name.
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
}

// DisplayLabel returns Label, or Name when no label was attached.
func (m Member[T]) DisplayLabel() string {
	if m.Label != "" {
		return m.Label
	}
	return m.Name
}

// Definition describes an enum type: its ordered members and whether its
// values combine as bit flags.
type Definition[T Integer] struct {
	Flags   bool
	Members []Member[T]
}

// Definer is implemented by enum types that describe themselves. The
// registry calls EnumDefinition on the zero value the first time the type
// is used, so the method must not depend on the receiver's value.
type Definer[T Integer] interface {
	EnumDefinition() Definition[T]
}

// Values returns a Definition builder for plain enums.
func Values[T Integer](members ...Member[T]) Definition[T] {
	return Definition[T]{Members: members}
}

// Flags returns a Definition builder for flag enums.
func Flags[T Integer](members ...Member[T]) Definition[T] {
	return Definition[T]{Flags: true, Members: members}
}

// widthMask returns the mask covering the declared width of T. Signed
// values are sign-extended by the uint64 conversion, so the mask keeps
// only the bits that exist in the enum's own representation.
func widthMask[T Integer]() uint64 {
	bits := reflect.TypeFor[T]().Bits()
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(bits) - 1
}

// toBits widens v to its unsigned bit pattern within mask.
func toBits[T Integer](v T, mask uint64) uint64 {
	return uint64(v) & mask
}

// fromBits narrows a bit pattern back to T. Callers only pass values built
// from masks of T's own members, so no bits above the width are lost.
func fromBits[T Integer](bits uint64) T {
	return T(bits)
}

// isSigned reports whether T is a signed integer type.
func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// formatValue renders the symbolic textual form of a value that has no label.
func formatValue[T Integer](v T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
