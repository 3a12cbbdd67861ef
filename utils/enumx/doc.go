// Package enumx resolves text to enum values and renders enum values as
// text, for plain enums and bit-flag enums alike.
//
// Package: enumx
// Title: Enum Resolution for Go
// Description: Builds one immutable lookup cache per enum type on first use
//              and resolves names, labels and separator-joined flag lists
//              against it. Flag values are described greedily so composite
//              members are reported by their own label.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-13 v0.1.1: Protobuf descriptors and file catalogs
// - 2026-10-14 v0.2.0: Whole-input lookup, TryToEnum
//
// # Declaring Enums
//
// An enum type describes itself by implementing Definer on its value
// receiver:
//
//	type Permission uint8
//
//	func (Permission) EnumDefinition() enumx.Definition[Permission] {
//		return enumx.Flags(
//			enumx.Member[Permission]{Name: "Read", Value: 1},
//			enumx.Member[Permission]{Name: "Write", Value: 2},
//			enumx.Member[Permission]{Name: "All", Value: 3, Label: "Full Access"},
//		)
//	}
//
// Types that cannot carry methods (or belong to another package) are
// registered instead:
//
//	var _ = enumx.MustRegister(enumx.Values(
//		enumx.Member[mdwlog.Level]{Name: "debug", Value: mdwlog.LevelDebug},
//		...
//	))
//
// Generated protobuf enums can be registered from their descriptor with
// DefinitionFromProto. Enums that have no Go type at all are loaded from
// TOML, YAML or JSON files with LoadCatalog.
//
// # Resolving Text
//
//	p := enumx.ToEnum[Permission]("write, read")   // 3
//	p = enumx.ToEnum[Permission]("full access")    // 3
//	p = enumx.ToEnum[Permission]("bogus")          // 0
//
// Matching ignores case and surrounding whitespace. Input is first looked up
// whole, so labels containing spaces resolve. Otherwise it is split on
// commas, spaces and pipes; a run of separators is one boundary. Plain enums
// use the first token only. Flag enums OR together every token that matches
// and skip the rest. Input without any match yields the zero value; use
// TryToEnum to tell a miss from a genuine zero.
//
// # Describing Values
//
//	enumx.GetDescription(Permission(3))        // "Full Access"
//	enumx.GetDescription(Permission(1), ", ")  // "Read"
//
// Flag values are decomposed by trying members from the widest bit mask
// down, so a composite member wins over its parts. Matched labels are
// joined in ascending bit order. Bits no member covers are dropped; a value
// with no matching member is rendered as its number.
//
// # Registry
//
// Caches live in a Registry keyed by type. The package-level functions use
// Default. Construction happens once per type even under concurrent first
// use, and reads never lock. Using a type that is neither registered nor a
// Definer panics in the package-level functions; CacheOf returns the
// ENUMX_NOT_ENUM error instead.
package enumx
