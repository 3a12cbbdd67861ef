// File: proto.go
// Title: Protobuf Enum Definitions
// Description: Derives enum definitions from protobuf enum descriptors so
//              generated enums can be registered without writing a member
//              table by hand.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package enumx

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// DefinitionFromProto builds a plain enum definition from a protobuf enum
// descriptor. Member names are the proto value names; labels are left
// empty. Use the labels map to attach display text by value name.
func DefinitionFromProto[T ~int32](ed protoreflect.EnumDescriptor, labels ...map[string]string) Definition[T] {
	var names map[string]string
	if len(labels) > 0 {
		names = labels[0]
	}

	values := ed.Values()
	def := Definition[T]{Members: make([]Member[T], 0, values.Len())}
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		name := string(v.Name())
		def.Members = append(def.Members, Member[T]{
			Name:  name,
			Value: T(v.Number()),
			Label: names[name],
		})
	}
	return def
}
