// File: proto_test.go
// Title: Protobuf Enum Definition Tests
// Description: Tests for deriving enum definitions from protobuf enum
//              descriptors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package enumx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"
)

type fieldType = descriptorpb.FieldDescriptorProto_Type

func TestDefinitionFromProto(t *testing.T) {
	ed := descriptorpb.FieldDescriptorProto_TYPE_STRING.Descriptor()
	def := DefinitionFromProto[fieldType](ed, map[string]string{
		"TYPE_STRING": "string",
		"TYPE_BYTES":  "bytes",
	})

	assert.False(t, def.Flags)
	require.Len(t, def.Members, ed.Values().Len())
	assert.Equal(t, "TYPE_DOUBLE", def.Members[0].Name)
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, def.Members[0].Value)

	c := NewCache(def)
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_STRING, c.Parse("type_string"))
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_STRING, c.Parse("String"))
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_BYTES, c.Parse("BYTES"))
	assert.Equal(t, "string", c.Describe(descriptorpb.FieldDescriptorProto_TYPE_STRING, " "))
	assert.Equal(t, "TYPE_INT32", c.Describe(descriptorpb.FieldDescriptorProto_TYPE_INT32, " "))
}

func TestDefinitionFromProtoRegistered(t *testing.T) {
	r := NewRegistry()
	ed := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Descriptor()
	require.NoError(t, RegisterIn(r, DefinitionFromProto[descriptorpb.FieldDescriptorProto_Label](ed)))

	c := MustCacheOf[descriptorpb.FieldDescriptorProto_Label](r)
	assert.Equal(t, descriptorpb.FieldDescriptorProto_LABEL_REPEATED, c.Parse("label_repeated"))
	assert.Equal(t, "LABEL_OPTIONAL", c.Describe(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL, " "))
	assert.Equal(t, ed.Values().Len(), c.Len())
}
