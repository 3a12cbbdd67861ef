// File: jsonx_test.go
// Title: Tests for Required Checks and Typed Decoding
// Description: Covers required property detection including tag handling
//              and embedded structs, and decoding from bytes, readers and
//              in-memory files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package jsonx

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/extx/core/error"
	"github.com/msto63/extx/core/errors"
)

type Audit struct {
	CreatedBy string `json:"created_by" extx:"required"`
	Note      string `json:"note"`
}

type order struct {
	Audit
	ID       int      `json:"id" extx:"required"`
	Customer string   `json:"customer,omitempty" extx:"required"`
	Items    []string `json:"items"`
	Total    float64  `extx:"required"`
	Secret   string   `json:"-" extx:"required"`
	internal string   `extx:"required"`
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var mdwErr *mdwerror.Error
	require.True(t, stderrors.As(err, &mdwErr), "expected *mdwerror.Error, got %T", err)
	return string(mdwErr.Code())
}

func TestRequiredFields(t *testing.T) {
	names, err := RequiredFields(order{})
	require.NoError(t, err)
	assert.Equal(t, []string{"created_by", "id", "customer", "Total"}, names)

	fromPointer, err := RequiredFields(&order{})
	require.NoError(t, err)
	assert.Equal(t, names, fromPointer)

	_, err = RequiredFields(42)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, codeOf(t, err))

	_, err = RequiredFields(nil)
	assert.Error(t, err)
}

func TestCheckRequired(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{"all present", `{"created_by":"ops","id":1,"customer":"acme","Total":9.5}`, true},
		{"extra properties", `{"created_by":"ops","id":1,"customer":"acme","Total":0,"items":[]}`, true},
		{"zero values count", `{"created_by":"","id":0,"customer":"","Total":0}`, true},
		{"missing id", `{"created_by":"ops","customer":"acme","Total":1}`, false},
		{"null customer", `{"created_by":"ops","id":1,"customer":null,"Total":1}`, false},
		{"missing embedded field", `{"id":1,"customer":"acme","Total":1}`, false},
		{"name is case sensitive", `{"created_by":"ops","id":1,"customer":"acme","total":1}`, false},
		{"array document", `[1,2,3]`, false},
		{"null document", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckRequired([]byte(tt.json), order{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckRequiredErrors(t *testing.T) {
	_, err := CheckRequired([]byte(`{"id":`), order{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeJsonxInvalidJSON, codeOf(t, err))

	_, err = CheckRequired([]byte(``), order{})
	assert.Equal(t, errors.CodeJsonxInvalidJSON, codeOf(t, err))

	_, err = CheckRequired([]byte(`{}`), "not a struct")
	assert.Equal(t, errors.CodeInvalidInput, codeOf(t, err))
}

func TestCheckRequiredNoRequiredFields(t *testing.T) {
	type plain struct {
		Name string `json:"name"`
	}
	ok, err := CheckRequired([]byte(`{}`), plain{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidateRequired(t *testing.T) {
	err := ValidateRequired([]byte(`{"id":1,"Total":null}`), &order{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeJsonxMissingProperty, codeOf(t, err))

	var mdwErr *mdwerror.Error
	require.True(t, stderrors.As(err, &mdwErr))
	assert.Equal(t, []string{"created_by", "customer", "Total"}, mdwErr.Details()["missing"])

	assert.NoError(t, ValidateRequired([]byte(`{"created_by":"a","id":1,"customer":"b","Total":2}`), order{}))

	err = ValidateRequired([]byte(`"text"`), order{})
	assert.Equal(t, errors.CodeInvalidInput, codeOf(t, err))
}

type settings struct {
	Name  string `json:"name"`
	Ports []int  `json:"ports"`
}

func TestUnmarshal(t *testing.T) {
	s, err := Unmarshal[settings]([]byte(`{"name":"api","ports":[80,443]}`))
	require.NoError(t, err)
	assert.Equal(t, settings{Name: "api", Ports: []int{80, 443}}, s)

	_, err = Unmarshal[settings]([]byte(`{"name":1}`))
	require.Error(t, err)
	assert.Equal(t, errors.CodeJsonxInvalidJSON, codeOf(t, err))
}

func TestTryUnmarshal(t *testing.T) {
	s, ok := TryUnmarshal[settings]([]byte(`{"name":"api"}`))
	assert.True(t, ok)
	assert.Equal(t, "api", s.Name)

	_, ok = TryUnmarshal[settings]([]byte(`{broken`))
	assert.False(t, ok)

	p, ok := TryUnmarshal[*settings]([]byte(` null `))
	assert.False(t, ok)
	assert.Nil(t, p)

	n, ok := TryUnmarshal[int]([]byte(`42`))
	assert.True(t, ok)
	assert.Equal(t, 42, n)
}

func TestDecode(t *testing.T) {
	s, err := Decode[settings](strings.NewReader(`{"name":"stream"} trailing`))
	require.NoError(t, err)
	assert.Equal(t, "stream", s.Name)

	_, err = Decode[settings](strings.NewReader(``))
	assert.Equal(t, errors.CodeJsonxInvalidJSON, codeOf(t, err))
}

func TestDecodeFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/app/settings.json", []byte(`{"name":"file","ports":[8080]}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/etc/app/broken.json", []byte(`{"name":`), 0o644))

	s, err := DecodeFile[settings](fs, "/etc/app/settings.json")
	require.NoError(t, err)
	assert.Equal(t, settings{Name: "file", Ports: []int{8080}}, s)

	_, err = DecodeFile[settings](fs, "/etc/app/missing.json")
	require.Error(t, err)
	assert.Equal(t, errors.CodeJsonxReadFailed, codeOf(t, err))

	_, err = DecodeFile[settings](fs, "/etc/app/broken.json")
	require.Error(t, err)
	assert.Equal(t, errors.CodeJsonxInvalidJSON, codeOf(t, err))
	assert.True(t, errors.IsModuleError(err, errors.ModuleJsonx))
}
