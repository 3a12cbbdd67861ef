// File: decode.go
// Title: Typed JSON Decoding
// Description: Generic helpers that decode JSON from bytes, readers and
//              files on an afero file system into a target type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package jsonx

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/msto63/extx/core/errors"
	"github.com/spf13/afero"
)

// Unmarshal decodes data into a new T.
func Unmarshal[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, invalidJSON("unmarshal", err)
	}
	return out, nil
}

// TryUnmarshal decodes data into a new T and reports success. A document
// that is just null counts as failure, as does any decode error.
func TryUnmarshal[T any](data []byte) (T, bool) {
	var zero T
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return zero, false
	}
	out, err := Unmarshal[T](data)
	if err != nil {
		return zero, false
	}
	return out, true
}

// Decode reads one JSON value from r into a new T.
func Decode[T any](r io.Reader) (T, error) {
	var out T
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return out, invalidJSON("decode", err)
	}
	return out, nil
}

// DecodeFile decodes the JSON file at path on fs into a new T. Files that
// cannot be opened fail with JSONX_READ_FAILED.
func DecodeFile[T any](fs afero.Fs, path string) (T, error) {
	var zero T

	f, err := fs.Open(path)
	if err != nil {
		return zero, errors.NewErrorBuilder(errors.ModuleJsonx).
			Operation("decode_file").
			Message("failed to open JSON file").
			Cause(err).
			Code(errors.CodeJsonxReadFailed).
			Detail("path", path).
			Build()
	}
	defer f.Close()

	var out T
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return zero, errors.NewErrorBuilder(errors.ModuleJsonx).
			Operation("decode_file").
			Message("failed to decode JSON file").
			Cause(err).
			Code(errors.CodeJsonxInvalidJSON).
			Detail("path", path).
			Build()
	}
	return out, nil
}
