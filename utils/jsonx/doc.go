// File: doc.go
// Title: Package Documentation for jsonx
// Description: Package jsonx checks JSON documents for required properties
//              and decodes them into typed values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package jsonx checks JSON documents for required properties and decodes
// them into typed values.
//
// Required properties are marked with the extx tag. The JSON name comes from
// the json tag, falling back to the field name:
//
//	type Order struct {
//		ID    int    `json:"id" extx:"required"`
//		Notes string `json:"notes"`
//	}
//
//	ok, err := jsonx.CheckRequired(body, Order{})
//	err = jsonx.ValidateRequired(body, Order{}) // names what is missing
//
// A property counts as present unless it is absent or null. Names are
// matched exactly.
//
// The decode helpers are generic over the target type:
//
//	order, err := jsonx.Unmarshal[Order](body)
//	cfg, err := jsonx.DecodeFile[Config](afero.NewOsFs(), "config.json")
package jsonx
