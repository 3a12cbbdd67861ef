// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
//              These examples demonstrate typical usage patterns and appear
//              in the generated documentation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-14 v0.2.0: Examples for slicing, tokens and hex

package stringx_test

import (
	"fmt"

	mdwstringx "github.com/msto63/extx/utils/stringx"
)

func ExampleIsBlank() {
	fmt.Println(mdwstringx.IsBlank(""))
	fmt.Println(mdwstringx.IsBlank("   "))
	fmt.Println(mdwstringx.IsBlank(" hello "))
	// Output:
	// true
	// true
	// false
}

func ExampleTruncate() {
	text := "This is a long text that needs to be truncated"

	fmt.Println(mdwstringx.Truncate(text, 20, "..."))
	fmt.Println(mdwstringx.Truncate("short", 10, "..."))
	// Output:
	// This is a long te...
	// short
}

func ExampleLeft() {
	fmt.Println(mdwstringx.Left("Grüße", 4))
	fmt.Println(mdwstringx.Right("Grüße", 3))
	// Output:
	// Grüß
	// üße
}

func ExampleReplaceTokensDefault() {
	path := mdwstringx.ReplaceTokensDefault("/orders/{id}/items/{item}", map[string]string{
		"id": "1001",
	})
	fmt.Println(path)
	// Output:
	// /orders/1001/items/{item}
}

func ExampleToHex() {
	encoded := mdwstringx.ToHex("Hi!")
	decoded, _ := mdwstringx.FromHex(encoded)
	fmt.Println(encoded)
	fmt.Println(decoded)
	// Output:
	// 486921
	// Hi!
}
