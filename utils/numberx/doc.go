// File: doc.go
// Title: Package Documentation for numberx
// Description: Package numberx parses, splits and rounds numbers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package numberx parses integers from text, splits integers into decimal
// digits and rounds floats to decimal places.
//
// # Parsing
//
// Parse is generic over every integer type and tells malformed input
// (NUMBERX_INVALID_NUMBER) from values that do not fit (NUMBERX_OVERFLOW).
// The ToInt family wraps it for callers that only need a yes or no:
//
//	port, ok := numberx.ToInt(os.Getenv("PORT"))
//	b, err := numberx.Parse[uint8]("300") // NUMBERX_OVERFLOW
//
// # Digits
//
//	numberx.Digits(4071, 0)           // [4 0 7 1]
//	numberx.Digits(7, 3)              // [0 0 7]
//	numberx.DigitsToInt([]uint{4, 2}) // 42, true
//	numberx.OnlyDigits("+49 30 1234") // "49301234"
//
// # Rounding
//
// Round, RoundUp and RoundDown work on the shortest decimal form of the
// value, so 1.1 rounds up to 1.1 and not 1.11. Round resolves ties to the
// even neighbour.
package numberx
