// File: digits.go
// Title: Decimal Digit Helpers
// Description: Splits integers into their decimal digits, assembles digits
//              back into integers and extracts digits from text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package numberx

import (
	"math"
	"math/big"
	"strings"
)

// Digits returns the decimal digits of v, most significant first. The sign
// of negative values is dropped. With width 0 the result has as many digits
// as v needs, so 0 yields [0]. A positive width pads with leading zeros;
// values wider than width keep their lowest width digits.
func Digits[T Integer](v T, width int) []uint {
	var u uint64
	if signed[T]() && v < 0 {
		u = uint64(-(int64(v) + 1)) + 1
	} else {
		u = uint64(v)
	}

	if width <= 0 {
		width = 1
		for t := u / 10; t != 0; t /= 10 {
			width++
		}
	}

	digits := make([]uint, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = uint(u % 10)
		u /= 10
	}
	return digits
}

// DigitsToInt assembles decimal digits, most significant first, into an
// int64. It fails for an empty slice, elements above 9 and results that do
// not fit.
func DigitsToInt(digits []uint) (int64, bool) {
	if len(digits) == 0 {
		return 0, false
	}

	var n int64
	for _, d := range digits {
		if d > 9 {
			return 0, false
		}
		if n > (math.MaxInt64-int64(d))/10 {
			return 0, false
		}
		n = n*10 + int64(d)
	}
	return n, true
}

// DigitsToBigInt assembles decimal digits of any count. It fails for an
// empty slice and elements above 9.
func DigitsToBigInt(digits []uint) (*big.Int, bool) {
	if len(digits) == 0 {
		return nil, false
	}

	var b strings.Builder
	b.Grow(len(digits))
	for _, d := range digits {
		if d > 9 {
			return nil, false
		}
		b.WriteByte(byte('0' + d))
	}
	return new(big.Int).SetString(b.String(), 10)
}

// DigitsOf returns the values of the ASCII digits in s, in order, skipping
// every other character.
func DigitsOf(s string) []uint {
	digits := make([]uint, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, uint(c-'0'))
		}
	}
	return digits
}

// OnlyDigits returns s with everything but ASCII digits removed, e.g.
// "+49 (30) 1234" becomes "49301234".
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
