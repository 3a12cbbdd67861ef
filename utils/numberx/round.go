// File: round.go
// Title: Decimal Rounding of Floats
// Description: Rounds floating point values to a number of decimal places
//              using exact rational arithmetic on their shortest decimal
//              representation.
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
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type roundingMode int

const (
	halfEven roundingMode = iota
	ceiling
	floor
)

// Round rounds v to places decimal places, resolving ties to the even
// neighbour: Round(2.5, 0) is 2 and Round(0.125, 2) is 0.12.
func Round[T constraints.Float](v T, places int) T {
	return round(v, places, halfEven)
}

// RoundUp rounds v towards positive infinity at places decimal places.
func RoundUp[T constraints.Float](v T, places int) T {
	return round(v, places, ceiling)
}

// RoundDown rounds v towards negative infinity at places decimal places.
func RoundDown[T constraints.Float](v T, places int) T {
	return round(v, places, floor)
}

// round works on the shortest decimal text of v, so 1.1 is treated as
// exactly 11/10 rather than its binary approximation. NaN and infinities
// are returned unchanged; negative places count as 0.
func round[T constraints.Float](v T, places int, mode roundingMode) T {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return v
	}
	if places < 0 {
		places = 0
	}

	bits := 64
	if unsafe.Sizeof(v) == 4 {
		bits = 32
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, bits))
	if !ok {
		return v
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	// Euclidean division: q is the floor and m is non-negative.
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		switch mode {
		case ceiling:
			q.Add(q, big.NewInt(1))
		case halfEven:
			switch c := new(big.Int).Lsh(m, 1).Cmp(r.Denom()); {
			case c > 0, c == 0 && q.Bit(0) == 1:
				q.Add(q, big.NewInt(1))
			}
		}
	}

	result := new(big.Rat).SetFrac(q, scale)
	if bits == 32 {
		out, _ := result.Float32()
		return T(out)
	}
	out, _ := result.Float64()
	return T(out)
}
