// File: parse.go
// Title: Number Parsing
// Description: Parses decimal text into fixed-size and arbitrary-precision
//              integers, either reporting success as a boolean or as
//              structured errors that tell malformed input from overflow.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package numberx

import (
	stderrors "errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unsafe"

	"github.com/msto63/extx/core/errors"
	"golang.org/x/exp/constraints"
)

// Integer is the set of types the generic helpers accept.
type Integer interface {
	constraints.Integer
}

// Parse converts base-10 text into T. Surrounding whitespace and a leading
// sign are accepted. Malformed text fails with NUMBERX_INVALID_NUMBER, text
// outside the range of T with NUMBERX_OVERFLOW.
func Parse[T Integer](text string) (T, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, errors.NumberxInvalidNumber("parse", text)
	}

	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	var (
		v   T
		err error
	)
	if signed[T]() {
		var n int64
		n, err = strconv.ParseInt(s, 10, bits)
		v = T(n)
	} else {
		var n uint64
		n, err = strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
		v = T(n)
	}

	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			return 0, errors.NumberxOverflow("parse", text, fmt.Sprintf("%T", zero))
		}
		return 0, errors.NumberxInvalidNumber("parse", text)
	}
	return v, nil
}

// ToInt parses text as an int, reporting whether it succeeded.
func ToInt(text string) (int, bool) {
	v, err := Parse[int](text)
	return v, err == nil
}

// ToUint parses text as a uint, reporting whether it succeeded.
func ToUint(text string) (uint, bool) {
	v, err := Parse[uint](text)
	return v, err == nil
}

// ToInt64 parses text as an int64, reporting whether it succeeded.
func ToInt64(text string) (int64, bool) {
	v, err := Parse[int64](text)
	return v, err == nil
}

// ToUint64 parses text as a uint64, reporting whether it succeeded.
func ToUint64(text string) (uint64, bool) {
	v, err := Parse[uint64](text)
	return v, err == nil
}

// ToBigInt parses base-10 text of any length.
func ToBigInt(text string) (*big.Int, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

func signed[T Integer]() bool {
	var v T
	v--
	return v < 0
}
