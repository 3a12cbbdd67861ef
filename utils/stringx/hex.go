// File: hex.go
// Title: Hex and Byte Conversions
// Description: Converts text to and from upper-case hexadecimal UTF-8 and
//              extracts decimal digit values as bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/msto63/extx/core/errors"
)

// ToHex returns the UTF-8 bytes of s as upper-case hexadecimal.
func ToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// FromHex decodes hexadecimal UTF-8 back into a string. Either letter
// case is accepted. Odd lengths, non-hex characters and byte sequences
// that are not valid UTF-8 are errors.
func FromHex(s string) (string, error) {
	if len(s)%2 != 0 {
		return "", errors.StringxFormatError(s, "even-length hexadecimal")
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("from_hex").
			Message("invalid hexadecimal input").
			Cause(err).
			Code(errors.CodeStringxInvalidFormat).
			Detail("input", s).
			Build()
	}
	if !utf8.Valid(b) {
		return "", errors.NewErrorBuilder(errors.ModuleStringx).
			Operation("from_hex").
			Message("decoded bytes are not valid UTF-8").
			Code(errors.CodeStringxEncodingError).
			Detail("input", s).
			Build()
	}
	return string(b), nil
}

// DigitBytes maps every rune of s to its decimal digit value, so "4071"
// becomes []byte{4, 0, 7, 1}. Runes that are not ASCII digits map to 0.
// A positive size limits the result to the first size runes.
func DigitBytes(s string, size int) []byte {
	n := utf8.RuneCountInString(s)
	if size > 0 && size < n {
		n = size
	}

	out := make([]byte, 0, n)
	for _, r := range s {
		if len(out) == n {
			break
		}
		if r >= '0' && r <= '9' {
			out = append(out, byte(r-'0'))
		} else {
			out = append(out, 0)
		}
	}
	return out
}
