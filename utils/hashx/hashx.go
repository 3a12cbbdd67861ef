// File: hashx.go
// Title: String Digests and Hex Encoding
// Description: Computes hexadecimal digests of strings with SHA-2, SHA-1,
//              MD5 and xxHash64, and encodes byte slices as hex through a
//              precomputed lookup table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package hashx

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// hexTable holds the two-character encodings of every byte value, upper
// case in the first 512 bytes and lower case in the second.
var hexTable = func() [1024]byte {
	var t [1024]byte
	for i := 0; i < 256; i++ {
		t[2*i] = upperDigits[i>>4]
		t[2*i+1] = upperDigits[i&0x0f]
		t[512+2*i] = lowerDigits[i>>4]
		t[512+2*i+1] = lowerDigits[i&0x0f]
	}
	return t
}()

// BytesToHex encodes b as hexadecimal in the requested letter case.
func BytesToHex(b []byte, upper bool) string {
	table := hexTable[512:]
	if upper {
		table = hexTable[:512]
	}

	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[2*i] = table[2*int(v)]
		out[2*i+1] = table[2*int(v)+1]
	}
	return string(out)
}

// SHA512Hex returns the SHA-512 digest of the UTF-8 bytes of s as
// upper-case hex.
func SHA512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return BytesToHex(sum[:], true)
}

// SHA256Hex returns the SHA-256 digest of s as upper-case hex.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return BytesToHex(sum[:], true)
}

// SHA1Hex returns the SHA-1 digest of s as upper-case hex.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return BytesToHex(sum[:], true)
}

// MD5Hex returns the MD5 digest of s as upper-case hex.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return BytesToHex(sum[:], true)
}

// XXHash64 returns the 64-bit xxHash of s.
func XXHash64(s string) uint64 {
	return xxhash.Sum64String(s)
}

// XXHash64Hex returns the xxHash of s as 16 upper-case hex digits,
// big-endian.
func XXHash64Hex(s string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(s))
	return BytesToHex(b[:], true)
}
