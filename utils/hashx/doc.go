// File: doc.go
// Title: Package Documentation for hashx
// Description: Package hashx computes hexadecimal digests of strings and
//              streams.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package hashx computes digests of strings and streams and renders them as
// hexadecimal text.
//
// The string helpers hash the UTF-8 bytes of their input and return upper
// case hex:
//
//	hashx.SHA256Hex("abc")   // "BA7816BF..."
//	hashx.XXHash64Hex("abc") // 16 hex digits
//
// Algorithms can be chosen by name. Names resolve through enumx, so
// "sha256", "SHA256" and "SHA-256" are all accepted:
//
//	algo, err := hashx.ParseAlgorithm("sha-256")
//	sum, err := hashx.HashReaderHex(file, algo)
//
// Unknown names fail with HASHX_UNKNOWN_ALGORITHM, read failures with
// HASHX_READ_FAILED.
package hashx
