// File: algorithm.go
// Title: Hash Algorithm Selection
// Description: Names the supported hash algorithms as an enum resolved
//              through enumx and creates hash.Hash instances for them.
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
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/msto63/extx/core/errors"
	mdwenumx "github.com/msto63/extx/utils/enumx"
)

// Algorithm identifies a hash function.
type Algorithm uint8

const (
	AlgorithmUnknown Algorithm = iota
	SHA512
	SHA256
	SHA1
	MD5
	XXHash
)

// EnumDefinition makes Algorithm resolvable by name through enumx.
func (Algorithm) EnumDefinition() mdwenumx.Definition[Algorithm] {
	return mdwenumx.Values(
		mdwenumx.Member[Algorithm]{Name: "unknown", Value: AlgorithmUnknown},
		mdwenumx.Member[Algorithm]{Name: "sha512", Value: SHA512, Label: "SHA-512"},
		mdwenumx.Member[Algorithm]{Name: "sha256", Value: SHA256, Label: "SHA-256"},
		mdwenumx.Member[Algorithm]{Name: "sha1", Value: SHA1, Label: "SHA-1"},
		mdwenumx.Member[Algorithm]{Name: "md5", Value: MD5, Label: "MD5"},
		mdwenumx.Member[Algorithm]{Name: "xxhash", Value: XXHash, Label: "xxHash64"},
	)
}

// String returns the display label, e.g. "SHA-256".
func (a Algorithm) String() string {
	return mdwenumx.GetDescription(a)
}

// ParseAlgorithm resolves a name such as "sha256" or "SHA-256" in any
// letter case.
func ParseAlgorithm(name string) (Algorithm, error) {
	a, ok := mdwenumx.TryToEnum[Algorithm](name)
	if !ok || a == AlgorithmUnknown {
		return AlgorithmUnknown, errors.HashxUnknownAlgorithm(name)
	}
	return a, nil
}

// Algorithms lists the usable algorithms in declaration order.
func Algorithms() []Algorithm {
	members := mdwenumx.Members[Algorithm]()
	out := make([]Algorithm, 0, len(members))
	for _, m := range members {
		if m.Value != AlgorithmUnknown {
			out = append(out, m.Value)
		}
	}
	return out
}

// New returns a fresh hash.Hash for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA512:
		return sha512.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA1:
		return sha1.New(), nil
	case MD5:
		return md5.New(), nil
	case XXHash:
		return xxhash.New(), nil
	default:
		return nil, errors.HashxUnknownAlgorithm(a.String())
	}
}

// HexString digests s with the algorithm and returns upper-case hex.
func (a Algorithm) HexString(s string) (string, error) {
	switch a {
	case SHA512:
		return SHA512Hex(s), nil
	case SHA256:
		return SHA256Hex(s), nil
	case SHA1:
		return SHA1Hex(s), nil
	case MD5:
		return MD5Hex(s), nil
	case XXHash:
		return XXHash64Hex(s), nil
	default:
		return "", errors.HashxUnknownAlgorithm(a.String())
	}
}
