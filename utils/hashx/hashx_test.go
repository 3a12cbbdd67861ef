// File: hashx_test.go
// Title: Tests for String Digests and Streaming Hashes
// Description: Verifies digests against published test vectors, hex
//              encoding in both cases, algorithm resolution and reader
//              hashing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package hashx

import (
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/extx/core/error"
	"github.com/msto63/extx/core/errors"
)

const (
	sha512abc = "DDAF35A193617ABACC417349AE20413112E6FA4E89A97EA20A9EEEE64B55D39A" +
		"2192992A274FC1A836BA3C23A3FEEBBD454D4423643CE80E2A9AC94FA54CA49F"
	sha256abc = "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"
	sha1abc   = "A9993E364706816ABA3E25717850C26C9CD0D89D"
	md5abc    = "900150983CD24FB0D6963F7D28E17F72"
)

func TestStringDigests(t *testing.T) {
	assert.Equal(t, sha512abc, SHA512Hex("abc"))
	assert.Equal(t, sha256abc, SHA256Hex("abc"))
	assert.Equal(t, sha1abc, SHA1Hex("abc"))
	assert.Equal(t, md5abc, MD5Hex("abc"))
	assert.Equal(t, "D41D8CD98F00B204E9800998ECF8427E", MD5Hex(""))
}

func TestXXHash64(t *testing.T) {
	assert.Equal(t, uint64(0xef46db3751d8e999), XXHash64(""))
	assert.Equal(t, uint64(0x44bc2cf5ad770999), XXHash64("abc"))
	assert.Equal(t, "44BC2CF5AD770999", XXHash64Hex("abc"))
	assert.Len(t, XXHash64Hex("a longer input string"), 16)
}

func TestBytesToHex(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		upper string
	}{
		{"empty", nil, ""},
		{"single", []byte{0x0f}, "0F"},
		{"boundaries", []byte{0x00, 0x7f, 0x80, 0xff}, "007F80FF"},
		{"text", []byte("extx"), "65787478"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.upper, BytesToHex(tt.input, true))
			assert.Equal(t, strings.ToLower(tt.upper), BytesToHex(tt.input, false))
		})
	}
}

func TestBytesToHexMatchesEncodingHex(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	assert.Equal(t, hex.EncodeToString(all), BytesToHex(all, false))
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"sha512", SHA512},
		{"SHA256", SHA256},
		{"sha-256", SHA256},
		{"Sha1", SHA1},
		{"md5", MD5},
		{"xxhash", XXHash},
		{"xxHash64", XXHash},
		{" md5 ", MD5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "crc32", "unknown"} {
		_, err := ParseAlgorithm(bad)
		require.Error(t, err, bad)
		var mdwErr *mdwerror.Error
		require.True(t, stderrors.As(err, &mdwErr))
		assert.Equal(t, errors.CodeHashxUnknownAlgorithm, string(mdwErr.Code()))
	}
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "SHA-256", SHA256.String())
	assert.Equal(t, "xxHash64", XXHash.String())
	assert.Equal(t, "42", Algorithm(42).String())
}

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []Algorithm{SHA512, SHA256, SHA1, MD5, XXHash}, Algorithms())
}

func TestAlgorithmHexString(t *testing.T) {
	want := map[Algorithm]string{
		SHA512: sha512abc,
		SHA256: sha256abc,
		SHA1:   sha1abc,
		MD5:    md5abc,
		XXHash: "44BC2CF5AD770999",
	}

	for algo, digest := range want {
		got, err := algo.HexString("abc")
		require.NoError(t, err)
		assert.Equal(t, digest, got, algo.String())

		streamed, err := HashReaderHex(strings.NewReader("abc"), algo)
		require.NoError(t, err)
		assert.Equal(t, digest, streamed, algo.String())
	}

	_, err := AlgorithmUnknown.HexString("abc")
	assert.Error(t, err)
	_, err = AlgorithmUnknown.New()
	assert.Error(t, err)
}

func TestHashReader(t *testing.T) {
	large := strings.Repeat("0123456789", 10_000)

	sum, err := HashReader(strings.NewReader(large), sha256.New)
	require.NoError(t, err)

	expected := sha256.Sum256([]byte(large))
	assert.Equal(t, expected[:], sum)
}

func TestHashReaderError(t *testing.T) {
	cause := stderrors.New("device unplugged")
	_, err := HashReader(iotest.ErrReader(cause), sha256.New)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.IsModuleError(err, errors.ModuleHashx))

	var mdwErr *mdwerror.Error
	require.True(t, stderrors.As(err, &mdwErr))
	assert.Equal(t, errors.CodeHashxReadFailed, string(mdwErr.Code()))
}

func BenchmarkBytesToHex(b *testing.B) {
	data := make([]byte, 64)
	for i := 0; i < b.N; i++ {
		_ = BytesToHex(data, true)
	}
}

func BenchmarkHashReaderXXHash(b *testing.B) {
	payload := strings.Repeat("x", 64*1024)
	b.SetBytes(int64(len(payload)))
	for i := 0; i < b.N; i++ {
		_, _ = HashReaderHex(strings.NewReader(payload), XXHash)
	}
}
