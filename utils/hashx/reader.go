// File: reader.go
// Title: Streaming Digests
// Description: Hashes readers of any size through pooled copy buffers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package hashx

import (
	"hash"
	"io"
	"sync"

	"github.com/msto63/extx/core/errors"
)

const defaultBufferSize = 32 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// HashReader streams r through a hash created by newHash and returns the
// digest bytes.
func HashReader(r io.Reader, newHash func() hash.Hash) ([]byte, error) {
	h := newHash()

	bufPtr := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(bufPtr)

	if _, err := io.CopyBuffer(h, r, *bufPtr); err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleHashx).
			Operation("hash_reader").
			Message("failed to read content").
			Cause(err).
			Code(errors.CodeHashxReadFailed).
			Build()
	}
	return h.Sum(nil), nil
}

// HashReaderHex hashes r with the algorithm and returns upper-case hex.
func HashReaderHex(r io.Reader, a Algorithm) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	sum, err := HashReader(r, func() hash.Hash { return h })
	if err != nil {
		return "", err
	}
	return BytesToHex(sum, true), nil
}
