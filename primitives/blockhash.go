// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"encoding/hex"

	"github.com/toole-brendan/rai/crypto"
)

// BlockHashLength is the byte length of a block hash (Blake2b-256 output).
const BlockHashLength = 32

// BlockHash identifies a block by the Blake2b-256 hash of its canonical
// encoding.
type BlockHash [BlockHashLength]byte

// HashBytes computes the BlockHash of the concatenation of parts, using
// Blake2b-256. Every block variant's Hash is defined in terms of this
// helper over its own canonical field ordering.
func HashBytes(parts ...[]byte) BlockHash {
	var h BlockHash
	copy(h[:], crypto.Blake2b(BlockHashLength, parts...))
	return h
}

// BlockHashFromBytes builds a BlockHash from a byte slice.
func BlockHashFromBytes(b []byte) (BlockHash, error) {
	var h BlockHash
	if len(b) != BlockHashLength {
		return h, invalidLength("BlockHash", len(b), BlockHashLength)
	}
	copy(h[:], b)
	return h, nil
}

// BlockHashFromHex parses a hex-encoded block hash.
func BlockHashFromHex(s string) (BlockHash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return BlockHash{}, invalidEncoding("BlockHash", err.Error())
	}
	return BlockHashFromBytes(b)
}

// Bytes returns a view of the underlying 32 bytes.
func (h BlockHash) Bytes() []byte { return h[:] }

// Hex returns the hex-encoded form.
func (h BlockHash) Hex() string { return hex.EncodeToString(h[:]) }

func (h BlockHash) String() string { return h.Hex() }

// IsZero reports whether this is the all-zero hash.
func (h BlockHash) IsZero() bool {
	return h == BlockHash{}
}
