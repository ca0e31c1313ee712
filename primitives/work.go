// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"crypto/rand"
	"encoding/hex"
)

// WorkLength is the byte length of a proof-of-work nonce.
const WorkLength = 8

// Work is an 8-byte proof-of-work nonce. It is stored little-endian on
// the wire; the `work` package is responsible for the (reversed) hashing
// rule that turns a Work value into a Difficulty.
type Work [WorkLength]byte

// ZeroWork returns the all-zero sentinel.
func ZeroWork() Work {
	return Work{}
}

// RandomWork returns a random 8-byte candidate, the building block of
// PoW search.
func RandomWork() (Work, error) {
	var w Work
	if _, err := rand.Read(w[:]); err != nil {
		return Work{}, err
	}
	return w, nil
}

// WorkFromBytes builds a Work from a byte slice.
func WorkFromBytes(b []byte) (Work, error) {
	var w Work
	if len(b) != WorkLength {
		return w, invalidLength("Work", len(b), WorkLength)
	}
	copy(w[:], b)
	return w, nil
}

// WorkFromHex parses a hex-encoded work nonce.
func WorkFromHex(s string) (Work, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Work{}, invalidEncoding("Work", err.Error())
	}
	return WorkFromBytes(b)
}

// Bytes returns a view of the underlying 8 bytes.
func (w Work) Bytes() []byte { return w[:] }

// Hex returns the hex-encoded form.
func (w Work) Hex() string { return hex.EncodeToString(w[:]) }

func (w Work) String() string { return w.Hex() }

// IsZero reports whether this is the zero sentinel.
func (w Work) IsZero() bool {
	return w == Work{}
}
