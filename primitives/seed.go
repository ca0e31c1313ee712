// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"

	"github.com/toole-brendan/rai/crypto"
)

// SeedLength is the byte length of a master seed.
const SeedLength = 32

// Seed is a master secret from which any number of account Private keys
// are derived deterministically by index.
type Seed [SeedLength]byte

// ZeroSeed returns the all-zero seed, used by fixtures and tests.
func ZeroSeed() Seed {
	return Seed{}
}

// RandomSeed generates a cryptographically random seed.
func RandomSeed() (Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// SeedFromBytes builds a Seed from a byte slice.
func SeedFromBytes(b []byte) (Seed, error) {
	var s Seed
	if len(b) != SeedLength {
		return s, invalidLength("Seed", len(b), SeedLength)
	}
	copy(s[:], b)
	return s, nil
}

// SeedFromHex parses a hex-encoded seed.
func SeedFromHex(s string) (Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Seed{}, invalidEncoding("Seed", err.Error())
	}
	return SeedFromBytes(b)
}

// Bytes returns a view of the underlying 32 bytes.
func (s Seed) Bytes() []byte { return s[:] }

// Hex returns the hex-encoded form.
func (s Seed) Hex() string { return hex.EncodeToString(s[:]) }

func (s Seed) String() string { return s.Hex() }

// Derive returns the Private key at the given index:
// Blake2b-256(seed || big-endian u32 index).
func (s Seed) Derive(index uint32) Private {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)
	digest := crypto.Blake2b(32, s[:], idx[:])
	var p Private
	copy(p[:], digest)
	return p
}
