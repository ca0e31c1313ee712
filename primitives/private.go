// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"encoding/hex"

	"github.com/toole-brendan/rai/crypto"
)

// PrivateLength is the byte length of an Ed25519 seed.
const PrivateLength = 32

// Private is an Ed25519 seed capable of signing arbitrary messages and
// deriving its corresponding Public key.
type Private [PrivateLength]byte

// PrivateFromBytes builds a Private from a byte slice.
func PrivateFromBytes(b []byte) (Private, error) {
	var pr Private
	if len(b) != PrivateLength {
		return pr, invalidLength("Private", len(b), PrivateLength)
	}
	copy(pr[:], b)
	return pr, nil
}

// PrivateFromHex parses a hex-encoded private seed.
func PrivateFromHex(s string) (Private, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Private{}, invalidEncoding("Private", err.Error())
	}
	return PrivateFromBytes(b)
}

// Bytes returns a view of the underlying 32 bytes.
func (pr Private) Bytes() []byte { return pr[:] }

// Hex returns the hex-encoded seed. Callers handling real funds should
// treat this as sensitive; this module does not attempt to scrub it from
// memory.
func (pr Private) Hex() string { return hex.EncodeToString(pr[:]) }

func (pr Private) String() string { return pr.Hex() }

// Public derives the Ed25519 public key for this seed.
func (pr Private) Public() Public {
	return Public(crypto.DerivePublic(pr[:]))
}

// Sign produces a deterministic Ed25519 signature over msg.
func (pr Private) Sign(msg []byte) Signature {
	return Signature(crypto.Sign(pr[:], msg))
}
