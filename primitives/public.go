// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"encoding/hex"

	"github.com/toole-brendan/rai/crypto"
)

// PublicLength is the byte length of an Ed25519 public key.
const PublicLength = 32

// Public is an Ed25519 public key: an account identifier.
type Public [PublicLength]byte

// PublicFromBytes builds a Public from a byte slice, failing if b is not
// exactly PublicLength bytes.
func PublicFromBytes(b []byte) (Public, error) {
	var p Public
	if len(b) != PublicLength {
		return p, invalidLength("Public", len(b), PublicLength)
	}
	copy(p[:], b)
	return p, nil
}

// PublicFromHex parses a hex-encoded public key.
func PublicFromHex(s string) (Public, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Public{}, invalidEncoding("Public", err.Error())
	}
	return PublicFromBytes(b)
}

// Bytes returns a view of the underlying 32 bytes.
func (p Public) Bytes() []byte { return p[:] }

// Hex returns the hex-encoded form of the key (not the address form).
func (p Public) Hex() string { return hex.EncodeToString(p[:]) }

// String renders the public key in its nano-style address form.
func (p Public) String() string {
	return p.Address()
}

// MarshalText implements encoding.TextMarshaler as the address form, so
// that an external JSON/RPC collaborator can serialize a Public without
// this module depending on encoding/json itself.
func (p Public) MarshalText() ([]byte, error) {
	return []byte(p.Address()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the
// address form.
func (p *Public) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// IsZero reports whether the key is the all-zero sentinel.
func (p Public) IsZero() bool {
	return p == Public{}
}

// Verify reports whether sig is a valid Ed25519 signature over msg
// produced by this public key's holder. Total: never panics or errors on
// malformed input.
func (p Public) Verify(msg []byte, sig Signature) bool {
	return crypto.Verify(p[:], msg, sig[:])
}
