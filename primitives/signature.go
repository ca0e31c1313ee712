// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import "encoding/hex"

// SignatureLength is the byte length of an Ed25519 signature (R, s).
const SignatureLength = 64

// Signature is an Ed25519 (R, s) pair. The all-zero value is a permitted
// sentinel for blocks that have not yet been signed.
type Signature [SignatureLength]byte

// ZeroSignature returns the all-zero sentinel signature.
func ZeroSignature() Signature {
	return Signature{}
}

// SignatureFromBytes builds a Signature from a byte slice.
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureLength {
		return s, invalidLength("Signature", len(b), SignatureLength)
	}
	copy(s[:], b)
	return s, nil
}

// SignatureFromHex parses a hex-encoded signature.
func SignatureFromHex(s string) (Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Signature{}, invalidEncoding("Signature", err.Error())
	}
	return SignatureFromBytes(b)
}

// Bytes returns a view of the underlying 64 bytes.
func (s Signature) Bytes() []byte { return s[:] }

// Hex returns the hex-encoded form.
func (s Signature) Hex() string { return hex.EncodeToString(s[:]) }

func (s Signature) String() string { return s.Hex() }

// IsZero reports whether this is the pre-signature sentinel.
func (s Signature) IsZero() bool {
	return s == Signature{}
}
