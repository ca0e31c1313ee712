// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crypto wraps the Ed25519 signature scheme, Curve25519 key
// agreement, and variable-length Blake2b hashing used throughout the rest
// of this module. It knows nothing about blocks, wire messages, or the
// ledger; every function here takes and returns raw byte slices so that
// higher layers (primitives, blocks, work) can build typed wrappers
// around it without introducing an import cycle.
package crypto

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/ed25519"
)

// SeedSize is the length of an Ed25519 seed (our Private type).
const SeedSize = ed25519.SeedSize

// PublicSize is the length of an Ed25519 public key.
const PublicSize = ed25519.PublicKeySize

// SignatureSize is the length of an Ed25519 signature.
const SignatureSize = ed25519.SignatureSize

// Sign produces a deterministic Ed25519 signature over msg using the
// 32-byte private seed. It panics if seed is not SeedSize bytes, which
// would indicate a programming error in a caller rather than bad network
// input (callers are expected to validate fixed-width lengths before
// reaching here).
func Sign(seed []byte, msg []byte) [SignatureSize]byte {
	if len(seed) != SeedSize {
		panic(fmt.Sprintf("crypto: Sign called with a %d-byte seed, want %d", len(seed), SeedSize))
	}
	key := ed25519.NewKeyFromSeed(seed)
	sig := ed25519.Sign(key, msg)
	var out [SignatureSize]byte
	copy(out[:], sig)
	return out
}

// Verify reports whether sig is a valid Ed25519 signature over msg by
// public. It is total: malformed inputs (wrong lengths) return false
// rather than panicking or returning an error.
func Verify(public []byte, msg []byte, sig []byte) bool {
	if len(public) != PublicSize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(public, msg, sig)
}

// DerivePublic returns the Ed25519 public key for the given 32-byte seed.
func DerivePublic(seed []byte) [PublicSize]byte {
	if len(seed) != SeedSize {
		panic(fmt.Sprintf("crypto: DerivePublic called with a %d-byte seed, want %d", len(seed), SeedSize))
	}
	key := ed25519.NewKeyFromSeed(seed)
	pub := key.Public().(ed25519.PublicKey)
	var out [PublicSize]byte
	copy(out[:], pub)
	return out
}

// Blake2b hashes data to an n-byte digest using Blake2b in its
// variable-output-length mode. n must be one of the sizes this module
// actually uses (5, 8, 32, 64); any other size is a programming error.
func Blake2b(n int, data ...[]byte) []byte {
	switch n {
	case 5, 8, 32, 64:
	default:
		panic(fmt.Sprintf("crypto: unsupported Blake2b output size %d", n))
	}
	h, err := blake2b.New(n, nil)
	if err != nil {
		// Only possible if n is out of blake2b's supported range, which
		// the switch above already excludes.
		panic(fmt.Sprintf("crypto: blake2b.New(%d): %v", n, err))
	}
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// X25519 performs a Curve25519 Diffie-Hellman key agreement between a
// 32-byte Ed25519-derived seed (used here as the X25519 scalar) and a
// peer's 32-byte Curve25519 public value. The handshake itself
// authenticates via cookie-signing, not key agreement; this is a building
// block for session-level key exchange.
func X25519(scalar []byte, peerPublic []byte) ([32]byte, error) {
	var out [32]byte
	if len(scalar) != 32 || len(peerPublic) != 32 {
		return out, fmt.Errorf("crypto: X25519 requires 32-byte inputs")
	}
	shared, err := curve25519.X25519(scalar, peerPublic)
	if err != nil {
		return out, fmt.Errorf("crypto: X25519: %w", err)
	}
	copy(out[:], shared)
	return out, nil
}

// ConstantTimeCompare reports whether a and b are equal using a
// constant-time comparison, used for signature/cookie equality checks
// where timing side-channels matter.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
