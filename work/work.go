// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package work implements the proof-of-work puzzle used to rate-limit
// block publication: a Blake2b-8 hash over a reversed work nonce and a
// subject (block hash or account public key), compared against a
// variable 64-bit difficulty threshold.
package work

import (
	"encoding/binary"

	"github.com/toole-brendan/rai/crypto"
	"github.com/toole-brendan/rai/primitives"
)

// Difficulty is a 64-bit unsigned proof-of-work threshold.
type Difficulty uint64

// DifficultyFromHex parses a hex-encoded, big-endian difficulty value,
// e.g. "ffffffc000000000".
func DifficultyFromHex(s string) (Difficulty, error) {
	if len(s) != 16 {
		return 0, errInvalidDifficulty(s)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var nibble uint64
		switch {
		case c >= '0' && c <= '9':
			nibble = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			nibble = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			nibble = uint64(c-'A') + 10
		default:
			return 0, errInvalidDifficulty(s)
		}
		v = v<<4 | nibble
	}
	return Difficulty(v), nil
}

func errInvalidDifficulty(s string) error {
	return &InvalidDifficultyError{Value: s}
}

// InvalidDifficultyError is returned when a hex difficulty string cannot
// be parsed.
type InvalidDifficultyError struct {
	Value string
}

func (e *InvalidDifficultyError) Error() string {
	return "work: invalid difficulty hex string: " + e.Value
}

// IsMoreThan reports whether d meets or exceeds threshold: d >= threshold.
func (d Difficulty) IsMoreThan(threshold Difficulty) bool {
	return d >= threshold
}

// Subject is the value a proof-of-work nonce is computed against: either
// a block hash (ordinary blocks) or an account public key (opening
// blocks, where there is no previous block hash yet).
type Subject struct {
	hash   primitives.BlockHash
	pub    primitives.Public
	isHash bool
}

// SubjectFromHash builds a Subject over a block hash.
func SubjectFromHash(h primitives.BlockHash) Subject {
	return Subject{hash: h, isHash: true}
}

// SubjectFromPublic builds a Subject over an account public key.
func SubjectFromPublic(p primitives.Public) Subject {
	return Subject{pub: p, isHash: false}
}

// Bytes returns the raw bytes the subject contributes to the PoW hash.
func (s Subject) Bytes() []byte {
	if s.isHash {
		return s.hash.Bytes()
	}
	return s.pub.Bytes()
}

// GetDifficulty computes the difficulty a Work value achieves against a
// subject:
//
//	d = LE64( Blake2b-8( reverse(work_bytes) ‖ subject_bytes ) )
//
// The byte-reversal of the work nonce before hashing is a quirk of the
// wire format this module interoperates with and must be preserved
// verbatim. Do not fix it.
func GetDifficulty(w primitives.Work, subject Subject) Difficulty {
	reversed := make([]byte, primitives.WorkLength)
	wb := w.Bytes()
	for i, b := range wb {
		reversed[len(wb)-1-i] = b
	}
	digest := crypto.Blake2b(8, reversed, subject.Bytes())
	return Difficulty(binary.LittleEndian.Uint64(digest))
}

// Verify reports whether w satisfies threshold against subject.
func Verify(w primitives.Work, subject Subject, threshold Difficulty) bool {
	return GetDifficulty(w, subject).IsMoreThan(threshold)
}

// Attempt tries a single random candidate, returning it if it satisfies
// threshold.
func Attempt(subject Subject, threshold Difficulty) (primitives.Work, bool, error) {
	w, err := primitives.RandomWork()
	if err != nil {
		return primitives.Work{}, false, err
	}
	return w, Verify(w, subject, threshold), nil
}

// Generate blocks, trying random candidates, until one satisfies
// threshold. It has no timeout; callers wanting cancellation should use
// Pool.Generate instead.
func Generate(subject Subject, threshold Difficulty) (primitives.Work, error) {
	for {
		w, ok, err := Attempt(subject, threshold)
		if err != nil {
			return primitives.Work{}, err
		}
		if ok {
			return w, nil
		}
	}
}
