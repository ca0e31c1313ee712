// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import "encoding/hex"

// Text marshaling for the fixed-width types, so an external JSON/RPC or
// logging collaborator can serialize them without this package depending
// on encoding/json itself. Everything here round-trips through hex;
// Public is the exception (address form) and lives in public.go.

// MarshalText implements encoding.TextMarshaler.
func (pr Private) MarshalText() ([]byte, error) { return []byte(pr.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (pr *Private) UnmarshalText(text []byte) error {
	parsed, err := PrivateFromHex(string(text))
	if err != nil {
		return err
	}
	*pr = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) { return []byte(s.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := SignatureFromHex(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h BlockHash) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *BlockHash) UnmarshalText(text []byte) error {
	parsed, err := BlockHashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) { return []byte(s.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(text []byte) error {
	parsed, err := SeedFromHex(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Cookie) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cookie) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return invalidEncoding("Cookie", err.Error())
	}
	parsed, err := CookieFromBytes(b)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (w Work) MarshalText() ([]byte, error) { return []byte(w.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Work) UnmarshalText(text []byte) error {
	parsed, err := WorkFromHex(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rai) MarshalText() ([]byte, error) { return []byte(r.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rai) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return invalidEncoding("Rai", err.Error())
	}
	parsed, err := RaiFromBytes(b)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
