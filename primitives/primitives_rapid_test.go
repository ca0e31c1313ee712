// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestPropertyAddressRoundTrip checks the round-trip law: decoding an
// encoded address reproduces the key, for arbitrary keys.
func TestPropertyAddressRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keyBytes := rapid.SliceOfN(rapid.Byte(), PublicLength, PublicLength).Draw(t, "key")
		pub, err := PublicFromBytes(keyBytes)
		require.NoError(t, err)

		addr := pub.Address()
		decoded, err := ParseAddress(addr)
		require.NoError(t, err)
		require.Equal(t, pub, decoded)
	})
}

// TestPropertySignVerifyForAllMessages checks that for every Public p
// and Private q derived from a seed, verify(p, m, sign(q, m)) == true for
// all messages m.
func TestPropertySignVerifyForAllMessages(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seedBytes := rapid.SliceOfN(rapid.Byte(), SeedLength, SeedLength).Draw(t, "seed")
		index := rapid.Uint32().Draw(t, "index")
		msg := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(t, "msg")

		seed, err := SeedFromBytes(seedBytes)
		require.NoError(t, err)

		priv := seed.Derive(index)
		pub := priv.Public()
		sig := priv.Sign(msg)

		require.True(t, pub.Verify(msg, sig))
	})
}

// TestPropertyRaiDecimalRoundTrip checks that parsing a Rai's own decimal
// rendering reproduces the same value, for arbitrary in-range values.
func TestPropertyRaiDecimalRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hi := rapid.Uint64().Draw(t, "hi")
		lo := rapid.Uint64().Draw(t, "lo")
		r := Rai{hi: hi, lo: lo}

		r2, err := ParseRai(r.String())
		require.NoError(t, err)
		require.Equal(t, 0, r.Cmp(r2))

		r3, err := ParseRai(r.Raw())
		require.NoError(t, err)
		require.Equal(t, 0, r.Cmp(r3))
	})
}
