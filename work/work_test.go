// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package work

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/toole-brendan/rai/primitives"
)

// TestWorkVerificationFixture checks known difficulty fixtures. Each
// hash is incremented by one.
func TestWorkVerificationFixture(t *testing.T) {
	cases := []struct {
		hash       string
		work       string
		difficulty string
		enough     bool
	}{
		{
			"2387767168f9453db0eca227c79d7e7a31b78cafb58bd9cdee630881c70979b8",
			"c3f097857cc7106b",
			"fffffff867b3146b",
			true,
		},
		{
			"2387767168f9453db0eca227c79d7e7a31b78cafb58bd9cdee630881c70979b9",
			"ec4f0960a70fdcbe",
			"fffffffde26451db",
			true,
		},
		{
			"2387767168f9453db0eca227c79d7e7a31b78cafb58bd9cdee630881c70979ba",
			"b58e13f297179bc2",
			"fffffffb6fc1b4a6",
			true,
		},
		{
			// Same hash as above, but all-zero work: a totally different
			// difficulty, and not enough to meet the threshold.
			"2387767168f9453db0eca227c79d7e7a31b78cafb58bd9cdee630881c70979ba",
			"0000000000000000",
			"357abcab02726362",
			false,
		},
	}

	threshold, err := DifficultyFromHex("ffffffc000000000")
	require.NoError(t, err)

	for _, c := range cases {
		hash, err := primitives.BlockHashFromHex(c.hash)
		require.NoError(t, err)
		w, err := primitives.WorkFromHex(c.work)
		require.NoError(t, err)
		wantDifficulty, err := DifficultyFromHex(c.difficulty)
		require.NoError(t, err)

		subject := SubjectFromHash(hash)
		gotDifficulty := GetDifficulty(w, subject)
		require.Equal(t, wantDifficulty, gotDifficulty, c.hash)
		require.Equal(t, c.enough, Verify(w, subject, threshold), c.hash)
	}
}

// TestSeedDerivationWorkFixture checks that Seed.zero().derive(0)
// produces a Private whose Public, mined against a low threshold, passes
// verification.
func TestSeedDerivationWorkFixture(t *testing.T) {
	threshold, err := DifficultyFromHex("ffff000000000000")
	require.NoError(t, err)

	public := primitives.ZeroSeed().Derive(0).Public()
	subject := SubjectFromPublic(public)

	w, err := Generate(subject, threshold)
	require.NoError(t, err)
	require.True(t, Verify(w, subject, threshold))
}

func TestVerifyIffDifficultyMeetsThreshold(t *testing.T) {
	hash, err := primitives.BlockHashFromHex("2387767168f9453db0eca227c79d7e7a31b78cafb58bd9cdee630881c70979b8")
	require.NoError(t, err)
	w, err := primitives.WorkFromHex("c3f097857cc7106b")
	require.NoError(t, err)
	subject := SubjectFromHash(hash)

	d := GetDifficulty(w, subject)
	require.True(t, Verify(w, subject, d), "threshold equal to difficulty must pass (>=)")
	require.True(t, Verify(w, subject, d-1))
	require.False(t, Verify(w, subject, d+1))
}

func TestPoolGenerateFindsSolution(t *testing.T) {
	threshold, err := DifficultyFromHex("ffff000000000000")
	require.NoError(t, err)
	public := primitives.ZeroSeed().Derive(7).Public()
	subject := SubjectFromPublic(public)

	pool := NewPool(2)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	w, err := pool.Generate(ctx, subject, threshold)
	require.NoError(t, err)
	require.True(t, Verify(w, subject, threshold))
}

func TestPoolGenerateRespectsCancellation(t *testing.T) {
	// An unreasonably high threshold that a tiny timeout cannot satisfy,
	// so Generate must return the context's cancellation error.
	threshold, err := DifficultyFromHex("fffffffffffffff0")
	require.NoError(t, err)
	public := primitives.ZeroSeed().Derive(8).Public()
	subject := SubjectFromPublic(public)

	pool := NewPool(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = pool.Generate(ctx, subject, threshold)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
