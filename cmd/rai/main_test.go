// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toole-brendan/rai/primitives"
)

func TestCmdSeedNewThenDerive(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"seed", "new"}, nil, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	seedHex := strings.TrimSpace(out.String())
	require.Len(t, seedHex, primitives.SeedLength*2)

	out.Reset()
	code = run([]string{"seed", "derive", seedHex, "0"}, nil, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	require.Len(t, strings.TrimSpace(out.String()), primitives.PrivateLength*2)
}

func TestCmdAddressToPublicRoundTrip(t *testing.T) {
	seed, err := primitives.RandomSeed()
	require.NoError(t, err)
	priv := seed.Derive(0)
	public := priv.Public()

	var out, errOut bytes.Buffer
	code := run([]string{"address", "to-public", public.Address()}, nil, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	require.Equal(t, public.Hex(), strings.TrimSpace(out.String()))
}

func TestCmdAddressToPublicRejectsBadInput(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"address", "to-public", "not-an-address"}, nil, &out, &errOut)
	require.Equal(t, exitUsage, code)
}

func TestCmdWorkGenerate(t *testing.T) {
	hash := primitives.HashBytes([]byte("subject"))

	var out, errOut bytes.Buffer
	code := run([]string{"work", "generate", hash.Hex(), "0000000000000000"}, nil, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	require.Len(t, strings.TrimSpace(out.String()), primitives.WorkLength*2)
}

func TestCmdVanityFindsMatchingAddress(t *testing.T) {
	// The first character after "nano_" carries only the key's top bit
	// (the other four bits are zero padding), so it is always '1' or '3'
	// and the prefix "1" matches about half of all candidate addresses.
	var out, errOut bytes.Buffer
	code := run([]string{"vanity", "--count", "1", "1"}, nil, &out, &errOut)
	require.Equal(t, exitSuccess, code)

	fields := strings.Fields(out.String())
	require.Len(t, fields, 2)
	seed, err := primitives.SeedFromHex(fields[0])
	require.NoError(t, err)
	require.Equal(t, fields[1], seed.Derive(0).Public().Address())
	require.True(t, strings.HasPrefix(fields[1], "nano_1"))
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"bogus"}, nil, &out, &errOut)
	require.Equal(t, exitUsage, code)
}

func TestRunRejectsEmptyArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, nil, &out, &errOut)
	require.Equal(t, exitUsage, code)
}
