// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toole-brendan/rai/primitives"
)

func TestCookieTableSetTakeAndClearConsumesOnce(t *testing.T) {
	table := NewCookieTable()
	cookie, err := primitives.RandomCookie()
	require.NoError(t, err)

	table.Set("127.0.0.1:7075", cookie)

	got, ok := table.TakeAndClear("127.0.0.1:7075")
	require.True(t, ok)
	require.Equal(t, cookie, got)

	_, ok = table.TakeAndClear("127.0.0.1:7075")
	require.False(t, ok)
}

func TestCookieTableSetIsIdempotentLastWriteWins(t *testing.T) {
	table := NewCookieTable()
	first, err := primitives.RandomCookie()
	require.NoError(t, err)
	second, err := primitives.RandomCookie()
	require.NoError(t, err)

	table.Set("10.0.0.1:7075", first)
	table.Set("10.0.0.1:7075", second)

	got, ok := table.TakeAndClear("10.0.0.1:7075")
	require.True(t, ok)
	require.Equal(t, second, got)
}

func TestCookieTableUnknownAddress(t *testing.T) {
	table := NewCookieTable()
	_, ok := table.TakeAndClear("1.2.3.4:5")
	require.False(t, ok)
}
