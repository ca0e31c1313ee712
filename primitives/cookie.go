// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"crypto/rand"
	"encoding/hex"
)

// CookieLength is the byte length of a handshake challenge nonce.
const CookieLength = 32

// Cookie is a random nonce exchanged during the peer handshake to prove
// possession of the peer's private key.
type Cookie [CookieLength]byte

// RandomCookie generates a fresh handshake cookie.
func RandomCookie() (Cookie, error) {
	var c Cookie
	if _, err := rand.Read(c[:]); err != nil {
		return Cookie{}, err
	}
	return c, nil
}

// CookieFromBytes builds a Cookie from a byte slice.
func CookieFromBytes(b []byte) (Cookie, error) {
	var c Cookie
	if len(b) != CookieLength {
		return c, invalidLength("Cookie", len(b), CookieLength)
	}
	copy(c[:], b)
	return c, nil
}

// Bytes returns a view of the underlying 32 bytes.
func (c Cookie) Bytes() []byte { return c[:] }

// Hex returns the hex-encoded form.
func (c Cookie) Hex() string { return hex.EncodeToString(c[:]) }

func (c Cookie) String() string { return c.Hex() }
