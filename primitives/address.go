// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"math/big"
	"strings"

	"github.com/toole-brendan/rai/crypto"
)

// addressAlphabet is the 32-character alphabet used to encode addresses,
// chosen to avoid visually ambiguous characters.
const addressAlphabet = "13456789abcdefghijkmnopqrstuwxyz"

const addressPrefix = "nano_"

// keyGroups is the number of 5-bit groups needed to encode the 4
// zero-padding bits plus the 256-bit key (260 bits / 5 = 52).
const keyGroups = 52

// checksumGroups is the number of 5-bit groups needed to encode the
// 5-byte (40-bit) checksum (40 bits / 5 = 8).
const checksumGroups = 8

var addressAlphabetIndex = func() map[byte]int {
	m := make(map[byte]int, len(addressAlphabet))
	for i := 0; i < len(addressAlphabet); i++ {
		m[addressAlphabet[i]] = i
	}
	return m
}()

// Address renders the public key in "nano_" address form: the prefix,
// followed by a base32 encoding (custom alphabet) of a 260-bit payload
// (4 zero bits || the 256-bit key), followed by a base32 encoding of a
// 5-byte Blake2b checksum computed over the reversed key bytes.
func (p Public) Address() string {
	keyPart := encodeGroups(new(big.Int).SetBytes(p[:]), keyGroups)

	reversed := make([]byte, PublicLength)
	for i, b := range p[:] {
		reversed[PublicLength-1-i] = b
	}
	checksum := crypto.Blake2b(5, reversed)
	checksumPart := encodeGroups(new(big.Int).SetBytes(checksum), checksumGroups)

	var sb strings.Builder
	sb.Grow(len(addressPrefix) + keyGroups + checksumGroups)
	sb.WriteString(addressPrefix)
	sb.WriteString(keyPart)
	sb.WriteString(checksumPart)
	return sb.String()
}

// ParseAddress decodes a "nano_" address back into its Public key,
// validating the prefix, the alphabet, and the checksum. Any single-bit
// mutation of a valid address fails the checksum check.
func ParseAddress(s string) (Public, error) {
	if !strings.HasPrefix(s, addressPrefix) {
		return Public{}, invalidAddress("missing \"nano_\" prefix")
	}
	body := s[len(addressPrefix):]
	if len(body) != keyGroups+checksumGroups {
		return Public{}, invalidAddress("wrong length")
	}

	keyPart := body[:keyGroups]
	checksumPart := body[keyGroups:]

	keyValue, err := decodeGroups(keyPart)
	if err != nil {
		return Public{}, err
	}
	// The top 4 bits of the 260-bit payload must be zero padding.
	if keyValue.BitLen() > PublicLength*8 {
		return Public{}, invalidAddress("key payload padding bits are not zero")
	}
	keyBytes := make([]byte, PublicLength)
	keyValue.FillBytes(keyBytes)

	checksumValue, err := decodeGroups(checksumPart)
	if err != nil {
		return Public{}, err
	}
	if checksumValue.BitLen() > 40 {
		return Public{}, invalidAddress("checksum payload overflows 40 bits")
	}
	gotChecksum := make([]byte, 5)
	checksumValue.FillBytes(gotChecksum)

	reversed := make([]byte, PublicLength)
	for i, b := range keyBytes {
		reversed[PublicLength-1-i] = b
	}
	wantChecksum := crypto.Blake2b(5, reversed)
	if !crypto.ConstantTimeCompare(gotChecksum, wantChecksum) {
		return Public{}, invalidAddress("checksum mismatch")
	}

	var p Public
	copy(p[:], keyBytes)
	return p, nil
}

// encodeGroups renders v as numGroups base32 digits, most-significant
// group first, using the address alphabet.
func encodeGroups(v *big.Int, numGroups int) string {
	v = new(big.Int).Set(v)
	base := big.NewInt(32)
	digits := make([]byte, numGroups)
	rem := new(big.Int)
	for i := numGroups - 1; i >= 0; i-- {
		v.DivMod(v, base, rem)
		digits[i] = addressAlphabet[rem.Int64()]
	}
	return string(digits)
}

// decodeGroups parses a string of base32 digits (address alphabet) back
// into the integer it encodes.
func decodeGroups(s string) (*big.Int, error) {
	v := new(big.Int)
	base := big.NewInt(32)
	for i := 0; i < len(s); i++ {
		idx, ok := addressAlphabetIndex[s[i]]
		if !ok {
			return nil, invalidAddress("character outside address alphabet")
		}
		v.Mul(v, base)
		v.Add(v, big.NewInt(int64(idx)))
	}
	return v, nil
}
