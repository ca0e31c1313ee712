// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// RaiLength is the byte length of a balance value (128-bit unsigned,
// big-endian on the wire).
const RaiLength = 16

// rawDecimals is the number of fractional decimal digits a whole "rai"
// unit is divided into when parsing/formatting decimal strings.
const rawDecimals = 30

// Rai is an unsigned 128-bit balance measured in raw units.
type Rai struct {
	hi uint64
	lo uint64
}

var raiModulus = new(big.Int).Lsh(big.NewInt(1), 128)

// ZeroRai is the zero balance.
func ZeroRai() Rai { return Rai{} }

// RaiFromUint64 builds a Rai from a plain 64-bit raw-unit amount.
func RaiFromUint64(v uint64) Rai {
	return Rai{lo: v}
}

// RaiFromBytes builds a Rai from its 16-byte big-endian encoding.
func RaiFromBytes(b []byte) (Rai, error) {
	if len(b) != RaiLength {
		return Rai{}, invalidLength("Rai", len(b), RaiLength)
	}
	var r Rai
	for i := 0; i < 8; i++ {
		r.hi = r.hi<<8 | uint64(b[i])
	}
	for i := 8; i < 16; i++ {
		r.lo = r.lo<<8 | uint64(b[i])
	}
	return r, nil
}

// Bytes returns the 16-byte big-endian encoding.
func (r Rai) Bytes() []byte {
	out := make([]byte, RaiLength)
	for i := 0; i < 8; i++ {
		out[7-i] = byte(r.hi >> (8 * i))
	}
	for i := 0; i < 8; i++ {
		out[15-i] = byte(r.lo >> (8 * i))
	}
	return out
}

// Hex returns the hex-encoded raw 16-byte form.
func (r Rai) Hex() string { return hex.EncodeToString(r.Bytes()) }

func (r Rai) big() *big.Int {
	v := new(big.Int).SetUint64(r.hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(r.lo))
	return v
}

func raiFromBig(v *big.Int) (Rai, bool) {
	if v.Sign() < 0 || v.Cmp(raiModulus) >= 0 {
		return Rai{}, false
	}
	b := make([]byte, RaiLength)
	v.FillBytes(b)
	r, _ := RaiFromBytes(b)
	return r, true
}

// Cmp compares two Rai values: -1, 0, or 1.
func (r Rai) Cmp(other Rai) int {
	if r.hi != other.hi {
		if r.hi < other.hi {
			return -1
		}
		return 1
	}
	if r.lo != other.lo {
		if r.lo < other.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Add returns r+other and whether the result fit in 128 bits. A false ok
// means the addition overflowed; the returned value is undefined in that
// case.
func (r Rai) Add(other Rai) (Rai, bool) {
	return raiFromBig(new(big.Int).Add(r.big(), other.big()))
}

// Sub returns r-other and whether the result is non-negative. A false ok
// means other > r (would underflow); the ledger's subtype inference
// relies on this to distinguish a legitimate zero-delta change block
// from an invalid negative balance.
func (r Rai) Sub(other Rai) (Rai, bool) {
	return raiFromBig(new(big.Int).Sub(r.big(), other.big()))
}

// String renders the balance as a decimal string in whole "rai" units
// with trailing fractional zeros trimmed. A whole number of units keeps a
// ".0" suffix, so ParseRai reads the result as whole units rather than as
// a bare raw-unit integer.
func (r Rai) String() string {
	v := r.big()
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(rawDecimals), nil)
	whole := new(big.Int).Div(v, divisor)
	frac := new(big.Int).Mod(v, divisor)
	if frac.Sign() == 0 {
		return whole.String() + ".0"
	}
	fracStr := frac.String()
	fracStr = strings.Repeat("0", rawDecimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	return whole.String() + "." + fracStr
}

// Raw renders the balance as its bare raw-unit integer string.
func (r Rai) Raw() string {
	return r.big().String()
}

// ParseRai parses either a decimal whole-unit string ("123.456") or a bare
// raw-unit integer string.
func ParseRai(s string) (Rai, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rai{}, invalidEncoding("Rai", "empty string")
	}
	if !strings.Contains(s, ".") {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return Rai{}, invalidEncoding("Rai", "not a valid integer")
		}
		r, ok := raiFromBig(v)
		if !ok {
			return Rai{}, invalidEncoding("Rai", "value out of range")
		}
		return r, nil
	}

	parts := strings.SplitN(s, ".", 2)
	wholePart, fracPart := parts[0], parts[1]
	if len(fracPart) > rawDecimals {
		return Rai{}, invalidEncoding("Rai", "too many fractional digits (max 30)")
	}
	fracPart = fracPart + strings.Repeat("0", rawDecimals-len(fracPart))

	whole, ok := new(big.Int).SetString(wholePart, 10)
	if !ok {
		return Rai{}, invalidEncoding("Rai", "not a valid integer part")
	}
	frac, ok := new(big.Int).SetString(fracPart, 10)
	if !ok {
		return Rai{}, invalidEncoding("Rai", "not a valid fractional part")
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(rawDecimals), nil)
	v := new(big.Int).Mul(whole, divisor)
	v.Add(v, frac)

	r, ok := raiFromBig(v)
	if !ok {
		return Rai{}, invalidEncoding("Rai", "value out of range")
	}
	return r, nil
}
