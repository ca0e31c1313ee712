// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blocks implements the five block variants of the ledger
// (Send, Receive, Open, Change, State), their canonical hashing, the
// state-block link/subtype model, and self-signature verification.
package blocks

import "github.com/toole-brendan/rai/primitives"

// BlockType is the wire-level block type tag used in the Publish and
// ConfirmReq message extensions bitfield.
type BlockType uint8

// Block type codes, as carried in bits 8..11 of the header extensions
// bitfield.
const (
	BlockTypeInvalid   BlockType = 1
	BlockTypeNotABlock BlockType = 2
	BlockTypeSend      BlockType = 3
	BlockTypeReceive   BlockType = 4
	BlockTypeOpen      BlockType = 5
	BlockTypeChange    BlockType = 6
	BlockTypeState     BlockType = 7
)

func (t BlockType) String() string {
	switch t {
	case BlockTypeInvalid:
		return "Invalid"
	case BlockTypeNotABlock:
		return "NotABlock"
	case BlockTypeSend:
		return "Send"
	case BlockTypeReceive:
		return "Receive"
	case BlockTypeOpen:
		return "Open"
	case BlockTypeChange:
		return "Change"
	case BlockTypeState:
		return "State"
	default:
		return "Unknown"
	}
}

// Block is implemented by every block variant. Hash is a pure function of
// the block's fields: any mutation of a field invalidates the hash
// computed before the mutation.
type Block interface {
	Hash() primitives.BlockHash
	Kind() BlockType
}

// Owned is implemented by block variants whose owning account can be
// determined from the block's own fields alone (State and Open). Legacy
// Send/Receive/Change blocks don't carry an account field — resolving
// their owner requires walking the chain to its opening block, which is
// outside this client's ledger admission scope (admission processes
// State blocks only).
type Owned interface {
	Owner() primitives.Public
}

// Previous is the previous-block field of a state block: either a normal
// chain link to an existing block, or the sentinel meaning "this block
// opens a new account".
type Previous struct {
	isOpen bool
	hash   primitives.BlockHash
}

// PreviousOpen returns the "opens a new account" sentinel.
func PreviousOpen() Previous {
	return Previous{isOpen: true}
}

// PreviousBlock returns a normal chain link to an existing block.
func PreviousBlock(h primitives.BlockHash) Previous {
	return Previous{hash: h}
}

// PreviousFromBytes decodes the 32-byte wire representation: all-zero
// means PreviousOpen.
func PreviousFromBytes(b [32]byte) Previous {
	if b == ([32]byte{}) {
		return PreviousOpen()
	}
	h, _ := primitives.BlockHashFromBytes(b[:])
	return PreviousBlock(h)
}

// IsOpen reports whether this is the "opens a new account" sentinel.
func (p Previous) IsOpen() bool { return p.isOpen }

// Hash returns the referenced previous block's hash. Only meaningful
// when !IsOpen().
func (p Previous) Hash() primitives.BlockHash { return p.hash }

// Bytes returns the 32-byte wire representation.
func (p Previous) Bytes() []byte {
	if p.isOpen {
		return make([]byte, 32)
	}
	return p.hash.Bytes()
}

// LinkKind identifies how a state block's Link field should be
// interpreted.
type LinkKind uint8

const (
	// LinkNothing: the block is a change block; link is all-zero.
	LinkNothing LinkKind = iota
	// LinkSource: the block is a receive; link names the source send's hash.
	LinkSource
	// LinkDestinationAccount: the block is a send; link names the recipient.
	LinkDestinationAccount
	// LinkUnsure: decoded but not yet classified; must be resolved by the
	// ledger before the block can be admitted.
	LinkUnsure
)

// Link is the polymorphic 32-byte field of a state block.
type Link struct {
	kind LinkKind
	raw  [32]byte
}

// LinkNothingValue returns the all-zero "change" link.
func LinkNothingValue() Link {
	return Link{kind: LinkNothing}
}

// LinkSourceValue returns a "receive" link naming the source block hash.
func LinkSourceValue(h primitives.BlockHash) Link {
	var l Link
	l.kind = LinkSource
	copy(l.raw[:], h.Bytes())
	return l
}

// LinkDestinationValue returns a "send" link naming the recipient account.
func LinkDestinationValue(p primitives.Public) Link {
	var l Link
	l.kind = LinkDestinationAccount
	copy(l.raw[:], p.Bytes())
	return l
}

// LinkUnsureValue wraps raw, not-yet-classified link bytes as decoded off
// the wire.
func LinkUnsureValue(raw [32]byte) Link {
	if raw == ([32]byte{}) {
		return LinkNothingValue()
	}
	return Link{kind: LinkUnsure, raw: raw}
}

// Kind reports how this link has been classified so far.
func (l Link) Kind() LinkKind { return l.kind }

// Bytes returns the 32-byte wire representation.
func (l Link) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, l.raw[:])
	return out
}

// Source returns the source block hash; only meaningful when
// Kind() == LinkSource.
func (l Link) Source() primitives.BlockHash {
	h, _ := primitives.BlockHashFromBytes(l.raw[:])
	return h
}

// DestinationAccount returns the recipient account; only meaningful when
// Kind() == LinkDestinationAccount.
func (l Link) DestinationAccount() primitives.Public {
	p, _ := primitives.PublicFromBytes(l.raw[:])
	return p
}

// Raw returns the undecoded 32 bytes, valid for any Kind.
func (l Link) Raw() [32]byte { return l.raw }
