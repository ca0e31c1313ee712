// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks

import "github.com/toole-brendan/rai/primitives"

// SendBlock is a legacy send block. Its hash covers previous,
// destination, balance, in that order.
type SendBlock struct {
	Previous    primitives.BlockHash
	Destination primitives.Public
	Balance     primitives.Rai
}

// Kind implements Block.
func (b SendBlock) Kind() BlockType { return BlockTypeSend }

// Hash implements Block.
func (b SendBlock) Hash() primitives.BlockHash {
	return primitives.HashBytes(b.Previous.Bytes(), b.Destination.Bytes(), b.Balance.Bytes())
}

// ReceiveBlock is a legacy receive block. Its hash covers previous,
// source, in that order.
type ReceiveBlock struct {
	Previous primitives.BlockHash
	Source   primitives.BlockHash
}

// Kind implements Block.
func (b ReceiveBlock) Kind() BlockType { return BlockTypeReceive }

// Hash implements Block.
func (b ReceiveBlock) Hash() primitives.BlockHash {
	return primitives.HashBytes(b.Previous.Bytes(), b.Source.Bytes())
}

// OpenBlock is a legacy open block: the first block of an account's
// chain. Its hash covers source, representative, account, in that order.
// Unlike Send/Receive/Change, Open carries its owning account
// explicitly.
type OpenBlock struct {
	Source         primitives.BlockHash
	Representative primitives.Public
	Account        primitives.Public
}

// Kind implements Block.
func (b OpenBlock) Kind() BlockType { return BlockTypeOpen }

// Hash implements Block.
func (b OpenBlock) Hash() primitives.BlockHash {
	return primitives.HashBytes(b.Source.Bytes(), b.Representative.Bytes(), b.Account.Bytes())
}

// Owner implements Owned.
func (b OpenBlock) Owner() primitives.Public { return b.Account }

// ChangeBlock is a legacy representative-change block. Its hash covers
// previous, representative, in that order.
type ChangeBlock struct {
	Previous       primitives.BlockHash
	Representative primitives.Public
}

// Kind implements Block.
func (b ChangeBlock) Kind() BlockType { return BlockTypeChange }

// Hash implements Block.
func (b ChangeBlock) Hash() primitives.BlockHash {
	return primitives.HashBytes(b.Previous.Bytes(), b.Representative.Bytes())
}
