// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blocks

import "github.com/toole-brendan/rai/primitives"

// FullBlock wraps a Block with its (possibly absent) signature and proof
// of work, as carried over the wire. Absence is expressed with the
// zero-value sentinel for each (primitives.Signature{}.IsZero(),
// primitives.Work{}.IsZero()); the all-zero signature is the permitted
// placeholder for a block that hasn't been signed yet.
type FullBlock struct {
	Block     Block
	Signature primitives.Signature
	Work      primitives.Work
}

// NewFullBlock wraps block with a signature and work value.
func NewFullBlock(block Block, sig primitives.Signature, w primitives.Work) FullBlock {
	return FullBlock{Block: block, Signature: sig, Work: w}
}

// VerifySelfSignature checks Signature::verify(block.account_or_owner(),
// block.hash(), signature). For block variants that don't carry their
// owning account (Send/Receive/Change, see the Owned doc comment), this
// always returns false: such blocks cannot be self-verified without
// external chain context, and the ledger admission pipeline never calls
// VerifySelfSignature on them (it processes State blocks only).
func (fb FullBlock) VerifySelfSignature() bool {
	owned, ok := fb.Block.(Owned)
	if !ok {
		return false
	}
	return owned.Owner().Verify(fb.Block.Hash().Bytes(), fb.Signature)
}

// BlockHolder is the tagged transport form of a block, as parsed from a
// Publish message body. Exactly one of the typed fields is
// populated, matching Kind().
type BlockHolder struct {
	kind    BlockType
	send    *SendBlock
	receive *ReceiveBlock
	open    *OpenBlock
	change  *ChangeBlock
	state   *StateBlock
}

// Kind reports which variant this holder carries.
func (h BlockHolder) Kind() BlockType { return h.kind }

// NewSendHolder builds a BlockHolder carrying a Send block.
func NewSendHolder(b SendBlock) BlockHolder { return BlockHolder{kind: BlockTypeSend, send: &b} }

// NewReceiveHolder builds a BlockHolder carrying a Receive block.
func NewReceiveHolder(b ReceiveBlock) BlockHolder {
	return BlockHolder{kind: BlockTypeReceive, receive: &b}
}

// NewOpenHolder builds a BlockHolder carrying an Open block.
func NewOpenHolder(b OpenBlock) BlockHolder { return BlockHolder{kind: BlockTypeOpen, open: &b} }

// NewChangeHolder builds a BlockHolder carrying a Change block.
func NewChangeHolder(b ChangeBlock) BlockHolder {
	return BlockHolder{kind: BlockTypeChange, change: &b}
}

// NewStateHolder builds a BlockHolder carrying a State block.
func NewStateHolder(b StateBlock) BlockHolder { return BlockHolder{kind: BlockTypeState, state: &b} }

// Send returns the wrapped Send block and whether Kind() == BlockTypeSend.
func (h BlockHolder) Send() (SendBlock, bool) {
	if h.send == nil {
		return SendBlock{}, false
	}
	return *h.send, true
}

// Receive returns the wrapped Receive block and whether
// Kind() == BlockTypeReceive.
func (h BlockHolder) Receive() (ReceiveBlock, bool) {
	if h.receive == nil {
		return ReceiveBlock{}, false
	}
	return *h.receive, true
}

// Open returns the wrapped Open block and whether Kind() == BlockTypeOpen.
func (h BlockHolder) Open() (OpenBlock, bool) {
	if h.open == nil {
		return OpenBlock{}, false
	}
	return *h.open, true
}

// Change returns the wrapped Change block and whether
// Kind() == BlockTypeChange.
func (h BlockHolder) Change() (ChangeBlock, bool) {
	if h.change == nil {
		return ChangeBlock{}, false
	}
	return *h.change, true
}

// State returns the wrapped State block and whether
// Kind() == BlockTypeState.
func (h BlockHolder) State() (StateBlock, bool) {
	if h.state == nil {
		return StateBlock{}, false
	}
	return *h.state, true
}

// Block returns the wrapped block as the Block interface, regardless of
// variant.
func (h BlockHolder) Block() Block {
	switch h.kind {
	case BlockTypeSend:
		return *h.send
	case BlockTypeReceive:
		return *h.receive
	case BlockTypeOpen:
		return *h.open
	case BlockTypeChange:
		return *h.change
	case BlockTypeState:
		return *h.state
	default:
		return nil
	}
}
