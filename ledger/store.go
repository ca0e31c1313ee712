// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger implements the state-block admission pipeline
// (Controller.HandlePublish) and the LedgerStore contract it runs
// against, plus an in-memory LedgerStore implementation.
package ledger

import (
	"github.com/toole-brendan/rai/blocks"
	"github.com/toole-brendan/rai/primitives"
)

// StoredBlock is the ledger's on-disk (or in-memory) record of an
// admitted state block: the block itself plus the derived fields the
// admission pipeline computed when it was classified.
type StoredBlock struct {
	Block     blocks.StateBlock
	Subtype   blocks.Subtype
	Amount    primitives.Rai
	IsHead    bool
	BlockType blocks.BlockType
}

// Txn is an opaque handle to an in-flight LedgerStore transaction.
type Txn interface{}

// LedgerStore is the abstract storage contract the admission pipeline
// runs against. All mutating calls run inside a single
// transaction; atomicity means no observer ever sees two head blocks for
// one account, nor a head-marked block absent from the index.
type LedgerStore interface {
	Begin() (Txn, error)
	GetByHash(txn Txn, h primitives.BlockHash) (StoredBlock, bool, error)
	GetHead(txn Txn, account primitives.Public) (StoredBlock, bool, error)
	// AppendHead atomically marks prevHash (if hasPrev is true) not-head and
	// inserts block as the new head for block.Account.
	AppendHead(txn Txn, block blocks.StateBlock, subtype blocks.Subtype, amount primitives.Rai, prevHash primitives.BlockHash, hasPrev bool) error
	Commit(txn Txn) error
	Rollback(txn Txn) error
}
