// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/toole-brendan/rai/blocks"
	"github.com/toole-brendan/rai/primitives"
)

// MemoryStore is the in-memory LedgerStore implementation. A single mtx
// guards both maps; AppendHead does its mark-not-head-and-insert-head
// work entirely inside one write-lock critical section so no observer
// ever sees an inconsistent pair of maps.
type MemoryStore struct {
	mtx           sync.RWMutex
	byHash        map[primitives.BlockHash]StoredBlock
	headByAccount map[primitives.Public]primitives.BlockHash
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byHash:        make(map[primitives.BlockHash]StoredBlock),
		headByAccount: make(map[primitives.Public]primitives.BlockHash),
	}
}

// memTxn is the no-op transaction handle MemoryStore hands out: the
// store's real atomicity comes from holding mtx for the duration of
// Begin..Commit, not from any transaction log.
type memTxn struct{}

// Begin acquires the store's write lock for the duration of the
// transaction. The caller must always pair it with Commit or Rollback.
func (s *MemoryStore) Begin() (Txn, error) {
	s.mtx.Lock()
	return memTxn{}, nil
}

// Commit releases the write lock taken by Begin.
func (s *MemoryStore) Commit(_ Txn) error {
	s.mtx.Unlock()
	return nil
}

// Rollback releases the write lock taken by Begin without having
// mutated any state (callers must not have called AppendHead since
// Begin if they intend to roll back).
func (s *MemoryStore) Rollback(_ Txn) error {
	s.mtx.Unlock()
	return nil
}

// GetByHash looks up a stored block by hash. It may be called either
// inside an open Begin/Commit transaction, where Begin already holds the
// write lock, or on its own with a nil txn, in which case it takes its
// own read lock.
func (s *MemoryStore) GetByHash(txn Txn, h primitives.BlockHash) (StoredBlock, bool, error) {
	if txn == nil {
		s.mtx.RLock()
		defer s.mtx.RUnlock()
	}
	sb, ok := s.byHash[h]
	return sb, ok, nil
}

// GetHead returns the current head block for account, if any.
func (s *MemoryStore) GetHead(txn Txn, account primitives.Public) (StoredBlock, bool, error) {
	head, ok := s.headByAccount[account]
	if !ok {
		return StoredBlock{}, false, nil
	}
	return s.GetByHash(txn, head)
}

// AppendHead implements LedgerStore.
func (s *MemoryStore) AppendHead(_ Txn, block blocks.StateBlock, subtype blocks.Subtype, amount primitives.Rai, prevHash primitives.BlockHash, hasPrev bool) error {
	if hasPrev {
		prev, ok := s.byHash[prevHash]
		if ok {
			prev.IsHead = false
			s.byHash[prevHash] = prev
		}
	}
	h := block.Hash()
	s.byHash[h] = StoredBlock{
		Block:     block,
		Subtype:   subtype,
		Amount:    amount,
		IsHead:    true,
		BlockType: blocks.BlockTypeState,
	}
	s.headByAccount[block.Account] = h
	return nil
}
