// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/btcsuite/btclog"

	"github.com/toole-brendan/rai/blocks"
	"github.com/toole-brendan/rai/primitives"
	"github.com/toole-brendan/rai/work"
)

// log is the package-level logger. It does nothing until the caller
// installs a real one.
var log = btclog.Disabled

// UseLogger sets the package-wide logger. It should be called before the
// package is used.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Controller runs the state-block admission pipeline against a
// LedgerStore.
type Controller struct {
	Store     LedgerStore
	Threshold work.Difficulty
}

// NewController returns a Controller backed by store, requiring work
// that meets threshold.
func NewController(store LedgerStore, threshold work.Difficulty) *Controller {
	return &Controller{Store: store, Threshold: threshold}
}

// HandlePublish runs the admission pipeline on an incoming Publish
// message's block. Only state blocks are processed; other holders are
// accepted (no error) but not stored.
//
// The returned error is always a RuleError. Soft failures (DUP, BADSIG,
// BADWORK, NOPREV, INVALID) should be logged and the peer kept; the hard
// failure (ErrStoreUnavailable) means the caller should abort the peer's
// read loop — see ErrorCode.Hard().
func (c *Controller) HandlePublish(fb blocks.FullBlock) error {
	sb, ok := fb.Block.(blocks.StateBlock)
	if !ok {
		log.Debugf("ledger: ignoring non-state block of kind %s", fb.Block.Kind())
		return nil
	}

	h := sb.Hash()

	txn, err := c.Store.Begin()
	if err != nil {
		return ruleError(ErrStoreUnavailable, "begin: %v", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = c.Store.Rollback(txn)
		}
	}()

	// DECODED -> HASHED -> (dup check)
	if _, exists, err := c.Store.GetByHash(txn, h); err != nil {
		return ruleError(ErrStoreUnavailable, "get_by_hash: %v", err)
	} else if exists {
		return ruleError(ErrDuplicate, "block %s already exists", h)
	}

	// SIGNATURE_OK
	if !fb.VerifySelfSignature() {
		return ruleError(ErrBadSignature, "block %s: signature does not verify", h)
	}

	// Work verification, wired in immediately after SIGNATURE_OK: open
	// blocks prove work against the account key; all other state blocks
	// prove it against the previous block's hash.
	subject := workSubject(sb)
	if !work.Verify(fb.Work, subject, c.Threshold) {
		return ruleError(ErrBadWork, "block %s: work does not meet threshold %d", h, uint64(c.Threshold))
	}

	// PREV_RESOLVED
	var prevBalance primitives.Rai
	var prevHash primitives.BlockHash
	hasPrev := !sb.Previous.IsOpen()

	if sb.Previous.IsOpen() {
		if _, exists, err := c.Store.GetHead(txn, sb.Account); err != nil {
			return ruleError(ErrStoreUnavailable, "get_head: %v", err)
		} else if exists {
			return ruleError(ErrPreviousNotHead, "account %s already has an opening block", sb.Account)
		}
		prevBalance = primitives.ZeroRai()
	} else {
		prev, exists, err := c.Store.GetByHash(txn, sb.Previous.Hash())
		if err != nil {
			return ruleError(ErrStoreUnavailable, "get_by_hash(previous): %v", err)
		}
		if !exists {
			return ruleError(ErrPreviousNotFound, "previous block %s not found", sb.Previous.Hash())
		}
		if !prev.IsHead || prev.BlockType != blocks.BlockTypeState || prev.Block.Account != sb.Account {
			return ruleError(ErrPreviousNotHead, "previous block %s is not %s's current head", sb.Previous.Hash(), sb.Account)
		}
		prevBalance = prev.Block.Balance
		prevHash = sb.Previous.Hash()
	}

	// CLASSIFIED
	link, subtype, amount, err := blocks.DecideLinkType(sb.Link.Raw(), sb.Balance, prevBalance)
	if err != nil {
		return ruleError(ErrInvalidBlock, "%v", err)
	}
	if !hasPrev && subtype != blocks.SubtypeReceive {
		return ruleError(ErrInvalidBlock, "opening block for %s must receive from an existing send", sb.Account)
	}
	if subtype == blocks.SubtypeReceive {
		src, exists, err := c.Store.GetByHash(txn, link.Source())
		if err != nil {
			return ruleError(ErrStoreUnavailable, "get_by_hash(link source): %v", err)
		}
		if !exists {
			return ruleError(ErrUnknownPrevious, "receive link %s does not refer to an existing send", link.Source())
		}
		if src.Subtype != blocks.SubtypeSend || src.Block.Link.DestinationAccount() != sb.Account {
			return ruleError(ErrInvalidBlock, "receive link %s is not a send addressed to %s", link.Source(), sb.Account)
		}
	}
	sb.Link = link

	// COMMITTED
	if err := c.Store.AppendHead(txn, sb, subtype, amount, prevHash, hasPrev); err != nil {
		return ruleError(ErrStoreUnavailable, "append_head: %v", err)
	}
	if err := c.Store.Commit(txn); err != nil {
		return ruleError(ErrStoreUnavailable, "commit: %v", err)
	}
	committed = true
	return nil
}

// workSubject derives the PoW subject for a state block: the account's
// public key for an opening block, otherwise the previous block's hash.
func workSubject(sb blocks.StateBlock) work.Subject {
	if sb.Previous.IsOpen() {
		return work.SubjectFromPublic(sb.Account)
	}
	return work.SubjectFromHash(sb.Previous.Hash())
}
