// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer implements the per-connection handshake state machine and
// post-authentication message dispatch loop.
package peer

import (
	"errors"

	"github.com/toole-brendan/rai/ledger"
)

// dropPeerError wraps a soft failure that should end this peer's
// connection without taking the wider node down: handshake rejection, a
// read/write timeout, or a protocol framing error.
type dropPeerError struct {
	err error
}

func (e *dropPeerError) Error() string { return e.err.Error() }
func (e *dropPeerError) Unwrap() error { return e.err }

func dropPeer(err error) error {
	return &dropPeerError{err: err}
}

// IsDropPeer reports whether err should only terminate this peer's
// connection, leaving the rest of the node running.
func IsDropPeer(err error) bool {
	var dpe *dropPeerError
	if errors.As(err, &dpe) {
		return true
	}
	var re ledger.RuleError
	if errors.As(err, &re) {
		return !re.ErrorCode.Hard()
	}
	return false
}

// IsAbort reports whether err is a hard failure that should abort this
// node's processing, not just drop one peer: the ledger store became
// unavailable.
func IsAbort(err error) bool {
	var re ledger.RuleError
	if errors.As(err, &re) {
		return re.ErrorCode.Hard()
	}
	return false
}
