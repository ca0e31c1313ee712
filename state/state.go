// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state holds the process-wide state shared by every peer
// connection: network identity, the handshake cookie table, and the
// ledger store handle.
package state

import (
	"sync"

	"github.com/toole-brendan/rai/ledger"
	"github.com/toole-brendan/rai/primitives"
	"github.com/toole-brendan/rai/wire"
)

// CookieTable indexes handshake cookies by the remote peer's socket
// address; each cookie is consumed at most once.
type CookieTable struct {
	mtx     sync.Mutex
	cookies map[string]primitives.Cookie
}

// NewCookieTable returns an empty CookieTable.
func NewCookieTable() *CookieTable {
	return &CookieTable{cookies: make(map[string]primitives.Cookie)}
}

// Set records the cookie we issued to addr, overwriting any prior value
// (last write wins — idempotent per repeated handshake attempts from the
// same address).
func (t *CookieTable) Set(addr string, cookie primitives.Cookie) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.cookies[addr] = cookie
}

// TakeAndClear returns the cookie recorded for addr and removes it,
// so a response can only be checked against it once.
func (t *CookieTable) TakeAndClear(addr string) (primitives.Cookie, bool) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	c, ok := t.cookies[addr]
	if ok {
		delete(t.cookies, addr)
	}
	return c, ok
}

// State is the process-wide context handed to every peer connection.
type State struct {
	Network    wire.Network
	NodeID     primitives.Private
	Cookies    *CookieTable
	Controller *ledger.Controller
}

// New builds a State for the given network identity and ledger
// controller, with a fresh empty cookie table.
func New(network wire.Network, nodeID primitives.Private, controller *ledger.Controller) *State {
	return &State{
		Network:    network,
		NodeID:     nodeID,
		Cookies:    NewCookieTable(),
		Controller: controller,
	}
}
