// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"fmt"

	"github.com/toole-brendan/rai/primitives"
	"github.com/toole-brendan/rai/wire"
)

// initialHandshake sends our query (a fresh cookie), recording it so a
// later response from this peer can be checked against it. Each side may
// also act as responder to the other's query; the two halves may
// interleave in either order, so this function only sends — it does not
// block waiting for the peer's response, which arrives through the
// normal dispatch loop.
func (p *Peer) initialHandshake() error {
	cookie, err := primitives.RandomCookie()
	if err != nil {
		return dropPeer(fmt.Errorf("generate cookie: %w", err))
	}
	p.State.Cookies.Set(p.PeerAddr, cookie)

	if err := p.sendHeader(wire.MessageNodeIdHandshake, wire.ExtHandshakeQuery, HandshakeTimeout); err != nil {
		return err
	}
	msg := wire.MsgNodeIdHandshake{HasQuery: true, Cookie: cookie}
	if err := p.send(msg, HandshakeTimeout); err != nil {
		return err
	}
	p.state = connSentQuery
	return nil
}

// handleNodeIDHandshake reads the NodeIdHandshake body matching header's
// extensions and processes whichever of query/response is present,
// responding to a query and verifying a response.
func (p *Peer) handleNodeIDHandshake(header wire.Header) error {
	timeout := HandshakeTimeout
	if p.state == connAuthenticated || p.state == connRunning {
		timeout = BodyTimeout
	}

	size := wire.HandshakeSize(header.Extensions)
	body, err := p.readBody(size, timeout)
	if err != nil {
		return err
	}
	msg, err := wire.DeserializeNodeIdHandshake(header.Extensions.HasQuery(), header.Extensions.HasResponse(), body)
	if err != nil {
		return dropPeer(err)
	}

	if msg.HasQuery {
		if err := p.respondToQuery(msg.Cookie); err != nil {
			return err
		}
	}
	if msg.HasResponse {
		if err := p.verifyResponse(msg.Public, msg.Signature); err != nil {
			return err
		}
	}
	return nil
}

// respondToQuery signs the peer's cookie with our node identity and
// sends it back, proving possession of our private key.
func (p *Peer) respondToQuery(cookie primitives.Cookie) error {
	signature := p.State.NodeID.Sign(cookie.Bytes())
	public := p.State.NodeID.Public()

	if err := p.sendHeader(wire.MessageNodeIdHandshake, wire.ExtHandshakeResponse, HandshakeTimeout); err != nil {
		return err
	}
	resp := wire.MsgNodeIdHandshake{HasResponse: true, Public: public, Signature: signature}
	return p.send(resp, HandshakeTimeout)
}

// verifyResponse checks a peer's handshake response against the cookie
// we issued them. A received response without a matching cookie is a
// stray or duplicate; it is logged and ignored rather than treated as
// fatal.
func (p *Peer) verifyResponse(public primitives.Public, signature primitives.Signature) error {
	cookie, ok := p.State.Cookies.TakeAndClear(p.PeerAddr)
	if !ok {
		log.Warnf("peer %s: handshake response with no matching cookie, ignoring", p.PeerAddr)
		return nil
	}
	if !public.Verify(cookie.Bytes(), signature) {
		return dropPeer(fmt.Errorf("peer %s: invalid handshake signature", p.PeerAddr))
	}
	p.state = connAuthenticated
	return nil
}
