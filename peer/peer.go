// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"fmt"
	"io"
	"net"
	"time"

	"github.com/btcsuite/btclog"

	"github.com/toole-brendan/rai/state"
	"github.com/toole-brendan/rai/wire"
)

// log is the package-level logger. It does nothing until the caller
// installs a real one.
var log = btclog.Disabled

// UseLogger sets the package-wide logger. It should be called before the
// package is used.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Timeouts for socket reads: the handshake must complete quickly;
// once authenticated, a peer has longer to deliver a message body after
// its header since larger gossip bursts are expected.
const (
	HandshakeTimeout = 15 * time.Second
	BodyTimeout      = 60 * time.Second
)

// connState is the per-connection state machine.
type connState int

const (
	connConnected connState = iota
	connSentQuery
	connPeerResponded
	connAuthenticated
	connRunning
	connClosed
)

// Peer owns one TCP stream and the state machine driving its handshake
// and post-auth dispatch loop. A reusable header buffer avoids an
// allocation on every frame.
type Peer struct {
	State    *state.State
	Conn     net.Conn
	PeerAddr string

	state     connState
	headerBuf [wire.HeaderSize]byte
}

// New wraps conn as a Peer driven by the shared process state.
func New(st *state.State, conn net.Conn) *Peer {
	return &Peer{
		State:    st,
		Conn:     conn,
		PeerAddr: conn.RemoteAddr().String(),
		state:    connConnected,
	}
}

// readHeader reads and decodes the next 8-byte header within timeout.
func (p *Peer) readHeader(timeout time.Duration) (wire.Header, error) {
	if err := p.Conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return wire.Header{}, dropPeer(err)
	}
	if _, err := io.ReadFull(p.Conn, p.headerBuf[:]); err != nil {
		return wire.Header{}, dropPeer(fmt.Errorf("read header: %w", err))
	}
	h, err := wire.DeserializeHeader(p.headerBuf[:])
	if err != nil {
		return wire.Header{}, dropPeer(err)
	}
	return h, nil
}

// readBody reads exactly n bytes of message body within timeout.
func (p *Peer) readBody(n int, timeout time.Duration) ([]byte, error) {
	if err := p.Conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, dropPeer(err)
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(p.Conn, buf); err != nil {
		return nil, dropPeer(fmt.Errorf("read body: %w", err))
	}
	return buf, nil
}

// send writes msg preceded by nothing; callers write the header
// separately via sendHeader so the two can be composed freely.
func (p *Peer) send(msg wire.Wire, timeout time.Duration) error {
	if err := p.Conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return dropPeer(err)
	}
	if _, err := p.Conn.Write(msg.Serialize()); err != nil {
		return dropPeer(fmt.Errorf("write: %w", err))
	}
	return nil
}

// sendHeader writes a header for the given type/network/extensions.
func (p *Peer) sendHeader(msgType wire.MessageType, ext wire.Extensions, timeout time.Duration) error {
	h := wire.NewHeader(p.State.Network, msgType, ext)
	return p.send(h, timeout)
}

// Run drives the full peer lifecycle: it sends our handshake query, then
// loops reading headers and dispatching them. NodeIdHandshake frames are
// handled at any state (our query and the peer's may interleave in
// either order); every other message type is only dispatched once
// authenticated.
func (p *Peer) Run() error {
	defer func() {
		p.state = connClosed
		p.State.Cookies.TakeAndClear(p.PeerAddr)
	}()

	if err := p.initialHandshake(); err != nil {
		return err
	}

	for {
		timeout := BodyTimeout
		if p.state != connAuthenticated && p.state != connRunning {
			timeout = HandshakeTimeout
		}
		header, err := p.readHeader(timeout)
		if err != nil {
			return err
		}
		if err := p.dispatch(header); err != nil {
			return err
		}
	}
}
