// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"fmt"

	"github.com/toole-brendan/rai/blocks"
	"github.com/toole-brendan/rai/wire"
)

// dispatch routes a decoded header to its handler. NodeIdHandshake is
// accepted at any connection state; every other message type requires an
// authenticated connection first.
func (p *Peer) dispatch(header wire.Header) error {
	if header.MessageType == wire.MessageNodeIdHandshake {
		return p.handleNodeIDHandshake(header)
	}
	if p.state != connAuthenticated && p.state != connRunning {
		return dropPeer(fmt.Errorf("peer %s: message type %s before authentication", p.PeerAddr, header.MessageType))
	}
	p.state = connRunning

	switch header.MessageType {
	case wire.MessageKeepalive:
		return p.handleKeepalive()
	case wire.MessagePublish:
		return p.handlePublish(header)
	case wire.MessageConfirmReq:
		return p.handleConfirmReq()
	case wire.MessageConfirmAck:
		return p.handleConfirmAck()
	case wire.MessageBulkPull:
		return p.handleBulkPull()
	case wire.MessageBulkPush:
		return p.handleBulkPush()
	case wire.MessageFrontierReq:
		return p.handleFrontierReq()
	case wire.MessageBulkPullAccount:
		return p.handleBulkPullAccount()
	case wire.MessageTelemetryReq:
		return p.handleTelemetryReq()
	case wire.MessageTelemetryAck:
		return p.handleTelemetryAck()
	default:
		return dropPeer(fmt.Errorf("peer %s: unknown message type %s", p.PeerAddr, header.MessageType))
	}
}

func (p *Peer) handleKeepalive() error {
	body, err := p.readBody(wire.MsgKeepalive{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	if _, err := wire.DeserializeKeepalive(body); err != nil {
		return dropPeer(err)
	}
	return nil
}

// handlePublish reads a Publish body sized per the header's BlockType
// extension bits and runs it through ledger admission. A soft admission
// failure is logged and this peer connection continues; a hard failure
// propagates so the caller can abort the node's read loop.
func (p *Peer) handlePublish(header wire.Header) error {
	size, err := wire.PublishSize(header.Extensions)
	if err != nil {
		return dropPeer(err)
	}
	body, err := p.readBody(size, BodyTimeout)
	if err != nil {
		return err
	}
	msg, err := wire.DeserializePublish(header.Extensions.BlockType(), body)
	if err != nil {
		return dropPeer(err)
	}

	fb := blocks.NewFullBlock(msg.Holder.Block(), msg.Signature, msg.Work)
	if err := p.State.Controller.HandlePublish(fb); err != nil {
		if IsAbort(err) {
			return err
		}
		log.Debugf("peer %s: publish rejected: %v", p.PeerAddr, err)
	}
	return nil
}

func (p *Peer) handleConfirmReq() error {
	body, err := p.readBody(wire.MsgConfirmReq{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	_, err = wire.DeserializeConfirmReq(body)
	if err != nil {
		return dropPeer(err)
	}
	return nil
}

func (p *Peer) handleConfirmAck() error {
	body, err := p.readBody(wire.MsgConfirmAck{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	_, err = wire.DeserializeConfirmAck(body)
	if err != nil {
		return dropPeer(err)
	}
	return nil
}

func (p *Peer) handleBulkPull() error {
	body, err := p.readBody(wire.MsgBulkPull{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	_, err = wire.DeserializeBulkPull(body)
	if err != nil {
		return dropPeer(err)
	}
	return nil
}

func (p *Peer) handleBulkPush() error {
	_, err := p.readBody(0, BodyTimeout)
	return err
}

func (p *Peer) handleBulkPullAccount() error {
	body, err := p.readBody(wire.MsgBulkPullAccount{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	_, err = wire.DeserializeBulkPullAccount(body)
	if err != nil {
		return dropPeer(err)
	}
	return nil
}

func (p *Peer) handleTelemetryReq() error {
	_, err := p.readBody(0, BodyTimeout)
	return err
}

func (p *Peer) handleTelemetryAck() error {
	body, err := p.readBody(wire.MsgTelemetryAck{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	_, err = wire.DeserializeTelemetryAck(body)
	if err != nil {
		return dropPeer(err)
	}
	return nil
}

// handleFrontierReq reads the request, then switches the connection into
// a header-less frontier stream until EOF or the all-zero end sentinel
// is observed.
func (p *Peer) handleFrontierReq() error {
	body, err := p.readBody(wire.MsgFrontierReq{}.Size(), BodyTimeout)
	if err != nil {
		return err
	}
	if _, err := wire.DeserializeFrontierReq(body); err != nil {
		return dropPeer(err)
	}

	for {
		entryBody, err := p.readBody(wire.FrontierEntrySize, BodyTimeout)
		if err != nil {
			return err
		}
		entry, err := wire.DeserializeFrontierEntry(entryBody)
		if err != nil {
			return dropPeer(err)
		}
		if entry.IsEnd() {
			return nil
		}
	}
}
