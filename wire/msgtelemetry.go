// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"github.com/toole-brendan/rai/primitives"
)

// MsgTelemetryReq carries no body. A conforming peer answers with a
// TelemetryAck; this client's handler is a no-op.
type MsgTelemetryReq struct{}

// Size implements Wire.
func (MsgTelemetryReq) Size() int { return 0 }

// Serialize implements Wire.
func (MsgTelemetryReq) Serialize() []byte { return nil }

// DeserializeTelemetryReq decodes a TelemetryReq body (always empty).
func DeserializeTelemetryReq(body []byte) (MsgTelemetryReq, error) {
	if len(body) != 0 {
		return MsgTelemetryReq{}, protocolErrorf(ErrBadLength, "telemetry_req: expected empty body, got %d bytes", len(body))
	}
	return MsgTelemetryReq{}, nil
}

// MsgTelemetryAck is a self-signed snapshot of a node's observable chain
// state, used for diagnostics only in this core.
type MsgTelemetryAck struct {
	NodeID     primitives.Public
	BlockCount uint64
	Signature  primitives.Signature
}

// Size implements Wire.
func (m MsgTelemetryAck) Size() int { return primitives.PublicLength + 8 + primitives.SignatureLength }

// Serialize implements Wire.
func (m MsgTelemetryAck) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	out = append(out, m.NodeID.Bytes()...)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], m.BlockCount)
	out = append(out, buf[:]...)
	out = append(out, m.Signature.Bytes()...)
	return out
}

// SigningPayload returns the bytes covered by Signature: NodeID ||
// BlockCount.
func (m MsgTelemetryAck) SigningPayload() []byte {
	out := make([]byte, 0, primitives.PublicLength+8)
	out = append(out, m.NodeID.Bytes()...)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], m.BlockCount)
	return append(out, buf[:]...)
}

// DeserializeTelemetryAck decodes a TelemetryAck body.
func DeserializeTelemetryAck(body []byte) (MsgTelemetryAck, error) {
	var m MsgTelemetryAck
	if len(body) != m.Size() {
		return MsgTelemetryAck{}, protocolErrorf(ErrBadLength, "telemetry_ack: need %d bytes, got %d", m.Size(), len(body))
	}
	nodeID, err := primitives.PublicFromBytes(body[0:32])
	if err != nil {
		return MsgTelemetryAck{}, protocolErrorf(ErrBadField, "telemetry_ack: node_id: %v", err)
	}
	count := binary.BigEndian.Uint64(body[32:40])
	sig, err := primitives.SignatureFromBytes(body[40:104])
	if err != nil {
		return MsgTelemetryAck{}, protocolErrorf(ErrBadField, "telemetry_ack: signature: %v", err)
	}
	return MsgTelemetryAck{NodeID: nodeID, BlockCount: count, Signature: sig}, nil
}
