// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the framed binary node-to-node protocol: the
// fixed 8-byte header, the MessageType enum, the extensions bitfield, and
// a Wire contract (Serialize/Deserialize/Size) each message type
// satisfies.
package wire

import (
	"fmt"
)

// ProtocolVersion is the latest protocol version this package supports.
const ProtocolVersion uint8 = 18

// Magic is the fixed first byte of every header.
const Magic byte = 'R'

// Network identifies which network a message belongs to.
type Network byte

const (
	NetworkTest Network = 'X'
	NetworkBeta Network = 'B'
	NetworkLive Network = 'C'
)

var networkStrings = map[Network]string{
	NetworkTest: "test",
	NetworkBeta: "beta",
	NetworkLive: "live",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("unknown network (0x%02x)", byte(n))
}

// MessageType identifies the body that follows a Header.
type MessageType uint8

const (
	MessageInvalid         MessageType = 0
	MessageKeepalive       MessageType = 2
	MessagePublish         MessageType = 3
	MessageConfirmReq      MessageType = 4
	MessageConfirmAck      MessageType = 5
	MessageBulkPull        MessageType = 6
	MessageBulkPush        MessageType = 7
	MessageFrontierReq     MessageType = 8
	MessageNodeIdHandshake MessageType = 10
	MessageBulkPullAccount MessageType = 11
	MessageTelemetryReq    MessageType = 12
	MessageTelemetryAck    MessageType = 13
)

var messageTypeStrings = map[MessageType]string{
	MessageInvalid:         "Invalid",
	MessageKeepalive:       "Keepalive",
	MessagePublish:         "Publish",
	MessageConfirmReq:      "ConfirmReq",
	MessageConfirmAck:      "ConfirmAck",
	MessageBulkPull:        "BulkPull",
	MessageBulkPush:        "BulkPush",
	MessageFrontierReq:     "FrontierReq",
	MessageNodeIdHandshake: "NodeIdHandshake",
	MessageBulkPullAccount: "BulkPullAccount",
	MessageTelemetryReq:    "TelemetryReq",
	MessageTelemetryAck:    "TelemetryAck",
}

// String returns the MessageType in human-readable form.
func (t MessageType) String() string {
	if s, ok := messageTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown MessageType (%d)", uint8(t))
}

// Extensions is the 16-bit little-endian bitfield carried in bytes 6-7 of
// the header. Bits not named below are reserved and must be preserved
// verbatim on decode/re-encode round-trips.
type Extensions uint16

const (
	// ExtHandshakeQuery is bit 0: this NodeIdHandshake carries a query.
	ExtHandshakeQuery Extensions = 1 << 0
	// ExtHandshakeResponse is bit 1: this NodeIdHandshake carries a response.
	ExtHandshakeResponse Extensions = 1 << 1

	extBlockTypeShift = 8
	extBlockTypeMask  = Extensions(0xf) << extBlockTypeShift
)

// HasQuery reports whether the handshake-query bit is set.
func (e Extensions) HasQuery() bool { return e&ExtHandshakeQuery != 0 }

// HasResponse reports whether the handshake-response bit is set.
func (e Extensions) HasResponse() bool { return e&ExtHandshakeResponse != 0 }

// WithBlockType returns e with bits 8..11 set to the given block type code.
func (e Extensions) WithBlockType(code uint8) Extensions {
	return (e &^ extBlockTypeMask) | (Extensions(code)<<extBlockTypeShift)&extBlockTypeMask
}

// BlockType extracts bits 8..11 as a raw block type code.
func (e Extensions) BlockType() uint8 {
	return uint8((e & extBlockTypeMask) >> extBlockTypeShift)
}

// HeaderSize is the fixed size in bytes of every message header.
const HeaderSize = 8

// Header is the 8-byte frame preceding every message body.
type Header struct {
	Network      Network
	VersionMax   uint8
	VersionUsing uint8
	VersionMin   uint8
	MessageType  MessageType
	Extensions   Extensions
}

// NewHeader builds a header for the given message type and network,
// using ProtocolVersion for all three version fields.
func NewHeader(network Network, msgType MessageType, ext Extensions) Header {
	return Header{
		Network:      network,
		VersionMax:   ProtocolVersion,
		VersionUsing: ProtocolVersion,
		VersionMin:   ProtocolVersion,
		MessageType:  msgType,
		Extensions:   ext,
	}
}

// Serialize implements Wire.
func (h Header) Serialize() []byte {
	out := make([]byte, HeaderSize)
	out[0] = Magic
	out[1] = byte(h.Network)
	out[2] = h.VersionMax
	out[3] = h.VersionUsing
	out[4] = h.VersionMin
	out[5] = byte(h.MessageType)
	out[6] = byte(h.Extensions)
	out[7] = byte(h.Extensions >> 8)
	return out
}

// Size implements Wire.
func (h Header) Size() int { return HeaderSize }

// DeserializeHeader decodes an 8-byte header. It returns a
// *ProtocolError wrapping ErrBadMagic if the first byte isn't Magic.
func DeserializeHeader(b []byte) (Header, error) {
	if len(b) != HeaderSize {
		return Header{}, protocolErrorf(ErrBadLength, "header: need %d bytes, got %d", HeaderSize, len(b))
	}
	if b[0] != Magic {
		return Header{}, protocolErrorf(ErrBadMagic, "header: bad magic byte 0x%02x", b[0])
	}
	return Header{
		Network:      Network(b[1]),
		VersionMax:   b[2],
		VersionUsing: b[3],
		VersionMin:   b[4],
		MessageType:  MessageType(b[5]),
		Extensions:   Extensions(b[6]) | Extensions(b[7])<<8,
	}, nil
}
