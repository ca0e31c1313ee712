// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"net"
)

// KeepaliveEntries is the fixed number of peer addresses carried by a
// Keepalive message, mirroring the peer-exchange gossip payload size used
// by the wider family of node-to-node protocols this core descends from.
const KeepaliveEntries = 8

// peerEntrySize is 16 bytes of IPv6 (v4 addresses are v4-in-v6 mapped)
// plus a 2-byte little-endian port.
const peerEntrySize = 18

// MsgKeepalive carries a fixed-size list of peer addresses for gossip.
// Unused slots are the zero IP/port and are skipped by receivers.
type MsgKeepalive struct {
	Peers [KeepaliveEntries]net.TCPAddr
}

// Size implements Wire.
func (m MsgKeepalive) Size() int { return KeepaliveEntries * peerEntrySize }

// Serialize implements Wire.
func (m MsgKeepalive) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	for _, addr := range m.Peers {
		ip16 := addr.IP.To16()
		if ip16 == nil {
			ip16 = make([]byte, 16)
		}
		out = append(out, ip16...)
		var portBuf [2]byte
		binary.LittleEndian.PutUint16(portBuf[:], uint16(addr.Port))
		out = append(out, portBuf[:]...)
	}
	return out
}

// DeserializeKeepalive decodes a Keepalive body.
func DeserializeKeepalive(body []byte) (MsgKeepalive, error) {
	var m MsgKeepalive
	if len(body) != m.Size() {
		return MsgKeepalive{}, protocolErrorf(ErrBadLength, "keepalive: need %d bytes, got %d", m.Size(), len(body))
	}
	for i := 0; i < KeepaliveEntries; i++ {
		off := i * peerEntrySize
		ip := make(net.IP, 16)
		copy(ip, body[off:off+16])
		port := binary.LittleEndian.Uint16(body[off+16 : off+18])
		m.Peers[i] = net.TCPAddr{IP: ip, Port: int(port)}
	}
	return m, nil
}
