// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/toole-brendan/rai/primitives"

// MsgNodeIdHandshake carries the query and/or response half of the
// cookie/signature handshake. Which half is present is
// named by the header's Extensions (ExtHandshakeQuery / ExtHandshakeResponse);
// both may be set at once when a peer piggybacks its own query onto a
// response.
type MsgNodeIdHandshake struct {
	HasQuery    bool
	Cookie      primitives.Cookie
	HasResponse bool
	Public      primitives.Public
	Signature   primitives.Signature
}

// Size implements Wire.
func (m MsgNodeIdHandshake) Size() int {
	n := 0
	if m.HasQuery {
		n += primitives.CookieLength
	}
	if m.HasResponse {
		n += primitives.PublicLength + primitives.SignatureLength
	}
	return n
}

// Serialize implements Wire.
func (m MsgNodeIdHandshake) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	if m.HasQuery {
		out = append(out, m.Cookie.Bytes()...)
	}
	if m.HasResponse {
		out = append(out, m.Public.Bytes()...)
		out = append(out, m.Signature.Bytes()...)
	}
	return out
}

// HandshakeSize returns the expected body size given the header's
// extensions.
func HandshakeSize(ext Extensions) int {
	n := 0
	if ext.HasQuery() {
		n += primitives.CookieLength
	}
	if ext.HasResponse() {
		n += primitives.PublicLength + primitives.SignatureLength
	}
	return n
}

// DeserializeNodeIdHandshake decodes a NodeIdHandshake body. hasQuery and
// hasResponse come from the header's Extensions.
func DeserializeNodeIdHandshake(hasQuery, hasResponse bool, body []byte) (MsgNodeIdHandshake, error) {
	m := MsgNodeIdHandshake{HasQuery: hasQuery, HasResponse: hasResponse}
	want := m.Size()
	if len(body) != want {
		return MsgNodeIdHandshake{}, protocolErrorf(ErrBadLength, "node_id_handshake: need %d bytes, got %d", want, len(body))
	}
	off := 0
	if hasQuery {
		cookie, err := primitives.CookieFromBytes(body[off : off+primitives.CookieLength])
		if err != nil {
			return MsgNodeIdHandshake{}, protocolErrorf(ErrBadField, "node_id_handshake: cookie: %v", err)
		}
		m.Cookie = cookie
		off += primitives.CookieLength
	}
	if hasResponse {
		pub, err := primitives.PublicFromBytes(body[off : off+primitives.PublicLength])
		if err != nil {
			return MsgNodeIdHandshake{}, protocolErrorf(ErrBadField, "node_id_handshake: public: %v", err)
		}
		off += primitives.PublicLength
		sig, err := primitives.SignatureFromBytes(body[off : off+primitives.SignatureLength])
		if err != nil {
			return MsgNodeIdHandshake{}, protocolErrorf(ErrBadField, "node_id_handshake: signature: %v", err)
		}
		m.Public = pub
		m.Signature = sig
	}
	return m, nil
}
