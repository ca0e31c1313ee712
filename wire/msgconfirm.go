// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/toole-brendan/rai/primitives"

// MsgConfirmReq asks a peer to vote on (or otherwise confirm) a block
// identified by hash, rooted at the account chain position named by Root.
type MsgConfirmReq struct {
	Hash primitives.BlockHash
	Root primitives.BlockHash
}

// Size implements Wire.
func (m MsgConfirmReq) Size() int { return 64 }

// Serialize implements Wire.
func (m MsgConfirmReq) Serialize() []byte {
	out := make([]byte, 0, 64)
	out = append(out, m.Hash.Bytes()...)
	out = append(out, m.Root.Bytes()...)
	return out
}

// DeserializeConfirmReq decodes a ConfirmReq body.
func DeserializeConfirmReq(body []byte) (MsgConfirmReq, error) {
	if len(body) != 64 {
		return MsgConfirmReq{}, protocolErrorf(ErrBadLength, "confirm_req: need 64 bytes, got %d", len(body))
	}
	hash, err := primitives.BlockHashFromBytes(body[0:32])
	if err != nil {
		return MsgConfirmReq{}, protocolErrorf(ErrBadField, "confirm_req: hash: %v", err)
	}
	root, err := primitives.BlockHashFromBytes(body[32:64])
	if err != nil {
		return MsgConfirmReq{}, protocolErrorf(ErrBadField, "confirm_req: root: %v", err)
	}
	return MsgConfirmReq{Hash: hash, Root: root}, nil
}

// MsgConfirmAck is a single-hash vote: an account's representative
// attesting to a block hash at a given vote sequence number. The handler
// for this message is a no-op in this core (voting/consensus is out of
// scope), but it must still decode fully so the stream never desyncs.
type MsgConfirmAck struct {
	Account   primitives.Public
	Signature primitives.Signature
	Sequence  uint64
	Hash      primitives.BlockHash
}

// Size implements Wire.
func (m MsgConfirmAck) Size() int { return 32 + 64 + 8 + 32 }

// Serialize implements Wire.
func (m MsgConfirmAck) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	out = append(out, m.Account.Bytes()...)
	out = append(out, m.Signature.Bytes()...)
	var seqBuf [8]byte
	putUint64BE(seqBuf[:], m.Sequence)
	out = append(out, seqBuf[:]...)
	out = append(out, m.Hash.Bytes()...)
	return out
}

// DeserializeConfirmAck decodes a ConfirmAck body.
func DeserializeConfirmAck(body []byte) (MsgConfirmAck, error) {
	var m MsgConfirmAck
	if len(body) != m.Size() {
		return MsgConfirmAck{}, protocolErrorf(ErrBadLength, "confirm_ack: need %d bytes, got %d", m.Size(), len(body))
	}
	acct, err := primitives.PublicFromBytes(body[0:32])
	if err != nil {
		return MsgConfirmAck{}, protocolErrorf(ErrBadField, "confirm_ack: account: %v", err)
	}
	sig, err := primitives.SignatureFromBytes(body[32:96])
	if err != nil {
		return MsgConfirmAck{}, protocolErrorf(ErrBadField, "confirm_ack: signature: %v", err)
	}
	seq := getUint64BE(body[96:104])
	hash, err := primitives.BlockHashFromBytes(body[104:136])
	if err != nil {
		return MsgConfirmAck{}, protocolErrorf(ErrBadField, "confirm_ack: hash: %v", err)
	}
	return MsgConfirmAck{Account: acct, Signature: sig, Sequence: seq, Hash: hash}, nil
}

func putUint64BE(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func getUint64BE(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}
