// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"

	"github.com/toole-brendan/rai/primitives"
)

// MsgBulkPull requests the chain segment from Start down to End (or to
// the chain's beginning, if End is zero). Handling is a no-op in this
// core; the codec exists so the type and the stream framing are real.
type MsgBulkPull struct {
	Start primitives.Public
	End   primitives.BlockHash
	Count uint32
}

// Size implements Wire.
func (m MsgBulkPull) Size() int { return 32 + 32 + 4 }

// Serialize implements Wire.
func (m MsgBulkPull) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	out = append(out, m.Start.Bytes()...)
	out = append(out, m.End.Bytes()...)
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], m.Count)
	out = append(out, countBuf[:]...)
	return out
}

// DeserializeBulkPull decodes a BulkPull body.
func DeserializeBulkPull(body []byte) (MsgBulkPull, error) {
	var m MsgBulkPull
	if len(body) != m.Size() {
		return MsgBulkPull{}, protocolErrorf(ErrBadLength, "bulk_pull: need %d bytes, got %d", m.Size(), len(body))
	}
	start, err := primitives.PublicFromBytes(body[0:32])
	if err != nil {
		return MsgBulkPull{}, protocolErrorf(ErrBadField, "bulk_pull: start: %v", err)
	}
	end, err := primitives.BlockHashFromBytes(body[32:64])
	if err != nil {
		return MsgBulkPull{}, protocolErrorf(ErrBadField, "bulk_pull: end: %v", err)
	}
	count := binary.LittleEndian.Uint32(body[64:68])
	return MsgBulkPull{Start: start, End: end, Count: count}, nil
}

// MsgBulkPullAccount requests all pending (unreceived send) blocks for an
// account above a minimum balance.
type MsgBulkPullAccount struct {
	Account        primitives.Public
	MinimumBalance primitives.Rai
	Flags          uint8
}

// Size implements Wire.
func (m MsgBulkPullAccount) Size() int { return 32 + primitives.RaiLength + 1 }

// Serialize implements Wire.
func (m MsgBulkPullAccount) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	out = append(out, m.Account.Bytes()...)
	out = append(out, m.MinimumBalance.Bytes()...)
	out = append(out, m.Flags)
	return out
}

// DeserializeBulkPullAccount decodes a BulkPullAccount body.
func DeserializeBulkPullAccount(body []byte) (MsgBulkPullAccount, error) {
	var m MsgBulkPullAccount
	if len(body) != m.Size() {
		return MsgBulkPullAccount{}, protocolErrorf(ErrBadLength, "bulk_pull_account: need %d bytes, got %d", m.Size(), len(body))
	}
	acct, err := primitives.PublicFromBytes(body[0:32])
	if err != nil {
		return MsgBulkPullAccount{}, protocolErrorf(ErrBadField, "bulk_pull_account: account: %v", err)
	}
	bal, err := primitives.RaiFromBytes(body[32:48])
	if err != nil {
		return MsgBulkPullAccount{}, protocolErrorf(ErrBadField, "bulk_pull_account: minimum_balance: %v", err)
	}
	return MsgBulkPullAccount{Account: acct, MinimumBalance: bal, Flags: body[48]}, nil
}

// MsgBulkPush carries no body: it signals the peer to begin an unsolicited
// push of blocks it believes we're missing.
type MsgBulkPush struct{}

// Size implements Wire.
func (MsgBulkPush) Size() int { return 0 }

// Serialize implements Wire.
func (MsgBulkPush) Serialize() []byte { return nil }

// DeserializeBulkPush decodes a BulkPush body (always empty).
func DeserializeBulkPush(body []byte) (MsgBulkPush, error) {
	if len(body) != 0 {
		return MsgBulkPush{}, protocolErrorf(ErrBadLength, "bulk_push: expected empty body, got %d bytes", len(body))
	}
	return MsgBulkPush{}, nil
}

// MsgFrontierReq requests the set of (account, head-hash) frontier pairs
// for accounts modified at or after Age, starting from Start. A
// successful FrontierReq switches the connection into a header-less
// frontier stream until EOF; that framing lives in the peer package, not
// here.
type MsgFrontierReq struct {
	Start primitives.Public
	Age   uint32
	Count uint32
}

// Size implements Wire.
func (m MsgFrontierReq) Size() int { return 32 + 4 + 4 }

// Serialize implements Wire.
func (m MsgFrontierReq) Serialize() []byte {
	out := make([]byte, 0, m.Size())
	out = append(out, m.Start.Bytes()...)
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], m.Age)
	out = append(out, buf[:]...)
	binary.LittleEndian.PutUint32(buf[:], m.Count)
	out = append(out, buf[:]...)
	return out
}

// DeserializeFrontierReq decodes a FrontierReq body.
func DeserializeFrontierReq(body []byte) (MsgFrontierReq, error) {
	var m MsgFrontierReq
	if len(body) != m.Size() {
		return MsgFrontierReq{}, protocolErrorf(ErrBadLength, "frontier_req: need %d bytes, got %d", m.Size(), len(body))
	}
	start, err := primitives.PublicFromBytes(body[0:32])
	if err != nil {
		return MsgFrontierReq{}, protocolErrorf(ErrBadField, "frontier_req: start: %v", err)
	}
	age := binary.LittleEndian.Uint32(body[32:36])
	count := binary.LittleEndian.Uint32(body[36:40])
	return MsgFrontierReq{Start: start, Age: age, Count: count}, nil
}

// FrontierEntry is one record of the header-less frontier stream that
// follows a FrontierReq. A record of all-zero bytes signals the end of
// the stream.
type FrontierEntry struct {
	Account primitives.Public
	Head    primitives.BlockHash
}

// FrontierEntrySize is the fixed size of one frontier stream record.
const FrontierEntrySize = 64

// Serialize encodes one frontier record.
func (e FrontierEntry) Serialize() []byte {
	out := make([]byte, 0, FrontierEntrySize)
	out = append(out, e.Account.Bytes()...)
	out = append(out, e.Head.Bytes()...)
	return out
}

// IsEnd reports whether this is the all-zero end-of-stream sentinel.
func (e FrontierEntry) IsEnd() bool {
	return e.Account.IsZero() && e.Head.IsZero()
}

// DeserializeFrontierEntry decodes one frontier stream record.
func DeserializeFrontierEntry(body []byte) (FrontierEntry, error) {
	if len(body) != FrontierEntrySize {
		return FrontierEntry{}, protocolErrorf(ErrBadLength, "frontier entry: need %d bytes, got %d", FrontierEntrySize, len(body))
	}
	acct, err := primitives.PublicFromBytes(body[0:32])
	if err != nil {
		return FrontierEntry{}, protocolErrorf(ErrBadField, "frontier entry: account: %v", err)
	}
	head, err := primitives.BlockHashFromBytes(body[32:64])
	if err != nil {
		return FrontierEntry{}, protocolErrorf(ErrBadField, "frontier entry: head: %v", err)
	}
	return FrontierEntry{Account: acct, Head: head}, nil
}
