// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/toole-brendan/rai/blocks"
	"github.com/toole-brendan/rai/primitives"
)

// blockBodySize returns the fixed wire size of a block body for the given
// block type code, not counting the trailing signature/work.
func blockBodySize(code uint8) (int, error) {
	switch blocks.BlockType(code) {
	case blocks.BlockTypeSend:
		return 32 + 32 + primitives.RaiLength, nil // previous, destination, balance
	case blocks.BlockTypeReceive:
		return 32 + 32, nil // previous, source
	case blocks.BlockTypeOpen:
		return 32 + 32 + 32, nil // source, representative, account
	case blocks.BlockTypeChange:
		return 32 + 32, nil // previous, representative
	case blocks.BlockTypeState:
		return 32 + 32 + 32 + primitives.RaiLength + 32, nil // account, previous, rep, balance, link
	default:
		return 0, protocolErrorf(ErrBadField, "publish: unsupported block type code %d", code)
	}
}

func serializeBlockBody(b blocks.Block) []byte {
	switch v := b.(type) {
	case blocks.SendBlock:
		out := make([]byte, 0, 96)
		out = append(out, v.Previous.Bytes()...)
		out = append(out, v.Destination.Bytes()...)
		out = append(out, v.Balance.Bytes()...)
		return out
	case blocks.ReceiveBlock:
		out := make([]byte, 0, 64)
		out = append(out, v.Previous.Bytes()...)
		out = append(out, v.Source.Bytes()...)
		return out
	case blocks.OpenBlock:
		out := make([]byte, 0, 96)
		out = append(out, v.Source.Bytes()...)
		out = append(out, v.Representative.Bytes()...)
		out = append(out, v.Account.Bytes()...)
		return out
	case blocks.ChangeBlock:
		out := make([]byte, 0, 64)
		out = append(out, v.Previous.Bytes()...)
		out = append(out, v.Representative.Bytes()...)
		return out
	case blocks.StateBlock:
		out := make([]byte, 0, 160)
		out = append(out, v.Account.Bytes()...)
		out = append(out, v.Previous.Bytes()...)
		out = append(out, v.Representative.Bytes()...)
		out = append(out, v.Balance.Bytes()...)
		out = append(out, v.Link.Bytes()...)
		return out
	default:
		return nil
	}
}

func deserializeBlockBody(code uint8, body []byte) (blocks.BlockHolder, error) {
	switch blocks.BlockType(code) {
	case blocks.BlockTypeSend:
		prev, err := primitives.BlockHashFromBytes(body[0:32])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: send.previous: %v", err)
		}
		dest, err := primitives.PublicFromBytes(body[32:64])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: send.destination: %v", err)
		}
		bal, err := primitives.RaiFromBytes(body[64:80])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: send.balance: %v", err)
		}
		return blocks.NewSendHolder(blocks.SendBlock{Previous: prev, Destination: dest, Balance: bal}), nil

	case blocks.BlockTypeReceive:
		prev, err := primitives.BlockHashFromBytes(body[0:32])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: receive.previous: %v", err)
		}
		src, err := primitives.BlockHashFromBytes(body[32:64])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: receive.source: %v", err)
		}
		return blocks.NewReceiveHolder(blocks.ReceiveBlock{Previous: prev, Source: src}), nil

	case blocks.BlockTypeOpen:
		src, err := primitives.BlockHashFromBytes(body[0:32])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: open.source: %v", err)
		}
		rep, err := primitives.PublicFromBytes(body[32:64])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: open.representative: %v", err)
		}
		acct, err := primitives.PublicFromBytes(body[64:96])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: open.account: %v", err)
		}
		return blocks.NewOpenHolder(blocks.OpenBlock{Source: src, Representative: rep, Account: acct}), nil

	case blocks.BlockTypeChange:
		prev, err := primitives.BlockHashFromBytes(body[0:32])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: change.previous: %v", err)
		}
		rep, err := primitives.PublicFromBytes(body[32:64])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: change.representative: %v", err)
		}
		return blocks.NewChangeHolder(blocks.ChangeBlock{Previous: prev, Representative: rep}), nil

	case blocks.BlockTypeState:
		acct, err := primitives.PublicFromBytes(body[0:32])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: state.account: %v", err)
		}
		var prevRaw [32]byte
		copy(prevRaw[:], body[32:64])
		rep, err := primitives.PublicFromBytes(body[64:96])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: state.representative: %v", err)
		}
		bal, err := primitives.RaiFromBytes(body[96:112])
		if err != nil {
			return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: state.balance: %v", err)
		}
		var linkRaw [32]byte
		copy(linkRaw[:], body[112:144])
		sb := blocks.StateBlock{
			Account:        acct,
			Previous:       blocks.PreviousFromBytes(prevRaw),
			Representative: rep,
			Balance:        bal,
			Link:           blocks.LinkUnsureValue(linkRaw),
		}
		return blocks.NewStateHolder(sb), nil

	default:
		return blocks.BlockHolder{}, protocolErrorf(ErrBadField, "publish: unsupported block type code %d", code)
	}
}

// MsgPublish carries a full block (body, signature, work) for broadcast
// and ledger admission.
type MsgPublish struct {
	Holder    blocks.BlockHolder
	Signature primitives.Signature
	Work      primitives.Work
}

// Size implements Wire. It depends on the block type, so callers must
// know the header's Extensions.BlockType() before reading the body.
func (m MsgPublish) Size() int {
	n, _ := blockBodySize(uint8(m.Holder.Kind()))
	return n + primitives.SignatureLength + primitives.WorkLength
}

// Serialize implements Wire.
func (m MsgPublish) Serialize() []byte {
	out := serializeBlockBody(m.Holder.Block())
	out = append(out, m.Signature.Bytes()...)
	out = append(out, m.Work.Bytes()...)
	return out
}

// PublishSize returns the expected body size for a Publish message given
// the header's extensions.
func PublishSize(ext Extensions) (int, error) {
	n, err := blockBodySize(ext.BlockType())
	if err != nil {
		return 0, err
	}
	return n + primitives.SignatureLength + primitives.WorkLength, nil
}

// DeserializePublish decodes a Publish body. blockTypeCode comes from the
// header's Extensions.BlockType().
func DeserializePublish(blockTypeCode uint8, body []byte) (MsgPublish, error) {
	blockSize, err := blockBodySize(blockTypeCode)
	if err != nil {
		return MsgPublish{}, err
	}
	want := blockSize + primitives.SignatureLength + primitives.WorkLength
	if len(body) != want {
		return MsgPublish{}, protocolErrorf(ErrBadLength, "publish: need %d bytes, got %d", want, len(body))
	}
	holder, err := deserializeBlockBody(blockTypeCode, body[:blockSize])
	if err != nil {
		return MsgPublish{}, err
	}
	sig, err := primitives.SignatureFromBytes(body[blockSize : blockSize+primitives.SignatureLength])
	if err != nil {
		return MsgPublish{}, protocolErrorf(ErrBadField, "publish: signature: %v", err)
	}
	w, err := primitives.WorkFromBytes(body[blockSize+primitives.SignatureLength:])
	if err != nil {
		return MsgPublish{}, protocolErrorf(ErrBadField, "publish: work: %v", err)
	}
	return MsgPublish{Holder: holder, Signature: sig, Work: w}, nil
}
