// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/toole-brendan/rai/blocks"
	"github.com/toole-brendan/rai/primitives"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader(NetworkTest, MessagePublish, Extensions(0).WithBlockType(uint8(blocks.BlockTypeState)))
	encoded := h.Serialize()
	require.Len(t, encoded, HeaderSize)
	require.Equal(t, Magic, encoded[0])

	decoded, err := DeserializeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, h, decoded)
}

func TestDeserializeHeaderRejectsBadMagic(t *testing.T) {
	h := NewHeader(NetworkLive, MessageKeepalive, 0)
	encoded := h.Serialize()
	encoded[0] = 'Q'
	_, err := DeserializeHeader(encoded)
	require.Error(t, err)
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrBadMagic, pe.ErrorCode)
}

func TestDeserializeHeaderRejectsBadLength(t *testing.T) {
	_, err := DeserializeHeader([]byte{Magic, 'X', 1, 1, 1})
	require.Error(t, err)
}

func TestExtensionsBlockTypeBitsRoundTrip(t *testing.T) {
	for _, code := range []uint8{1, 2, 3, 4, 5, 6, 7} {
		ext := Extensions(0).WithBlockType(code)
		require.Equal(t, code, ext.BlockType())
	}
}

func TestExtensionsHandshakeFlags(t *testing.T) {
	ext := ExtHandshakeQuery | ExtHandshakeResponse
	require.True(t, ext.HasQuery())
	require.True(t, ext.HasResponse())

	ext2 := Extensions(0).WithBlockType(uint8(blocks.BlockTypeSend)) | ExtHandshakeQuery
	require.True(t, ext2.HasQuery())
	require.False(t, ext2.HasResponse())
	require.Equal(t, uint8(blocks.BlockTypeSend), ext2.BlockType())
}

func TestKeepaliveRoundTrip(t *testing.T) {
	var m MsgKeepalive
	m.Peers[0] = net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 7075}
	m.Peers[1] = net.TCPAddr{IP: net.ParseIP("::1"), Port: 7076}

	encoded := m.Serialize()
	require.Len(t, encoded, m.Size())

	decoded, err := DeserializeKeepalive(encoded)
	require.NoError(t, err)
	require.True(t, decoded.Peers[0].IP.Equal(m.Peers[0].IP))
	require.Equal(t, m.Peers[0].Port, decoded.Peers[0].Port)
}

func randPublic(seedByte byte) primitives.Public {
	var raw [primitives.PublicLength]byte
	for i := range raw {
		raw[i] = seedByte
	}
	p, _ := primitives.PublicFromBytes(raw[:])
	return p
}

func randHash(seedByte byte) primitives.BlockHash {
	var raw [primitives.BlockHashLength]byte
	for i := range raw {
		raw[i] = seedByte
	}
	h, _ := primitives.BlockHashFromBytes(raw[:])
	return h
}

func TestPublishRoundTripAllBlockTypes(t *testing.T) {
	cases := []blocks.BlockHolder{
		blocks.NewSendHolder(blocks.SendBlock{Previous: randHash(1), Destination: randPublic(2), Balance: primitives.RaiFromUint64(5)}),
		blocks.NewReceiveHolder(blocks.ReceiveBlock{Previous: randHash(3), Source: randHash(4)}),
		blocks.NewOpenHolder(blocks.OpenBlock{Source: randHash(5), Representative: randPublic(6), Account: randPublic(7)}),
		blocks.NewChangeHolder(blocks.ChangeBlock{Previous: randHash(8), Representative: randPublic(9)}),
		blocks.NewStateHolder(blocks.StateBlock{
			Account:        randPublic(10),
			Previous:       blocks.PreviousOpen(),
			Representative: randPublic(11),
			Balance:        primitives.RaiFromUint64(42),
			Link:           blocks.LinkNothingValue(),
		}),
	}

	for _, holder := range cases {
		msg := MsgPublish{Holder: holder, Signature: primitives.Signature{}, Work: primitives.ZeroWork()}
		ext := Extensions(0).WithBlockType(uint8(holder.Kind()))
		encoded := msg.Serialize()

		wantSize, err := PublishSize(ext)
		require.NoError(t, err)
		require.Len(t, encoded, wantSize)
		require.Equal(t, msg.Size(), wantSize)

		decoded, err := DeserializePublish(ext.BlockType(), encoded)
		require.NoError(t, err)
		require.Equal(t, holder.Kind(), decoded.Holder.Kind())
		require.Equal(t, holder.Block().Hash(), decoded.Holder.Block().Hash())
	}
}

func TestPublishRejectsTruncatedBody(t *testing.T) {
	holder := blocks.NewStateHolder(blocks.StateBlock{
		Account:  randPublic(1),
		Previous: blocks.PreviousOpen(),
		Balance:  primitives.ZeroRai(),
		Link:     blocks.LinkNothingValue(),
	})
	msg := MsgPublish{Holder: holder, Work: primitives.ZeroWork()}
	encoded := msg.Serialize()

	_, err := DeserializePublish(uint8(blocks.BlockTypeState), encoded[:len(encoded)-1])
	require.Error(t, err)
}

func TestConfirmReqRoundTrip(t *testing.T) {
	m := MsgConfirmReq{Hash: randHash(1), Root: randHash(2)}
	encoded := m.Serialize()
	require.Len(t, encoded, m.Size())

	decoded, err := DeserializeConfirmReq(encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestConfirmAckRoundTrip(t *testing.T) {
	m := MsgConfirmAck{Account: randPublic(1), Signature: primitives.Signature{}, Sequence: 99, Hash: randHash(2)}
	encoded := m.Serialize()
	require.Len(t, encoded, m.Size())

	decoded, err := DeserializeConfirmAck(encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestBulkPullRoundTrip(t *testing.T) {
	m := MsgBulkPull{Start: randPublic(1), End: randHash(2), Count: 500}
	encoded := m.Serialize()
	decoded, err := DeserializeBulkPull(encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestBulkPushEmptyBody(t *testing.T) {
	m := MsgBulkPush{}
	require.Empty(t, m.Serialize())
	_, err := DeserializeBulkPush(nil)
	require.NoError(t, err)
	_, err = DeserializeBulkPush([]byte{1})
	require.Error(t, err)
}

func TestFrontierReqRoundTrip(t *testing.T) {
	m := MsgFrontierReq{Start: randPublic(1), Age: 10, Count: 20}
	encoded := m.Serialize()
	decoded, err := DeserializeFrontierReq(encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestFrontierEntryEndSentinel(t *testing.T) {
	var end FrontierEntry
	require.True(t, end.IsEnd())

	entry := FrontierEntry{Account: randPublic(1), Head: randHash(2)}
	require.False(t, entry.IsEnd())

	decoded, err := DeserializeFrontierEntry(entry.Serialize())
	require.NoError(t, err)
	require.Equal(t, entry, decoded)
}

func TestNodeIdHandshakeQueryOnly(t *testing.T) {
	m := MsgNodeIdHandshake{HasQuery: true, Cookie: primitives.Cookie{1, 2, 3}}
	encoded := m.Serialize()
	require.Equal(t, primitives.CookieLength, m.Size())

	decoded, err := DeserializeNodeIdHandshake(true, false, encoded)
	require.NoError(t, err)
	require.Equal(t, m.Cookie, decoded.Cookie)
	require.False(t, decoded.HasResponse)
}

func TestNodeIdHandshakeResponseOnly(t *testing.T) {
	m := MsgNodeIdHandshake{HasResponse: true, Public: randPublic(7), Signature: primitives.Signature{9}}
	encoded := m.Serialize()
	require.Equal(t, primitives.PublicLength+primitives.SignatureLength, m.Size())

	decoded, err := DeserializeNodeIdHandshake(false, true, encoded)
	require.NoError(t, err)
	require.Equal(t, m.Public, decoded.Public)
	require.Equal(t, m.Signature, decoded.Signature)
}

func TestNodeIdHandshakePiggybackedQueryAndResponse(t *testing.T) {
	m := MsgNodeIdHandshake{
		HasQuery:    true,
		Cookie:      primitives.Cookie{1},
		HasResponse: true,
		Public:      randPublic(2),
		Signature:   primitives.Signature{3},
	}
	encoded := m.Serialize()
	require.Equal(t, HandshakeSize(ExtHandshakeQuery|ExtHandshakeResponse), len(encoded))

	decoded, err := DeserializeNodeIdHandshake(true, true, encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}

func TestBulkPullAccountRoundTrip(t *testing.T) {
	m := MsgBulkPullAccount{Account: randPublic(1), MinimumBalance: primitives.RaiFromUint64(1000), Flags: 1}
	encoded := m.Serialize()
	decoded, err := DeserializeBulkPullAccount(encoded)
	require.NoError(t, err)
	require.Equal(t, m.Account, decoded.Account)
	require.Equal(t, 0, m.MinimumBalance.Cmp(decoded.MinimumBalance))
	require.Equal(t, m.Flags, decoded.Flags)
}

func TestTelemetryReqEmptyBody(t *testing.T) {
	_, err := DeserializeTelemetryReq(nil)
	require.NoError(t, err)
	_, err = DeserializeTelemetryReq([]byte{0})
	require.Error(t, err)
}

func TestTelemetryAckRoundTrip(t *testing.T) {
	m := MsgTelemetryAck{NodeID: randPublic(1), BlockCount: 12345, Signature: primitives.Signature{4}}
	encoded := m.Serialize()
	decoded, err := DeserializeTelemetryAck(encoded)
	require.NoError(t, err)
	require.Equal(t, m, decoded)
}
