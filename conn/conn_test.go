package conn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/conn"
	"github.com/janfel/mcproto/endian"
	"github.com/janfel/mcproto/errs"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

// onWire simulates handing a just-encoded outbound cursor to the peer: a
// fresh cursor positioned at the start of the same bytes, the way bytes
// crossing an actual socket would arrive.
func onWire(cur *buffer.Cursor) *buffer.Cursor {
	return buffer.NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
}

func TestConn_New_RejectsUnsupportedVersion(t *testing.T) {
	_, err := conn.New(format.ProtocolVersion(1), conn.Client)
	require.ErrorIs(t, err, errs.ErrUnsupportedProtocolVersion)
}

func TestConn_FullLoginHandshakeV765(t *testing.T) {
	client, err := conn.New(format.V765, conn.Client)
	require.NoError(t, err)
	server, err := conn.New(format.V765, conn.Server)
	require.NoError(t, err)

	require.Equal(t, format.PhaseHandshake, client.Phase())

	handshakeCur, err := client.Send(catalog.Handshake, &message.Handshake{ProtocolVersion: 765, ServerAddr: "h", ServerPort: 1, NextState: 2})
	require.NoError(t, err)
	// next_state=2 selects login on both ends as the handshake crosses.
	require.Equal(t, format.PhaseLogin, client.Phase())

	id, _, err := server.Receive(onWire(handshakeCur))
	require.NoError(t, err)
	require.Equal(t, catalog.Handshake, id)
	require.Equal(t, format.PhaseLogin, server.Phase())

	loginSuccessCur, err := server.Send(catalog.LoginSuccess, &message.LoginSuccess{Username: "Steve"})
	require.NoError(t, err)
	// login_acknowledged hasn't been observed yet: still in login, not config.
	require.Equal(t, format.PhaseLogin, server.Phase())

	_, rec, err := client.Receive(onWire(loginSuccessCur))
	require.NoError(t, err)
	require.Equal(t, format.PhaseLogin, client.Phase())
	require.Equal(t, "Steve", rec.(*message.LoginSuccess).Username)

	ackCur, err := client.Send(catalog.LoginAcknowledged, &message.LoginAcknowledged{})
	require.NoError(t, err)
	require.Equal(t, format.PhaseConfig, client.Phase())

	_, _, err = server.Receive(onWire(ackCur))
	require.NoError(t, err)
	require.Equal(t, format.PhaseConfig, server.Phase())

	finishCur, err := server.Send(catalog.ConfigFinish, &message.ConfigFinish{})
	require.NoError(t, err)
	require.Equal(t, format.PhasePlay, server.Phase())

	_, _, err = client.Receive(onWire(finishCur))
	require.NoError(t, err)
	require.Equal(t, format.PhasePlay, client.Phase())
}

func TestConn_HandshakeNextStateSelectsStatus(t *testing.T) {
	client, err := conn.New(format.V47, conn.Client)
	require.NoError(t, err)

	cur, err := client.Send(catalog.Handshake, &message.Handshake{ProtocolVersion: 47, ServerAddr: "h", ServerPort: 1, NextState: 1})
	require.NoError(t, err)
	defer cur.Free()
	require.Equal(t, format.PhaseStatus, client.Phase())
}

func TestConn_LoginV47SkipsConfigPhase(t *testing.T) {
	server, err := conn.New(format.V47, conn.Server)
	require.NoError(t, err)
	server.EnterLogin()

	_, err = server.Send(catalog.LoginSuccess, &message.LoginSuccess{Username: "Steve"})
	require.NoError(t, err)
	require.Equal(t, format.PhasePlay, server.Phase())
}

func TestConn_DisconnectClosesConnection(t *testing.T) {
	server, err := conn.New(format.V47, conn.Server)
	require.NoError(t, err)
	server.EnterLogin()

	_, err = server.Send(catalog.LoginDisconnect, &message.LoginDisconnect{Reason: "banned"})
	require.NoError(t, err)
	require.Equal(t, format.PhaseClosed, server.Phase())

	_, err = server.Send(catalog.LoginDisconnect, &message.LoginDisconnect{Reason: "again"})
	require.ErrorIs(t, err, errs.ErrClosing)
}

func TestConn_Receive_UnexpectedPacketForPhase(t *testing.T) {
	server, err := conn.New(format.V47, conn.Server)
	require.NoError(t, err)
	// still in handshake phase, where only opcode 0x00 is ever registered
	// for an inbound message; 0x7F resolves to nothing.
	writeCur := buffer.NewCursor(endian.GetBigEndianEngine())
	require.NoError(t, writeCur.WriteVarInt(0x7F))

	_, _, err = server.Receive(onWire(writeCur))
	require.ErrorIs(t, err, errs.ErrUnexpectedPacket)
}
