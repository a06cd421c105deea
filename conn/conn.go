// Package conn is the connection facade: it pairs a protocol version
// with a mutable phase and drives both sides of the wire through the
// codec package, one framed message at a time.
package conn

import (
	"fmt"

	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/codec"
	"github.com/janfel/mcproto/endian"
	"github.com/janfel/mcproto/errs"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

// Side is which end of the connection this Conn represents. A Conn only
// ever sends in one direction and receives in the other.
type Side uint8

const (
	// Client sends ClientToServer messages and receives ServerToClient ones.
	Client Side = iota
	// Server sends ServerToClient messages and receives ClientToServer ones.
	Server
)

// Conn tracks one peer's half of a handshake-through-play session: the
// protocol version is fixed for the session's lifetime, while Phase
// advances as login/config messages are observed.
type Conn struct {
	version format.ProtocolVersion
	side    Side
	phase   format.Phase
}

// New creates a Conn pinned to version, starting in the handshake phase.
// It rejects unsupported versions up front rather than deferring the
// failure to the first Send/Receive call.
func New(version format.ProtocolVersion, side Side) (*Conn, error) {
	if !version.Supported() {
		return nil, fmt.Errorf("conn: %s: %w", version, errs.ErrUnsupportedProtocolVersion)
	}
	return &Conn{version: version, side: side, phase: format.PhaseHandshake}, nil
}

// Version reports the protocol version this connection is pinned to.
func (c *Conn) Version() format.ProtocolVersion { return c.version }

// Phase reports the current connection lifecycle stage.
func (c *Conn) Phase() format.Phase { return c.phase }

// sendDirection is the direction of messages this side originates.
func (c *Conn) sendDirection() format.Direction {
	if c.side == Client {
		return format.ClientToServer
	}
	return format.ServerToClient
}

// recvDirection is the direction of messages this side accepts.
func (c *Conn) recvDirection() format.Direction {
	if c.side == Client {
		return format.ServerToClient
	}
	return format.ClientToServer
}

// Encode writes id/rec into a fresh cursor as this side's outbound
// message, without applying any phase transition. Send should be
// preferred; Encode exists for callers assembling their own framing
// (length prefix, compression) around the payload.
func (c *Conn) Encode(id catalog.ID, rec message.Record) (*buffer.Cursor, error) {
	if c.phase == format.PhaseClosed {
		return nil, fmt.Errorf("conn: connection closed: %w", errs.ErrClosing)
	}
	cur := buffer.NewCursor(endian.GetBigEndianEngine())
	if err := codec.Encode(cur, id, c.version, rec); err != nil {
		return nil, err
	}
	return cur, nil
}

// Send encodes id/rec and applies whatever phase transition that message
// triggers for this side. The caller owns writing the
// returned cursor's bytes to the wire and calling Free on it afterward.
func (c *Conn) Send(id catalog.ID, rec message.Record) (*buffer.Cursor, error) {
	cur, err := c.Encode(id, rec)
	if err != nil {
		return nil, err
	}
	c.advance(id, rec)
	return cur, nil
}

// Receive reads one opcode-prefixed message from cur addressed to this
// side, resolves it against the current phase, decodes it, and applies
// the resulting phase transition.
func (c *Conn) Receive(cur *buffer.Cursor) (catalog.ID, message.Record, error) {
	if c.phase == format.PhaseClosed {
		return catalog.Unknown, nil, fmt.Errorf("conn: connection closed: %w", errs.ErrClosing)
	}
	opcode, err := cur.ReadVarInt()
	if err != nil {
		return catalog.Unknown, nil, err
	}
	key := catalog.Key{Opcode: opcode, Phase: c.phase, Direction: c.recvDirection(), Version: c.version}
	id := catalog.Resolve(key)
	if id == catalog.Unknown {
		return catalog.Unknown, nil, fmt.Errorf("conn: opcode %#x in phase %s: %w", opcode, c.phase, errs.ErrUnexpectedPacket)
	}
	rec, err := codec.Decode(cur, id, c.version)
	if err != nil {
		return id, nil, err
	}
	c.advance(id, rec)
	return id, rec, nil
}

// advance applies the phase transition (if any) that observing message id
// triggers, regardless of which side originated it: a
// handshake's next_state field picks status or login. On v47, login
// success enters play directly, since v47 has no config phase to confirm
// into. On v765, login success stays in login until login_acknowledged
// (client-sent) confirms the move into config; config_finish then enters
// play. Any disconnect closes the connection from either phase it can
// occur in.
func (c *Conn) advance(id catalog.ID, rec message.Record) {
	switch id {
	case catalog.Handshake:
		if m, ok := rec.(*message.Handshake); ok {
			switch m.NextState {
			case 1:
				c.phase = format.PhaseStatus
			case 2:
				c.phase = format.PhaseLogin
			}
		}
	case catalog.LoginSuccess:
		if c.version != format.V765 {
			c.phase = format.PhasePlay
		}
	case catalog.LoginAcknowledged:
		c.phase = format.PhaseConfig
	case catalog.ConfigFinish:
		c.phase = format.PhasePlay
	case catalog.LoginDisconnect, catalog.ConfigDisconnect, catalog.Disconnect:
		c.phase = format.PhaseClosed
	}
}

// EnterStatus moves the connection into the status phase without a
// handshake crossing this Conn, for callers adopting a session whose
// handshake happened elsewhere (a proxied or resumed transport). The
// normal path is automatic: a handshake's next_state field applies the
// transition on Send and Receive.
func (c *Conn) EnterStatus() { c.phase = format.PhaseStatus }

// EnterLogin moves a still-handshaking connection into the login phase.
func (c *Conn) EnterLogin() { c.phase = format.PhaseLogin }
