// Package codec implements the per-message encoders and decoders:
// for every (logical id, protocol version) pair the catalog defines,
// a function that writes a full frame from a typed record, and one
// that reads a typed record back from a frame.
package codec

import (
	"fmt"

	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/errs"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

// EncodeFunc writes a record's fields (not its opcode) in version order.
type EncodeFunc func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error

// DecodeFunc reads a record's fields (cursor positioned past the
// opcode) in version order and returns a freshly allocated record.
type DecodeFunc func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error)

type entry struct {
	phase     format.Phase
	direction format.Direction
	encode    EncodeFunc
	decode    DecodeFunc
}

var registry = make(map[catalog.ID]entry)

func register(id catalog.ID, phase format.Phase, direction format.Direction, enc EncodeFunc, dec DecodeFunc) {
	registry[id] = entry{phase: phase, direction: direction, encode: enc, decode: dec}
}

// Encode writes the opcode for (id, version) followed by rec's fields
// onto cur. On failure it frees cur and returns the error unencoded
// so the send is aborted and the cursor never reaches the transport.
func Encode(cur *buffer.Cursor, id catalog.ID, version format.ProtocolVersion, rec message.Record) error {
	e, ok := registry[id]
	if !ok {
		cur.Free()
		return fmt.Errorf("codec: no encoder for %s: %w", id, errs.ErrUnsupportedProtocolVersion)
	}
	opcode, ok := catalog.OpcodeFor(id, e.phase, e.direction, version)
	if !ok {
		cur.Free()
		return fmt.Errorf("codec: %s undefined on %s: %w", id, version, errs.ErrUnsupportedProtocolVersion)
	}
	if err := cur.WriteVarInt(opcode); err != nil {
		cur.Free()
		return err
	}
	if err := e.encode(cur, version, rec); err != nil {
		cur.Free()
		return err
	}
	return nil
}

// Decode reads id's fields off cur, which must be positioned just past
// the opcode. It enforces the frame under-run check: after
// the decoder returns, every byte of the frame must have been consumed.
func Decode(cur *buffer.Cursor, id catalog.ID, version format.ProtocolVersion) (message.Record, error) {
	e, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("codec: no decoder for %s: %w", id, errs.ErrUnknownPacket)
	}
	rec, err := e.decode(cur, version)
	if err != nil {
		if rec != nil {
			rec.Free()
		}
		return nil, err
	}
	if !cur.AtEnd() {
		rec.Free()
		return nil, fmt.Errorf("codec: %s left %d bytes unread: %w", id, cur.Remaining(), errs.ErrBufferOverflow)
	}
	return rec, nil
}
