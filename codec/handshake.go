package codec

import (
	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

func init() {
	register(catalog.Handshake, format.PhaseHandshake, format.ClientToServer,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.Handshake)
			if err := cur.WriteVarInt(m.ProtocolVersion); err != nil {
				return err
			}
			if err := cur.WriteString(m.ServerAddr); err != nil {
				return err
			}
			if err := cur.WriteU16(m.ServerPort); err != nil {
				return err
			}
			return cur.WriteVarInt(m.NextState)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.Handshake{}
			var err error
			if m.ProtocolVersion, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			if m.ServerAddr, err = cur.ReadString(); err != nil {
				return m, err
			}
			if m.ServerPort, err = cur.ReadU16(); err != nil {
				return m, err
			}
			if m.NextState, err = cur.ReadVarInt(); err != nil {
				return m, err
			}
			return m, nil
		},
	)
}
