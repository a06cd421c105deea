package codec

import (
	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

func init() {
	// Login start: v765 emits name then id; v47 emits only the name.
	register(catalog.LoginStart, format.PhaseLogin, format.ClientToServer,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.LoginStart)
			if err := cur.WriteString(m.Name); err != nil {
				return err
			}
			if version == format.V765 {
				return cur.WriteUUIDHalves(m.PlayerID)
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.LoginStart{}
			var err error
			if m.Name, err = cur.ReadString(); err != nil {
				return m, err
			}
			if version == format.V765 {
				if m.PlayerID, err = cur.ReadUUIDHalves(); err != nil {
					return m, err
				}
				m.HasID = true
			}
			return m, nil
		},
	)

	register(catalog.LoginDisconnect, format.PhaseLogin, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteString(rec.(*message.LoginDisconnect).Reason)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.LoginDisconnect{}
			var err error
			m.Reason, err = cur.ReadString()
			return m, err
		},
	)

	// Login success: v765 emits the id as two halves followed by a
	// property count; v47 emits the id as text with no property count.
	register(catalog.LoginSuccess, format.PhaseLogin, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.LoginSuccess)
			if version == format.V765 {
				if err := cur.WriteUUIDHalves(m.PlayerID); err != nil {
					return err
				}
				if err := cur.WriteString(m.Username); err != nil {
					return err
				}
				return cur.WriteVarInt(m.PropertyCount)
			}
			if err := cur.WriteString(m.PlayerID.String()); err != nil {
				return err
			}
			return cur.WriteString(m.Username)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.LoginSuccess{}
			var err error
			if version == format.V765 {
				if m.PlayerID, err = cur.ReadUUIDHalves(); err != nil {
					return m, err
				}
				if m.Username, err = cur.ReadString(); err != nil {
					return m, err
				}
				m.PropertyCount, err = cur.ReadVarInt()
				return m, err
			}
			var idStr string
			if idStr, err = cur.ReadString(); err != nil {
				return m, err
			}
			if m.PlayerID, err = buffer.ParseUUID(idStr); err != nil {
				return m, err
			}
			m.Username, err = cur.ReadString()
			return m, err
		},
	)

	register(catalog.LoginSetCompression, format.PhaseLogin, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteVarInt(rec.(*message.LoginSetCompression).Threshold)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.LoginSetCompression{}
			var err error
			m.Threshold, err = cur.ReadVarInt()
			return m, err
		},
	)

	register(catalog.LoginAcknowledged, format.PhaseLogin, format.ClientToServer,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			return &message.LoginAcknowledged{}, nil
		},
	)
}
