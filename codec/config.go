// Config-phase messages are defined only on v765; these
// encoders/decoders ignore the version argument because the dispatch
// table never resolves a config-phase key for v47 in the first place.
package codec

import (
	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
	"github.com/janfel/mcproto/tagtree"
)

func init() {
	register(catalog.ConfigFinish, format.PhaseConfig, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			return &message.ConfigFinish{}, nil
		},
	)

	register(catalog.ConfigPing, format.PhaseConfig, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteI32(rec.(*message.ConfigPing).Payload)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ConfigPing{}
			var err error
			m.Payload, err = cur.ReadI32()
			return m, err
		},
	)

	register(catalog.ConfigRegistryData, format.PhaseConfig, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.ConfigRegistryData)
			if err := cur.WriteString(m.RegistryID); err != nil {
				return err
			}
			return tagtree.Encode(cur, m.Entries)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ConfigRegistryData{}
			var err error
			if m.RegistryID, err = cur.ReadString(); err != nil {
				return m, err
			}
			m.Entries, err = tagtree.Decode(cur)
			return m, err
		},
	)

	register(catalog.ConfigRemoveResourcePack, format.PhaseConfig, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.ConfigRemoveResourcePack)
			if err := cur.WriteBool(m.HasID); err != nil {
				return err
			}
			if m.HasID {
				return cur.WriteUUIDHalves(m.ID)
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ConfigRemoveResourcePack{}
			var err error
			if m.HasID, err = cur.ReadBool(); err != nil {
				return m, err
			}
			if m.HasID {
				m.ID, err = cur.ReadUUIDHalves()
			}
			return m, err
		},
	)

	register(catalog.ConfigAddResourcePack, format.PhaseConfig, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.ConfigAddResourcePack)
			if err := cur.WriteUUIDHalves(m.ID); err != nil {
				return err
			}
			if err := cur.WriteString(m.URL); err != nil {
				return err
			}
			if err := cur.WriteString(m.Hash); err != nil {
				return err
			}
			if err := cur.WriteBool(m.Forced); err != nil {
				return err
			}
			if err := cur.WriteBool(m.HasPrompt); err != nil {
				return err
			}
			if m.HasPrompt {
				return cur.WriteString(m.Prompt)
			}
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ConfigAddResourcePack{}
			var err error
			if m.ID, err = cur.ReadUUIDHalves(); err != nil {
				return m, err
			}
			if m.URL, err = cur.ReadString(); err != nil {
				return m, err
			}
			if m.Hash, err = cur.ReadString(); err != nil {
				return m, err
			}
			if m.Forced, err = cur.ReadBool(); err != nil {
				return m, err
			}
			if m.HasPrompt, err = cur.ReadBool(); err != nil {
				return m, err
			}
			if m.HasPrompt {
				m.Prompt, err = cur.ReadString()
			}
			return m, err
		},
	)

	register(catalog.ConfigDisconnect, format.PhaseConfig, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return tagtree.Encode(cur, rec.(*message.ConfigDisconnect).Reason)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.ConfigDisconnect{}
			var err error
			m.Reason, err = tagtree.Decode(cur)
			return m, err
		},
	)
}
