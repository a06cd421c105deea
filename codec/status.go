package codec

import (
	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

func init() {
	register(catalog.StatusRequest, format.PhaseStatus, format.ClientToServer,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return nil
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			return &message.StatusRequest{}, nil
		},
	)

	register(catalog.StatusResponse, format.PhaseStatus, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			m := rec.(*message.StatusResponse)
			return cur.WriteString(m.JSONResponse)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.StatusResponse{}
			var err error
			m.JSONResponse, err = cur.ReadString()
			return m, err
		},
	)

	register(catalog.StatusPing, format.PhaseStatus, format.ClientToServer,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteI64(rec.(*message.StatusPing).Payload)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.StatusPing{}
			var err error
			m.Payload, err = cur.ReadI64()
			return m, err
		},
	)

	register(catalog.StatusPong, format.PhaseStatus, format.ServerToClient,
		func(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
			return cur.WriteI64(rec.(*message.StatusPong).Payload)
		},
		func(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
			m := &message.StatusPong{}
			var err error
			m.Payload, err = cur.ReadI64()
			return m, err
		},
	)
}
