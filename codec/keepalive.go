// Play keep-alive carries a 64-bit token on v765 and a varint token on
// v47; a single record holds both fields with only the version-relevant
// one populated, and it is the single
// play-phase message this codec's source exercises in both directions.
package codec

import (
	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
	"github.com/janfel/mcproto/message"
)

func encodeKeepAlive(cur *buffer.Cursor, version format.ProtocolVersion, rec message.Record) error {
	m := rec.(*message.KeepAlive)
	if version == format.V765 {
		return cur.WriteI64(m.TokenV765)
	}
	return cur.WriteVarInt(m.TokenV47)
}

func decodeKeepAlive(cur *buffer.Cursor, version format.ProtocolVersion) (message.Record, error) {
	m := &message.KeepAlive{}
	var err error
	if version == format.V765 {
		m.TokenV765, err = cur.ReadI64()
	} else {
		m.TokenV47, err = cur.ReadVarInt()
	}
	return m, err
}

func init() {
	register(catalog.KeepAliveClientbound, format.PhasePlay, format.ServerToClient, encodeKeepAlive, decodeKeepAlive)
	register(catalog.KeepAliveServerbound, format.PhasePlay, format.ClientToServer, encodeKeepAlive, decodeKeepAlive)
}
