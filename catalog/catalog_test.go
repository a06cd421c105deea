package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janfel/mcproto/catalog"
	"github.com/janfel/mcproto/format"
)

func TestResolve_SameOpcodeDifferentVersionsDifferentMeaning(t *testing.T) {
	// Play opcode 0x24 means keep_alive clientbound on v765 but
	// block_break_animation on v47: the dispatch key
	// must disambiguate on version, not opcode alone.
	v765ID := catalog.Resolve(catalog.Key{Opcode: 0x24, Phase: format.PhasePlay, Direction: format.ServerToClient, Version: format.V765})
	v47ID := catalog.Resolve(catalog.Key{Opcode: 0x24, Phase: format.PhasePlay, Direction: format.ServerToClient, Version: format.V47})

	require.Equal(t, catalog.KeepAliveClientbound, v765ID)
	require.Equal(t, catalog.BlockBreakAnimation, v47ID)
}

func TestResolve_UnknownKeyReturnsUnknown(t *testing.T) {
	id := catalog.Resolve(catalog.Key{Opcode: 0x7F, Phase: format.PhasePlay, Direction: format.ServerToClient, Version: format.V47})
	require.Equal(t, catalog.Unknown, id)
}

func TestOpcodeFor_MatchesSampleTableEntries(t *testing.T) {
	cases := []struct {
		id        catalog.ID
		phase     format.Phase
		direction format.Direction
		version   format.ProtocolVersion
		opcode    int32
	}{
		{catalog.Handshake, format.PhaseHandshake, format.ClientToServer, format.V765, 0x00},
		{catalog.LoginSuccess, format.PhaseLogin, format.ServerToClient, format.V47, 0x02},
		{catalog.KeepAliveClientbound, format.PhasePlay, format.ServerToClient, format.V765, 0x24},
		{catalog.KeepAliveClientbound, format.PhasePlay, format.ServerToClient, format.V47, 0x00},
		{catalog.KeepAliveServerbound, format.PhasePlay, format.ClientToServer, format.V765, 0x14},
	}

	for _, c := range cases {
		opcode, ok := catalog.OpcodeFor(c.id, c.phase, c.direction, c.version)
		require.True(t, ok, "%s undefined on %s/%s", c.id, c.phase, c.version)
		require.Equal(t, c.opcode, opcode)
	}
}

func TestOpcodeFor_MissingCombinationReportsFalse(t *testing.T) {
	_, ok := catalog.OpcodeFor(catalog.JoinGame, format.PhasePlay, format.ServerToClient, format.V765)
	require.False(t, ok)
}

func TestID_String(t *testing.T) {
	require.Equal(t, "join_game", catalog.JoinGame.String())
	require.Equal(t, "unknown", catalog.Unknown.String())
	require.Equal(t, "unknown", catalog.ID(9999).String())
}
