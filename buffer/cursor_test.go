package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janfel/mcproto/endian"
	"github.com/janfel/mcproto/errs"
)

func newTestCursor() *Cursor {
	return NewCursor(endian.GetBigEndianEngine())
}

func TestCursor_VarIntRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    int32
	}{
		{"zero", 0},
		{"one byte max", 127},
		{"two byte min", 128},
		{"max int32", 2147483647},
		{"minus one", -1},
		{"min int32", -2147483648},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cur := newTestCursor()
			require.NoError(t, cur.WriteVarInt(c.v))

			decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
			got, err := decodeCur.ReadVarInt()
			require.NoError(t, err)
			require.Equal(t, c.v, got)
			require.True(t, decodeCur.AtEnd())
		})
	}
}

func TestCursor_VarIntMaxFiveBytes(t *testing.T) {
	cur := newTestCursor()
	require.NoError(t, cur.WriteVarInt(-1))
	require.Equal(t, 5, cur.Len())
}

func TestCursor_PositionRoundTrip(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: -1, Z: -1},
		{X: 18293, Y: 64, Z: -1000},
		{X: 33554431, Y: 2047, Z: -33554432}, // max/min of the 26/12/26-bit fields
	}

	for _, p := range cases {
		cur := newTestCursor()
		require.NoError(t, cur.WritePosition(p))

		decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
		got, err := decodeCur.ReadPosition()
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestCursor_StringRoundTrip(t *testing.T) {
	cur := newTestCursor()
	require.NoError(t, cur.WriteString("localhost"))

	decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	got, err := decodeCur.ReadString()
	require.NoError(t, err)
	require.Equal(t, "localhost", got)
}

func TestCursor_TruncatedFrameYieldsBufferOverflow(t *testing.T) {
	cur := newTestCursor()
	require.NoError(t, cur.WriteString("this message got cut off"))

	truncated := cur.Bytes()[:3]
	decodeCur := NewCursorFromBytes(truncated, endian.GetBigEndianEngine())
	_, err := decodeCur.ReadString()
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
}

func TestCursor_SeekOutOfBoundsFails(t *testing.T) {
	cur := NewCursorFromBytes([]byte{1, 2, 3}, endian.GetBigEndianEngine())
	require.Error(t, cur.Seek(10))
}

func TestCursor_GrowDoublesCapacity(t *testing.T) {
	cur := newTestCursor()
	before := cur.buf.Cap()
	require.True(t, before > 0)

	err := cur.WriteRaw(make([]byte, before+1))
	require.NoError(t, err)

	require.Equal(t, before*2, cur.buf.Cap())
}

func TestCursor_UUIDHalvesRoundTrip(t *testing.T) {
	var u UUID
	for i := range u {
		u[i] = byte(i)
	}

	cur := newTestCursor()
	require.NoError(t, cur.WriteUUIDHalves(u))

	decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	got, err := decodeCur.ReadUUIDHalves()
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestCursor_UUIDStringRoundTrip(t *testing.T) {
	u, err := ParseUUID("0f2b3a4c-1111-2222-3333-444455556666")
	require.NoError(t, err)
	require.Equal(t, "0f2b3a4c-1111-2222-3333-444455556666", u.String())

	cur := newTestCursor()
	require.NoError(t, cur.WriteUUIDString(u))

	decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	got, err := decodeCur.ReadUUIDString()
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestParseUUID_RejectsMalformed(t *testing.T) {
	_, err := ParseUUID("not-a-uuid")
	require.ErrorIs(t, err, errs.ErrInvalidArguments)
}

func TestCursor_SlotAbsentSentinel(t *testing.T) {
	cur := newTestCursor()
	require.NoError(t, cur.WriteSlot(Slot{Present: false}))

	decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	got, err := decodeCur.ReadSlot()
	require.NoError(t, err)
	require.False(t, got.Present)
}

func TestCursor_EntityMetadataRoundTrip(t *testing.T) {
	entries := []MetadataEntry{
		{Index: 0, Type: MetaByte, Byte: 7},
		{Index: 3, Type: MetaString, String: "hello"},
	}

	cur := newTestCursor()
	require.NoError(t, cur.WriteEntityMetadata(entries))

	decodeCur := NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	got, err := decodeCur.ReadEntityMetadata()
	require.NoError(t, err)
	require.Equal(t, entries, got)
}
