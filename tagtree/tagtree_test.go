package tagtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janfel/mcproto/buffer"
	"github.com/janfel/mcproto/endian"
	"github.com/janfel/mcproto/errs"
	"github.com/janfel/mcproto/tagtree"
)

func roundTrip(t *testing.T, tag tagtree.Tag) tagtree.Tag {
	t.Helper()
	cur := buffer.NewCursor(endian.GetBigEndianEngine())
	require.NoError(t, tagtree.Encode(cur, tag))

	decodeCur := buffer.NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	got, err := tagtree.Decode(decodeCur)
	require.NoError(t, err)
	require.True(t, decodeCur.AtEnd())
	return got
}

func TestTagTree_ScalarKinds(t *testing.T) {
	cases := []struct {
		name string
		tag  tagtree.Tag
	}{
		{"end", tagtree.Tag{Kind: tagtree.KindEnd}},
		{"byte", tagtree.Tag{Kind: tagtree.KindByte, Byte: -7}},
		{"short", tagtree.Tag{Kind: tagtree.KindShort, Short: 1234}},
		{"int", tagtree.Tag{Kind: tagtree.KindInt, Int: -99999}},
		{"long", tagtree.Tag{Kind: tagtree.KindLong, Long: 1 << 40}},
		{"float", tagtree.Tag{Kind: tagtree.KindFloat, Float: 3.5}},
		{"double", tagtree.Tag{Kind: tagtree.KindDouble, Double: 2.71828}},
		{"string", tagtree.Tag{Kind: tagtree.KindString, String: "registry"}},
		{"byte_array", tagtree.Tag{Kind: tagtree.KindByteArray, Bytes: []byte{1, 2, 3, 4}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := roundTrip(t, c.tag)
			require.Equal(t, c.tag, got)
		})
	}
}

func TestTagTree_List(t *testing.T) {
	tag := tagtree.Tag{
		Kind:     tagtree.KindList,
		ListElem: tagtree.KindInt,
		List: []tagtree.Tag{
			{Kind: tagtree.KindInt, Int: 1},
			{Kind: tagtree.KindInt, Int: 2},
			{Kind: tagtree.KindInt, Int: 3},
		},
	}

	got := roundTrip(t, tag)
	require.Equal(t, tag, got)
}

func TestTagTree_Compound(t *testing.T) {
	tag := tagtree.Tag{
		Kind:  tagtree.KindCompound,
		Names: []string{"name", "count"},
		Compound: []tagtree.Tag{
			{Kind: tagtree.KindString, String: "stone"},
			{Kind: tagtree.KindInt, Int: 64},
		},
	}

	got := roundTrip(t, tag)
	require.Equal(t, tag, got)
}

func TestTagTree_NestedCompoundInList(t *testing.T) {
	leaf := tagtree.Tag{Kind: tagtree.KindCompound, Names: []string{"id"}, Compound: []tagtree.Tag{{Kind: tagtree.KindString, String: "a"}}}
	tag := tagtree.Tag{Kind: tagtree.KindList, ListElem: tagtree.KindCompound, List: []tagtree.Tag{leaf}}

	got := roundTrip(t, tag)
	require.Equal(t, tag, got)
}

func TestTagTree_DecodeRejectsInvalidKind(t *testing.T) {
	cur := buffer.NewCursor(endian.GetBigEndianEngine())
	require.NoError(t, cur.WriteU8(0xFF))

	decodeCur := buffer.NewCursorFromBytes(cur.Bytes(), endian.GetBigEndianEngine())
	_, err := tagtree.Decode(decodeCur)
	require.ErrorIs(t, err, errs.ErrInvalidTagType)
}

func TestTag_FreeClearsNested(t *testing.T) {
	tag := tagtree.Tag{
		Kind:     tagtree.KindList,
		ListElem: tagtree.KindString,
		List:     []tagtree.Tag{{Kind: tagtree.KindString, String: "x"}},
	}
	tag.Free()
	require.Nil(t, tag.List)
}
