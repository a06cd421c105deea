// Package tagtree implements the binary tag tree: a small recursive,
// self-describing container used wherever the wire protocol embeds
// structured, open-ended data (item metadata, registry payloads,
// disconnect reasons with formatting).
//
// The rest of the module treats a tag tree as opaque: decode it from a
// cursor, encode it back, free it. The grammar below is a compact
// NBT-like encoding, closed over eleven tag kinds, chosen to be exactly
// round-trip testable and nothing more.
package tagtree

import (
	"fmt"

	"github.com/janfel/mcproto/errs"
)

// Reader is the subset of buffer.Cursor's read API a tag tree needs to
// decode itself. It is declared here, rather than imported, so that
// buffer.Cursor can embed tag trees (entity metadata, item slots)
// without an import cycle: buffer depends on tagtree, not the reverse.
type Reader interface {
	ReadU8() (uint8, error)
	ReadI8() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadF32() (float32, error)
	ReadF64() (float64, error)
	ReadRaw(n int) ([]byte, error)
	ReadString() (string, error)
}

// Writer is the subset of buffer.Cursor's write API a tag tree needs to
// encode itself.
type Writer interface {
	WriteU8(v uint8) error
	WriteI8(v int8) error
	WriteI16(v int16) error
	WriteI32(v int32) error
	WriteI64(v int64) error
	WriteF32(v float32) error
	WriteF64(v float64) error
	WriteRaw(b []byte) error
	WriteString(s string) error
}

// Kind is the tag type tag written as the first byte of every tag.
type Kind uint8

const (
	KindEnd Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
)

func (k Kind) valid() bool {
	return k <= KindCompound
}

// Tag is one node of a binary tag tree. Exactly one of the typed fields
// is meaningful, selected by Kind.
type Tag struct {
	Kind Kind

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64

	Bytes  []byte
	String string

	// ListElem is the Kind every entry of List must have.
	ListElem Kind
	List     []Tag

	// Compound entries are named; order is preserved on encode to keep
	// round trips byte-stable.
	Names    []string
	Compound []Tag
}

// Free releases every nested slice owned by t, recursively. Go's
// collector does the real work; this walk exists so callers can rely on
// the same "free everything reachable" contract every owning record in
// this module provides.
func (t *Tag) Free() {
	if t == nil {
		return
	}
	t.Bytes = nil
	t.String = ""
	for i := range t.List {
		t.List[i].Free()
	}
	t.List = nil
	for i := range t.Compound {
		t.Compound[i].Free()
	}
	t.Compound = nil
	t.Names = nil
}

// Decode reads one tag from cur.
func Decode(cur Reader) (Tag, error) {
	b, err := cur.ReadU8()
	if err != nil {
		return Tag{}, err
	}
	kind := Kind(b)
	if !kind.valid() {
		return Tag{}, fmt.Errorf("tagtree: kind %d: %w", b, errs.ErrInvalidTagType)
	}
	return decodeBody(cur, kind)
}

func decodeBody(cur Reader, kind Kind) (Tag, error) {
	tag := Tag{Kind: kind}

	switch kind {
	case KindEnd:
		return tag, nil
	case KindByte:
		v, err := cur.ReadI8()
		if err != nil {
			return Tag{}, err
		}
		tag.Byte = v
	case KindShort:
		v, err := cur.ReadI16()
		if err != nil {
			return Tag{}, err
		}
		tag.Short = v
	case KindInt:
		v, err := cur.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		tag.Int = v
	case KindLong:
		v, err := cur.ReadI64()
		if err != nil {
			return Tag{}, err
		}
		tag.Long = v
	case KindFloat:
		v, err := cur.ReadF32()
		if err != nil {
			return Tag{}, err
		}
		tag.Float = v
	case KindDouble:
		v, err := cur.ReadF64()
		if err != nil {
			return Tag{}, err
		}
		tag.Double = v
	case KindByteArray:
		n, err := cur.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, fmt.Errorf("tagtree: byte array length %d: %w", n, errs.ErrInvalidLength)
		}
		buf, err := cur.ReadRaw(int(n))
		if err != nil {
			return Tag{}, err
		}
		tag.Bytes = append([]byte(nil), buf...)
	case KindString:
		s, err := cur.ReadString()
		if err != nil {
			return Tag{}, err
		}
		tag.String = s
	case KindList:
		elemByte, err := cur.ReadU8()
		if err != nil {
			return Tag{}, err
		}
		elem := Kind(elemByte)
		if !elem.valid() {
			return Tag{}, fmt.Errorf("tagtree: list elem kind %d: %w", elemByte, errs.ErrInvalidTagType)
		}
		n, err := cur.ReadI32()
		if err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, fmt.Errorf("tagtree: list length %d: %w", n, errs.ErrInvalidLength)
		}
		tag.ListElem = elem
		for i := int32(0); i < n; i++ {
			child, err := decodeBody(cur, elem)
			if err != nil {
				tag.Free()
				return Tag{}, err
			}
			tag.List = append(tag.List, child)
		}
	case KindCompound:
		for {
			childByte, err := cur.ReadU8()
			if err != nil {
				tag.Free()
				return Tag{}, err
			}
			childKind := Kind(childByte)
			if childKind == KindEnd {
				break
			}
			if !childKind.valid() {
				tag.Free()
				return Tag{}, fmt.Errorf("tagtree: compound entry kind %d: %w", childByte, errs.ErrInvalidTagType)
			}
			name, err := cur.ReadString()
			if err != nil {
				tag.Free()
				return Tag{}, err
			}
			child, err := decodeBody(cur, childKind)
			if err != nil {
				tag.Free()
				return Tag{}, err
			}
			tag.Names = append(tag.Names, name)
			tag.Compound = append(tag.Compound, child)
		}
	}

	return tag, nil
}

// Encode appends t's wire form, including its leading kind byte, to cur.
func Encode(cur Writer, t Tag) error {
	if err := cur.WriteU8(uint8(t.Kind)); err != nil {
		return err
	}
	return encodeBody(cur, t)
}

func encodeBody(cur Writer, t Tag) error {
	switch t.Kind {
	case KindEnd:
		return nil
	case KindByte:
		return cur.WriteI8(t.Byte)
	case KindShort:
		return cur.WriteI16(t.Short)
	case KindInt:
		return cur.WriteI32(t.Int)
	case KindLong:
		return cur.WriteI64(t.Long)
	case KindFloat:
		return cur.WriteF32(t.Float)
	case KindDouble:
		return cur.WriteF64(t.Double)
	case KindByteArray:
		if err := cur.WriteI32(int32(len(t.Bytes))); err != nil {
			return err
		}
		return cur.WriteRaw(t.Bytes)
	case KindString:
		return cur.WriteString(t.String)
	case KindList:
		if err := cur.WriteU8(uint8(t.ListElem)); err != nil {
			return err
		}
		if err := cur.WriteI32(int32(len(t.List))); err != nil {
			return err
		}
		for _, child := range t.List {
			if err := encodeBody(cur, child); err != nil {
				return err
			}
		}
		return nil
	case KindCompound:
		for i, child := range t.Compound {
			if err := cur.WriteU8(uint8(child.Kind)); err != nil {
				return err
			}
			if err := cur.WriteString(t.Names[i]); err != nil {
				return err
			}
			if err := encodeBody(cur, child); err != nil {
				return err
			}
		}
		return cur.WriteU8(uint8(KindEnd))
	default:
		return fmt.Errorf("tagtree: kind %d: %w", t.Kind, errs.ErrInvalidTagType)
	}
}
