// Package buffer implements the byte cursor and every compound wire
// encoder this module needs: varints, length-prefixed strings and byte
// arrays, packed block positions, item slots, entity metadata streams,
// and UUIDs.
//
// A Cursor is used in one of two disjoint modes at a time: writing,
// where every call appends at the end and grows the backing store by
// doubling; or reading, where every call advances a read position that
// can never exceed the written length. Mixing modes on one Cursor is
// legal (an encoder writes a message, a decoder on the same bytes reads
// it back) but the two positions are tracked together as a single
// cursor.
package buffer

import (
	"encoding/hex"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/janfel/mcproto/endian"
	"github.com/janfel/mcproto/errs"
	"github.com/janfel/mcproto/internal/pool"
	"github.com/janfel/mcproto/tagtree"
)

// MaxStringLen is the default limit, in UTF-8 runes, on any string this
// codec reads or writes: INT16_MAX, the limit the wire format fixes for
// every text field.
const MaxStringLen = math.MaxInt16

// Cursor is a growable byte buffer with an independent read position.
type Cursor struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	pos    int
	pooled bool
}

// NewCursor returns an empty Cursor ready for writing, using engine for
// every multi-byte field. Callers that only ever use this module's wire
// format should pass endian.GetBigEndianEngine(): the wire is big-endian
// regardless of host order.
func NewCursor(engine endian.EndianEngine) *Cursor {
	return &Cursor{
		buf:    pool.GetCursorBuffer(),
		engine: engine,
		pooled: true,
	}
}

// NewCursorWithSize returns an empty Cursor whose backing store is
// pre-allocated to hold at least n bytes, for callers that know the
// frame size up front and want to skip the doubling growth steps.
func NewCursorWithSize(n int, engine endian.EndianEngine) *Cursor {
	return &Cursor{
		buf:    pool.NewByteBuffer(n),
		engine: engine,
	}
}

// NewCursorFromBytes wraps data for reading. data is copied, so the
// Cursor owns its storage independently of the caller's slice.
func NewCursorFromBytes(data []byte, engine endian.EndianEngine) *Cursor {
	c := &Cursor{
		buf:    pool.NewByteBuffer(len(data)),
		engine: engine,
	}
	c.buf.MustWrite(data)
	c.pos = 0
	return c
}

// Free returns the Cursor's backing storage to the pool it came from.
// A Cursor must not be used after Free.
func (c *Cursor) Free() {
	if c == nil || c.buf == nil {
		return
	}
	if c.pooled {
		pool.PutCursorBuffer(c.buf)
	}
	c.buf = nil
}

// Bytes returns the bytes written so far. The slice is only valid until
// the next write.
func (c *Cursor) Bytes() []byte {
	return c.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (c *Cursor) Len() int {
	return c.buf.Len()
}

// Position returns the current read/write offset.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return c.buf.Len() - c.pos
}

// AtEnd reports whether every written byte has been read. Decoders use
// this to enforce the frame under-run check: a message is malformed
// if the cursor has bytes left over after decoding its known fields, or
// if it ran out before decoding all of them.
func (c *Cursor) AtEnd() bool {
	return c.pos == c.buf.Len()
}

// Seek repositions the read cursor to an absolute offset within the
// written bytes.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > c.buf.Len() {
		return fmt.Errorf("buffer: seek %d out of range [0,%d]: %w", pos, c.buf.Len(), errs.ErrInvalidArguments)
	}
	c.pos = pos
	return nil
}

// ReadRaw returns the next n unread bytes without copying.
func (c *Cursor) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("buffer: negative read length %d: %w", n, errs.ErrInvalidArguments)
	}
	if c.pos+n > c.buf.Len() {
		return nil, fmt.Errorf("buffer: need %d bytes, have %d: %w", n, c.Remaining(), errs.ErrBufferOverflow)
	}
	b := c.buf.Bytes()[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// WriteRaw appends b verbatim, growing the buffer as needed.
func (c *Cursor) WriteRaw(b []byte) error {
	c.buf.MustWrite(b)
	c.pos = c.buf.Len()
	return nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadRaw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) WriteU8(v uint8) error {
	return c.WriteRaw([]byte{v})
}

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) WriteI8(v int8) error {
	return c.WriteU8(uint8(v))
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadRaw(2)
	if err != nil {
		return 0, err
	}
	return c.engine.Uint16(b), nil
}

func (c *Cursor) WriteU16(v uint16) error {
	c.buf.Grow(2)
	c.buf.B = c.engine.AppendUint16(c.buf.Bytes(), v)
	c.pos = c.buf.Len()
	return nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) WriteI16(v int16) error {
	return c.WriteU16(uint16(v))
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadRaw(4)
	if err != nil {
		return 0, err
	}
	return c.engine.Uint32(b), nil
}

func (c *Cursor) WriteU32(v uint32) error {
	c.buf.Grow(4)
	c.buf.B = c.engine.AppendUint32(c.buf.Bytes(), v)
	c.pos = c.buf.Len()
	return nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) WriteI32(v int32) error {
	return c.WriteU32(uint32(v))
}

func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.ReadRaw(8)
	if err != nil {
		return 0, err
	}
	return c.engine.Uint64(b), nil
}

func (c *Cursor) WriteU64(v uint64) error {
	c.buf.Grow(8)
	c.buf.B = c.engine.AppendUint64(c.buf.Bytes(), v)
	c.pos = c.buf.Len()
	return nil
}

func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

func (c *Cursor) WriteI64(v int64) error {
	return c.WriteU64(uint64(v))
}

func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *Cursor) WriteF32(v float32) error {
	return c.WriteU32(math.Float32bits(v))
}

func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (c *Cursor) WriteF64(v float64) error {
	return c.WriteU64(math.Float64bits(v))
}

func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadU8()
	return v != 0, err
}

func (c *Cursor) WriteBool(v bool) error {
	if v {
		return c.WriteU8(1)
	}
	return c.WriteU8(0)
}

// ReadVarInt decodes a 7-bit-per-byte, high-bit-continuation varint,
// capped at 5 bytes as the wire format's 32-bit ceiling requires.
func (c *Cursor) ReadVarInt() (int32, error) {
	var result uint32
	var shift uint
	for i := 0; i < 5; i++ {
		b, err := c.ReadU8()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return int32(result), nil
		}
		shift += 7
	}
	return 0, fmt.Errorf("buffer: varint longer than 5 bytes: %w", errs.ErrInvalidLength)
}

// WriteVarInt encodes v as a varint, writing the two's-complement bit
// pattern of v the same way regardless of sign.
func (c *Cursor) WriteVarInt(v int32) error {
	uv := uint32(v)
	for {
		b := byte(uv & 0x7F)
		uv >>= 7
		if uv != 0 {
			b |= 0x80
		}
		if err := c.WriteU8(b); err != nil {
			return err
		}
		if uv == 0 {
			return nil
		}
	}
}

// ReadString reads a varint-length-prefixed, UTF-8 string capped at
// MaxStringLen runes. A length prefix that is negative or beyond four
// bytes per allowed rune is rejected before any body bytes are read.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadVarInt()
	if err != nil {
		return "", err
	}
	if n < 0 || n > MaxStringLen*utf8.UTFMax {
		return "", fmt.Errorf("buffer: string length %d out of range: %w", n, errs.ErrInvalidArguments)
	}
	b, err := c.ReadRaw(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("buffer: invalid utf-8: %w", errs.ErrInvalidString)
	}
	s := string(b)
	if utf8.RuneCountInString(s) > MaxStringLen {
		return "", fmt.Errorf("buffer: string exceeds %d runes: %w", MaxStringLen, errs.ErrStringLength)
	}
	return s, nil
}

// WriteString writes s as a varint-length-prefixed UTF-8 string.
func (c *Cursor) WriteString(s string) error {
	if utf8.RuneCountInString(s) > MaxStringLen {
		return fmt.Errorf("buffer: string exceeds %d runes: %w", MaxStringLen, errs.ErrStringLength)
	}
	b := []byte(s)
	if err := c.WriteVarInt(int32(len(b))); err != nil {
		return err
	}
	return c.WriteRaw(b)
}

// ReadByteArray reads a varint-length-prefixed opaque byte array.
func (c *Cursor) ReadByteArray() ([]byte, error) {
	n, err := c.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("buffer: negative array length %d: %w", n, errs.ErrInvalidLength)
	}
	b, err := c.ReadRaw(int(n))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// WriteByteArray writes b as a varint-length-prefixed opaque byte array.
func (c *Cursor) WriteByteArray(b []byte) error {
	if err := c.WriteVarInt(int32(len(b))); err != nil {
		return err
	}
	return c.WriteRaw(b)
}

// Position is an unpacked block coordinate triple.
type Position struct {
	X, Y, Z int32
}

// ReadPosition decodes the packed 64-bit block-position encoding:
// x occupies the top 26 bits, y the next 12, z the bottom 26, each
// sign-extended independently on the way out.
func (c *Cursor) ReadPosition() (Position, error) {
	v, err := c.ReadI64()
	if err != nil {
		return Position{}, err
	}
	x := v >> 38
	y := (v << 26) >> 52
	z := (v << 38) >> 38
	return Position{X: int32(x), Y: int32(y), Z: int32(z)}, nil
}

// WritePosition packs p into the wire's 64-bit coordinate encoding.
func (c *Cursor) WritePosition(p Position) error {
	packed := (int64(p.X)&0x3FFFFFF)<<38 | (int64(p.Y)&0xFFF)<<26 | (int64(p.Z) & 0x3FFFFFF)
	return c.WriteI64(packed)
}

// Slot is an inventory item stack. An absent slot carries no further
// fields; a present one always does, including when Tag is the zero
// (End) tag.
type Slot struct {
	Present  bool
	ItemID   int16
	Count    int8
	Metadata int16
	Tag      tagtree.Tag
}

// ReadSlot decodes an item slot: a leading int16 item id of -1 marks an
// absent slot; any other value is followed by count, metadata/damage,
// and a tag.
func (c *Cursor) ReadSlot() (Slot, error) {
	id, err := c.ReadI16()
	if err != nil {
		return Slot{}, err
	}
	if id == -1 {
		return Slot{Present: false}, nil
	}
	count, err := c.ReadI8()
	if err != nil {
		return Slot{}, err
	}
	metadata, err := c.ReadI16()
	if err != nil {
		return Slot{}, err
	}
	tag, err := tagtree.Decode(c)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Present: true, ItemID: id, Count: count, Metadata: metadata, Tag: tag}, nil
}

// WriteSlot encodes s, writing the -1 sentinel for an absent slot.
func (c *Cursor) WriteSlot(s Slot) error {
	if !s.Present {
		return c.WriteI16(-1)
	}
	if err := c.WriteI16(s.ItemID); err != nil {
		return err
	}
	if err := c.WriteI8(s.Count); err != nil {
		return err
	}
	if err := c.WriteI16(s.Metadata); err != nil {
		return err
	}
	return tagtree.Encode(c, s.Tag)
}

// MetadataType is one of the closed set of entity metadata value kinds.
type MetadataType uint8

const (
	MetaByte MetadataType = iota
	MetaShort
	MetaInt
	MetaFloat
	MetaString
	MetaSlot
	MetaPosition
	MetaRotation
)

func (t MetadataType) valid() bool {
	return t <= MetaRotation
}

// MetadataEntry is one tagged value in an entity metadata stream.
type MetadataEntry struct {
	Index int
	Type  MetadataType

	Byte     int8
	Short    int16
	Int      int32
	Float    float32
	String   string
	Slot     Slot
	Position Position
	Pitch    float32
	Yaw      float32
	Roll     float32
}

// metaTerminator ends an entity metadata stream.
const metaTerminator = 0x7F

// ReadEntityMetadata reads a tagged metadata stream: each entry starts
// with a header byte packing (type<<5)|index, and the stream ends at a
// 0x7F terminator byte.
func (c *Cursor) ReadEntityMetadata() ([]MetadataEntry, error) {
	var entries []MetadataEntry
	for {
		header, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		if header == metaTerminator {
			return entries, nil
		}
		typ := MetadataType(header >> 5)
		index := int(header & 0x1F)
		if !typ.valid() {
			return nil, fmt.Errorf("buffer: metadata type %d: %w", typ, errs.ErrInvalidTagType)
		}
		entry := MetadataEntry{Index: index, Type: typ}
		switch typ {
		case MetaByte:
			entry.Byte, err = c.ReadI8()
		case MetaShort:
			entry.Short, err = c.ReadI16()
		case MetaInt:
			entry.Int, err = c.ReadI32()
		case MetaFloat:
			entry.Float, err = c.ReadF32()
		case MetaString:
			entry.String, err = c.ReadString()
		case MetaSlot:
			entry.Slot, err = c.ReadSlot()
		case MetaPosition:
			entry.Position, err = c.ReadPosition()
		case MetaRotation:
			if entry.Pitch, err = c.ReadF32(); err != nil {
				break
			}
			if entry.Yaw, err = c.ReadF32(); err != nil {
				break
			}
			entry.Roll, err = c.ReadF32()
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// WriteEntityMetadata writes entries followed by the 0x7F terminator.
func (c *Cursor) WriteEntityMetadata(entries []MetadataEntry) error {
	for _, e := range entries {
		header := uint8(e.Type)<<5 | uint8(e.Index&0x1F)
		if err := c.WriteU8(header); err != nil {
			return err
		}
		var err error
		switch e.Type {
		case MetaByte:
			err = c.WriteI8(e.Byte)
		case MetaShort:
			err = c.WriteI16(e.Short)
		case MetaInt:
			err = c.WriteI32(e.Int)
		case MetaFloat:
			err = c.WriteF32(e.Float)
		case MetaString:
			err = c.WriteString(e.String)
		case MetaSlot:
			err = c.WriteSlot(e.Slot)
		case MetaPosition:
			err = c.WritePosition(e.Position)
		case MetaRotation:
			if err = c.WriteF32(e.Pitch); err != nil {
				break
			}
			if err = c.WriteF32(e.Yaw); err != nil {
				break
			}
			err = c.WriteF32(e.Roll)
		default:
			err = fmt.Errorf("buffer: metadata type %d: %w", e.Type, errs.ErrInvalidTagType)
		}
		if err != nil {
			return err
		}
	}
	return c.WriteU8(metaTerminator)
}

// ReadTagTree decodes one binary tag tree from the cursor's current
// position, delegating to the tagtree package.
func (c *Cursor) ReadTagTree() (tagtree.Tag, error) {
	return tagtree.Decode(c)
}

// WriteTagTree appends t's wire form.
func (c *Cursor) WriteTagTree(t tagtree.Tag) error {
	return tagtree.Encode(c, t)
}

// UUID is a 128-bit identifier with two wire encodings: v765 writes it
// as two big-endian 64-bit halves, v47 writes it as its textual form.
type UUID [16]byte

// ReadUUIDHalves decodes the v765 two-int64 encoding.
func (c *Cursor) ReadUUIDHalves() (UUID, error) {
	hi, err := c.ReadU64()
	if err != nil {
		return UUID{}, err
	}
	lo, err := c.ReadU64()
	if err != nil {
		return UUID{}, err
	}
	var u UUID
	c.engine.PutUint64(u[0:8], hi)
	c.engine.PutUint64(u[8:16], lo)
	return u, nil
}

// WriteUUIDHalves encodes u as two big-endian 64-bit halves.
func (c *Cursor) WriteUUIDHalves(u UUID) error {
	if err := c.WriteU64(c.engine.Uint64(u[0:8])); err != nil {
		return err
	}
	return c.WriteU64(c.engine.Uint64(u[8:16]))
}

// ReadUUIDString decodes the v47 textual encoding:
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx".
func (c *Cursor) ReadUUIDString() (UUID, error) {
	s, err := c.ReadString()
	if err != nil {
		return UUID{}, err
	}
	return ParseUUID(s)
}

// WriteUUIDString encodes u in its textual form.
func (c *Cursor) WriteUUIDString(u UUID) error {
	return c.WriteString(u.String())
}

// String renders u in canonical dashed hex form.
func (u UUID) String() string {
	h := hex.EncodeToString(u[:])
	return fmt.Sprintf("%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}

// ParseUUID parses the canonical dashed hex form.
func ParseUUID(s string) (UUID, error) {
	hexDigits := make([]byte, 0, 32)
	for _, r := range s {
		if r == '-' {
			continue
		}
		hexDigits = append(hexDigits, byte(r))
	}
	if len(hexDigits) != 32 {
		return UUID{}, fmt.Errorf("buffer: malformed uuid %q: %w", s, errs.ErrInvalidArguments)
	}
	var u UUID
	if _, err := hex.Decode(u[:], hexDigits); err != nil {
		return UUID{}, fmt.Errorf("buffer: malformed uuid %q: %w", s, errs.ErrInvalidArguments)
	}
	return u, nil
}
