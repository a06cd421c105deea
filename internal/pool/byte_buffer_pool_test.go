package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	// Should return the same underlying slice
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)

	assert.Equal(t, 0, bb.Len(), "empty buffer should have zero length")

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len(), "buffer length should match data")

	bb.B = append(bb.B, []byte(" data")...)
	assert.Equal(t, 9, bb.Len(), "buffer length should update after append")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	data := []byte("frame payload")

	bb.MustWrite(data)

	assert.Equal(t, data, bb.Bytes())
	assert.Equal(t, len(data), bb.Len())
}

func TestByteBuffer_MustWrite_EmptyData(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)

	bb.MustWrite(nil)
	bb.MustWrite([]byte{})

	assert.Equal(t, 0, bb.Len(), "writing empty data should not change length")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)

	n, err := bb.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestByteBuffer_Write_Multiple(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)

	chunks := [][]byte{[]byte("first "), []byte("second "), []byte("third")}
	for _, chunk := range chunks {
		n, err := bb.Write(chunk)
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}

	assert.Equal(t, []byte("first second third"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.MustWrite([]byte("opcode and fields"))

	var sink bytes.Buffer
	n, err := bb.WriteTo(&sink)

	require.NoError(t, err)
	assert.Equal(t, int64(bb.Len()), n)
	assert.Equal(t, bb.Bytes(), sink.Bytes())
}

func TestByteBuffer_WriteTo_EmptyBuffer(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)

	var sink bytes.Buffer
	n, err := bb.WriteTo(&sink)

	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, 0, sink.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.MustWrite([]byte("data"))

	_, err := bb.WriteTo(failingWriter{})

	require.ErrorIs(t, err, io.ErrShortWrite)
}

// =============================================================================
// Grow Tests — the doubling policy the cursor invariants depend on
// =============================================================================

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(CursorDefaultSize / 2)

	assert.Equal(t, originalCap, cap(bb.B), "Grow should not reallocate when capacity suffices")
}

func TestByteBuffer_Grow_DoublesOnce(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.B = append(bb.B, make([]byte, CursorDefaultSize)...) // fill to capacity

	bb.Grow(1)

	assert.Equal(t, CursorDefaultSize*2, cap(bb.B), "one overflowing byte should double capacity exactly once")
	assert.Equal(t, CursorDefaultSize, len(bb.B), "length should not change")
}

func TestByteBuffer_Grow_DoublesUntilFits(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.B = append(bb.B, make([]byte, CursorDefaultSize)...) // fill to capacity

	// Needs three doublings from 256: 512, 1024, 2048.
	bb.Grow(CursorDefaultSize*5 + 220)

	assert.Equal(t, CursorDefaultSize*8, cap(bb.B), "capacity should be a power-of-two multiple of the start")
}

func TestByteBuffer_Grow_ZeroCapacityStartsAtDefault(t *testing.T) {
	bb := &ByteBuffer{}

	bb.Grow(1)

	assert.Equal(t, CursorDefaultSize, cap(bb.B), "zero-cap buffer should start at the default size")
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.MustWrite([]byte("keep me"))

	bb.Grow(CursorDefaultSize * 2) // force reallocation

	assert.Equal(t, []byte("keep me"), bb.Bytes(), "Grow must preserve existing data")
}

func TestByteBuffer_Grow_ZeroBytes(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(0)

	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow_NeverShrinks(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.Grow(CursorDefaultSize * 4)
	grownCap := cap(bb.B)

	bb.Grow(1)
	bb.Grow(0)

	assert.Equal(t, grownCap, cap(bb.B), "capacity never shrinks")
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.MustWrite([]byte{1, 2, 3, 4, 5})

	assert.Equal(t, []byte{2, 3, 4}, bb.Slice(1, 4))
	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.Slice(2, 1) })
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(CursorDefaultSize)
	bb.MustWrite([]byte{1, 2, 3, 4, 5})

	bb.SetLength(2)
	assert.Equal(t, 2, bb.Len())

	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

// =============================================================================
// Cursor pool Tests
// =============================================================================

func TestGetCursorBuffer(t *testing.T) {
	bb := GetCursorBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should start empty")
	assert.GreaterOrEqual(t, cap(bb.B), CursorDefaultSize, "pooled buffer should have at least default capacity")
	PutCursorBuffer(bb)
}

func TestPutCursorBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutCursorBuffer(nil)
	})
}

func TestPutCursorBuffer_ResetsData(t *testing.T) {
	bb := GetCursorBuffer()
	bb.MustWrite([]byte("stale frame bytes"))

	PutCursorBuffer(bb)

	bb2 := GetCursorBuffer()
	assert.Equal(t, 0, bb2.Len(), "a buffer fetched from the pool must be empty")
	PutCursorBuffer(bb2)
}

func TestCursorPool_OversizedBufferNotRetained(t *testing.T) {
	bb := GetCursorBuffer()
	bb.Grow(CursorMaxThreshold + 1)

	// Put must accept the buffer without panicking; a subsequent Get must
	// never hand back stale data regardless of whether it was retained.
	PutCursorBuffer(bb)

	bb2 := GetCursorBuffer()
	assert.Equal(t, 0, bb2.Len())
	PutCursorBuffer(bb2)
}

func TestCursorPool_MultipleGetsAndPuts(t *testing.T) {
	buffers := make([]*ByteBuffer, 8)
	for i := range buffers {
		buffers[i] = GetCursorBuffer()
		require.NotNil(t, buffers[i])
		buffers[i].MustWrite([]byte{byte(i)})
	}

	for _, bb := range buffers {
		PutCursorBuffer(bb)
	}

	for range buffers {
		bb := GetCursorBuffer()
		assert.Equal(t, 0, bb.Len())
		PutCursorBuffer(bb)
	}
}

func TestCursorPool_ConcurrentAccess(t *testing.T) {
	const goroutines = 16
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(seed byte) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				bb := GetCursorBuffer()
				bb.MustWrite([]byte{seed, byte(i)})
				PutCursorBuffer(bb)
			}
		}(byte(g))
	}
	wg.Wait()
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestNewByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(512, 4096)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 512, cap(bb.B))
	p.Put(bb)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(256) // beyond threshold
	oversizedCap := cap(bb.B)
	p.Put(bb)

	bb2 := p.Get()
	assert.Less(t, cap(bb2.B), oversizedCap, "oversized buffer should not be pooled back")
	p.Put(bb2)
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	bb.Grow(1 << 20)
	assert.NotPanics(t, func() { p.Put(bb) }, "zero threshold disables the size cap")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 128)
	assert.NotPanics(t, func() { p.Put(nil) })
}
