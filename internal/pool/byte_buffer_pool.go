package pool

import "sync"

// Default sizing for pooled bit buffers. The bitstring track of an
// assessment expands every sample symbol into up to 8 one-bit symbols, so
// buffers in the megabyte range are the common case.
const (
	BitBufferDefaultSize  = 1024 * 1024      // 1MiB
	BitBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is a reusable byte slice wrapper handed out by ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// SetLength resizes the buffer to exactly n bytes, reallocating with 25%
// headroom when the current capacity is insufficient. Contents beyond the
// previous length are unspecified.
// Panics if n is negative.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 {
		panic("SetLength: invalid length")
	}

	if n <= cap(bb.B) {
		bb.B = bb.B[:n]
		return
	}

	newBuf := make([]byte, n, n+n/4)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var bitDefaultPool = NewByteBufferPool(BitBufferDefaultSize, BitBufferMaxThreshold)

// GetBitBuffer retrieves a ByteBuffer from the default bit expansion pool.
func GetBitBuffer() *ByteBuffer {
	return bitDefaultPool.Get()
}

// PutBitBuffer returns a ByteBuffer to the default bit expansion pool.
func PutBitBuffer(bb *ByteBuffer) {
	bitDefaultPool.Put(bb)
}
