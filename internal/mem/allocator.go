package mem

import "errors"

// ErrOutOfMemory is returned when an allocator cannot provide the requested bytes.
var ErrOutOfMemory = errors.New("mem: out of memory")

// Allocator provides and releases vector buffers.
type Allocator interface {
	// Allocate returns a buffer of exactly n bytes (nil for n == 0).
	Allocate(n int) ([]byte, error)
	// Reallocate returns a buffer of exactly n bytes holding the first
	// min(len(buf), n) bytes of buf. On error buf is untouched and still
	// owned by the caller.
	Reallocate(buf []byte, n int) ([]byte, error)
	// Free releases a buffer obtained from this allocator.
	Free(buf []byte)
}

// Heap allocates 64-byte aligned buffers on the Go heap.
type Heap struct{}

// NewHeap returns a heap allocator.
func NewHeap() *Heap { return &Heap{} }

// Allocate implements Allocator.
func (*Heap) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	return TryAllocAligned(n)
}

// Reallocate implements Allocator.
func (h *Heap) Reallocate(buf []byte, n int) ([]byte, error) {
	if n == len(buf) {
		return buf, nil
	}
	if n <= 0 {
		return nil, nil
	}

	nb, err := h.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(nb, buf)
	return nb, nil
}

// Free implements Allocator. The garbage collector reclaims the buffer.
func (*Heap) Free([]byte) {}
