package mem

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/bytevec/internal/mmap"
)

// OffHeap backs every buffer with its own anonymous mapping, so Free returns
// the pages to the operating system immediately.
//
// Each buffer occupies at least one page. OffHeap suits few large vectors,
// not many tiny ones.
type OffHeap struct {
	mu       sync.Mutex
	mappings map[uintptr]*mmap.Mapping
}

// NewOffHeap returns an off-heap allocator.
func NewOffHeap() *OffHeap {
	return &OffHeap{mappings: make(map[uintptr]*mmap.Mapping)}
}

func baseAddr(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // used as a map key only
}

// Allocate implements Allocator.
func (o *OffHeap) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	m, err := mmap.MapAnon(n)
	if err != nil {
		return nil, fmt.Errorf("%w: map %d bytes: %w", ErrOutOfMemory, n, err)
	}

	buf := m.Bytes()[:n:n]

	o.mu.Lock()
	o.mappings[baseAddr(buf)] = m
	o.mu.Unlock()

	return buf, nil
}

// Reallocate implements Allocator.
func (o *OffHeap) Reallocate(buf []byte, n int) ([]byte, error) {
	if n == len(buf) {
		return buf, nil
	}
	if n <= 0 {
		o.Free(buf)
		return nil, nil
	}

	nb, err := o.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(nb, buf)
	o.Free(buf)
	return nb, nil
}

// Free implements Allocator. Buffers not owned by this allocator are ignored.
func (o *OffHeap) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	key := baseAddr(buf)

	o.mu.Lock()
	m, ok := o.mappings[key]
	delete(o.mappings, key)
	o.mu.Unlock()

	if ok {
		_ = m.Close()
	}
}

// Live returns the number of buffers currently mapped.
func (o *OffHeap) Live() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.mappings)
}
