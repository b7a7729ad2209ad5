package mem

import (
	"fmt"
	"math"
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64
// and has len == cap == size.
//
// Panics like make when size is out of range; see TryAllocAligned.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so the start can shift up by at most Alignment-1 bytes.
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+size]
}

// TryAllocAligned is AllocAligned reporting impossible sizes as ErrOutOfMemory
// instead of panicking.
func TryAllocAligned(size int) (buf []byte, err error) {
	if size > math.MaxInt-Alignment {
		return nil, fmt.Errorf("%w: %d bytes", ErrOutOfMemory, size)
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, size, r)
		}
	}()

	return AllocAligned(size), nil
}
