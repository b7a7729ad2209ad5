package simd

import "unsafe"

// moveKernel copies min(len(dst), len(src)) bytes and returns the count.
type moveKernel func(dst, src []byte) int

// kernelSet groups the directional kernels for one chunk width.
type kernelSet struct {
	chunk    int
	forward  moveKernel
	backward moveKernel
}

// Kernel function pointers - set once at init, zero runtime overhead.
var (
	kernelMoveForward  moveKernel = moveForward16
	kernelMoveBackward moveKernel = moveBackward16
	chunkSize                     = 16
)

// MoveForward copies src into dst walking from the low end upward and
// returns the number of bytes moved (the shorter of the two lengths).
//
// SAFETY: Correct for overlapping ranges only when dst starts at or below src.
func MoveForward(dst, src []byte) int {
	return kernelMoveForward(dst, src)
}

// MoveBackward copies src into dst walking from the high end downward and
// returns the number of bytes moved (the shorter of the two lengths).
//
// SAFETY: Correct for overlapping ranges only when dst starts at or above src.
func MoveBackward(dst, src []byte) int {
	return kernelMoveBackward(dst, src)
}

// Overlaps reports whether a and b share at least one byte of memory.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a[0])) //nolint:gosec // address comparison only
	b0 := uintptr(unsafe.Pointer(&b[0])) //nolint:gosec // address comparison only
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

// ChunkSize returns the byte width of one vectorized chunk for the active kernels.
func ChunkSize() int {
	return chunkSize
}

// kernelsFor returns the kernel set matching an ISA's register width.
func kernelsFor(isa ISA) kernelSet {
	switch isa {
	case AVX512:
		return kernelSet{chunk: 64, forward: moveForward64, backward: moveBackward64}
	case AVX2, SVE2:
		return kernelSet{chunk: 32, forward: moveForward32, backward: moveBackward32}
	default:
		return kernelSet{chunk: 16, forward: moveForward16, backward: moveBackward16}
	}
}

func setKernels(ks kernelSet) {
	kernelMoveForward = ks.forward
	kernelMoveBackward = ks.backward
	chunkSize = ks.chunk
}
