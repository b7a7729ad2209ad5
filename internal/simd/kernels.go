package simd

import "encoding/binary"

// The chunked kernels move whole chunks as 64-bit words. All words of a chunk
// are loaded before the first store, so the chunk behaves like one register
// round-trip. binary.LittleEndian on byte slices compiles to plain unaligned
// loads/stores on amd64 and arm64 and stays correct on strict-alignment targets.

var le = binary.LittleEndian

func moveLen(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	return n
}

// forwardTail is the scalar remainder loop, low to high.
func forwardTail(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		dst[i] = src[i]
	}
}

// backwardTail is the scalar remainder loop, high to low.
func backwardTail(dst, src []byte) {
	for i := len(src) - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}

// ============================================================================
// 16-byte chunks (generic, NEON)
// ============================================================================

func moveForward16(dst, src []byte) int {
	n := moveLen(dst, src)
	i := 0
	for ; i+16 <= n; i += 16 {
		s := src[i : i+16 : i+16]
		w0, w1 := le.Uint64(s[0:]), le.Uint64(s[8:])
		d := dst[i : i+16 : i+16]
		le.PutUint64(d[0:], w0)
		le.PutUint64(d[8:], w1)
	}
	forwardTail(dst[i:n], src[i:n])
	return n
}

func moveBackward16(dst, src []byte) int {
	n := moveLen(dst, src)
	i := n
	for ; i >= 16; i -= 16 {
		s := src[i-16 : i : i]
		w0, w1 := le.Uint64(s[0:]), le.Uint64(s[8:])
		d := dst[i-16 : i : i]
		le.PutUint64(d[8:], w1)
		le.PutUint64(d[0:], w0)
	}
	backwardTail(dst[:i], src[:i])
	return n
}

// ============================================================================
// 32-byte chunks (AVX2, SVE2)
// ============================================================================

func moveForward32(dst, src []byte) int {
	n := moveLen(dst, src)
	i := 0
	for ; i+32 <= n; i += 32 {
		s := src[i : i+32 : i+32]
		w0, w1 := le.Uint64(s[0:]), le.Uint64(s[8:])
		w2, w3 := le.Uint64(s[16:]), le.Uint64(s[24:])
		d := dst[i : i+32 : i+32]
		le.PutUint64(d[0:], w0)
		le.PutUint64(d[8:], w1)
		le.PutUint64(d[16:], w2)
		le.PutUint64(d[24:], w3)
	}
	forwardTail(dst[i:n], src[i:n])
	return n
}

func moveBackward32(dst, src []byte) int {
	n := moveLen(dst, src)
	i := n
	for ; i >= 32; i -= 32 {
		s := src[i-32 : i : i]
		w0, w1 := le.Uint64(s[0:]), le.Uint64(s[8:])
		w2, w3 := le.Uint64(s[16:]), le.Uint64(s[24:])
		d := dst[i-32 : i : i]
		le.PutUint64(d[24:], w3)
		le.PutUint64(d[16:], w2)
		le.PutUint64(d[8:], w1)
		le.PutUint64(d[0:], w0)
	}
	backwardTail(dst[:i], src[:i])
	return n
}

// ============================================================================
// 64-byte chunks (AVX-512)
// ============================================================================

func moveForward64(dst, src []byte) int {
	n := moveLen(dst, src)
	i := 0
	for ; i+64 <= n; i += 64 {
		s := src[i : i+64 : i+64]
		w0, w1 := le.Uint64(s[0:]), le.Uint64(s[8:])
		w2, w3 := le.Uint64(s[16:]), le.Uint64(s[24:])
		w4, w5 := le.Uint64(s[32:]), le.Uint64(s[40:])
		w6, w7 := le.Uint64(s[48:]), le.Uint64(s[56:])
		d := dst[i : i+64 : i+64]
		le.PutUint64(d[0:], w0)
		le.PutUint64(d[8:], w1)
		le.PutUint64(d[16:], w2)
		le.PutUint64(d[24:], w3)
		le.PutUint64(d[32:], w4)
		le.PutUint64(d[40:], w5)
		le.PutUint64(d[48:], w6)
		le.PutUint64(d[56:], w7)
	}
	forwardTail(dst[i:n], src[i:n])
	return n
}

func moveBackward64(dst, src []byte) int {
	n := moveLen(dst, src)
	i := n
	for ; i >= 64; i -= 64 {
		s := src[i-64 : i : i]
		w0, w1 := le.Uint64(s[0:]), le.Uint64(s[8:])
		w2, w3 := le.Uint64(s[16:]), le.Uint64(s[24:])
		w4, w5 := le.Uint64(s[32:]), le.Uint64(s[40:])
		w6, w7 := le.Uint64(s[48:]), le.Uint64(s[56:])
		d := dst[i-64 : i : i]
		le.PutUint64(d[56:], w7)
		le.PutUint64(d[48:], w6)
		le.PutUint64(d[40:], w5)
		le.PutUint64(d[32:], w4)
		le.PutUint64(d[24:], w3)
		le.PutUint64(d[16:], w2)
		le.PutUint64(d[8:], w1)
		le.PutUint64(d[0:], w0)
	}
	backwardTail(dst[:i], src[:i])
	return n
}
