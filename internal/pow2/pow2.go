package pow2

import "math/bits"

// topBit is the most significant bit of a uint on this platform.
const topBit = uint(1) << (bits.UintSize - 1)

// Smear returns the smallest power of two >= n using bit smearing.
// Returns 1 for n < 2 and n itself when its top bit is set.
func Smear(n uint) uint {
	if n < 2 {
		return 1
	}
	if n&topBit != 0 {
		return n
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	if bits.UintSize == 64 {
		n |= n >> 32
	}
	return n + 1
}

// IsPow2 reports whether n is a power of two.
func IsPow2(n uint) bool {
	return n != 0 && n&(n-1) == 0
}

// NextInt is Next for non-negative int counts.
// The second result is false when the rounded value does not fit in an int,
// in which case n is returned unchanged.
func NextInt(n int) (int, bool) {
	if n < 0 {
		return n, false
	}
	r := Next(uint(n))
	if r > uint(maxInt) {
		return n, false
	}
	return int(r), true
}

const maxInt = int(^uint(0) >> 1)
