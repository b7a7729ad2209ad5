//go:build !noasm

package pow2

import "math/bits"

// Next returns the smallest power of two >= n.
// Returns 1 for n < 2 and n itself when its top bit is set.
func Next(n uint) uint {
	if n < 2 {
		return 1
	}
	if n&topBit != 0 {
		return n
	}
	return uint(1) << bits.Len(n-1)
}
