//go:build noasm

package pow2

// Next returns the smallest power of two >= n.
// Returns 1 for n < 2 and n itself when its top bit is set.
func Next(n uint) uint {
	return Smear(n)
}
