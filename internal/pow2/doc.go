// Package pow2 implements the growth policy used by the vector: rounding an
// element count up to the next power of two.
//
// # Fast Path and Fallback
//
// Next uses math/bits, which the compiler lowers to a single leading-zero
// count (LZCNT/BSR on x86-64, CLZ on ARM64). Smear is the portable
// bit-smearing variant; building with the noasm tag routes Next through it.
//
// # Overflow
//
// A count whose top bit is already set cannot be rounded up without wrapping,
// so it is returned unchanged. Callers decide how much to allocate from the
// result, never whether to allocate.
package pow2
