// Package simd provides the overlap-safe bulk byte mover used to open and
// close gaps inside a vector buffer.
//
// # Architecture
//
// The package uses a dispatch pattern with function pointers:
//
//  1. Public API (move.go): MoveForward, MoveBackward, Overlaps
//  2. Kernel pointers: installed once at init from the active ISA
//  3. Kernels (kernels.go): chunked loops sized to the ISA register width,
//     plus a scalar tail for the last partial chunk
//
// Every chunk is loaded completely before any byte of it is stored, the same
// order a vector register round-trip gives, so a chunk never reads bytes it
// has already overwritten as long as the walk direction matches the overlap.
//
// # Chunk Widths
//
// The kernels are portable Go: each chunk is moved as unrolled 64-bit word
// loads and stores, with no vector instructions. The ISA only picks how many
// words make up a chunk, matching that ISA's register width:
//
//	| ISA     | Chunk | Words per chunk |
//	|---------|-------|-----------------|
//	| generic | 16 B  | 2               |
//	| neon    | 16 B  | 2               |
//	| sve2    | 32 B  | 4               |
//	| avx2    | 32 B  | 4               |
//	| avx512  | 64 B  | 8               |
//
// The width is a tuning parameter, not a contract.
//
// # Direction
//
// MoveForward walks low to high and is correct when dst starts at or below
// src (erase: the tail slides down). MoveBackward walks high to low and is
// correct when dst starts at or above src (insert: the tail slides up).
// Callers know which case they are in, so there is no address-comparing mover.
//
// # Environment Override
//
// Set BYTEVEC_SIMD=generic|neon|sve2|avx2|avx512 to force a kernel width.
// Unavailable choices fall back to auto-detection.
//
// # Build Tags
//
// The noasm tag pins the generic kernels regardless of CPU features.
package simd
