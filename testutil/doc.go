// Package testutil provides testing utilities for bytevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and helpers for encoding fixed-size elements.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	buf := make([]byte, 64)
//	rng.Fill(buf)
//
// # Element Encoding
//
//	elems := testutil.Uint32s(1, 2, 3)   // 12 bytes, little-endian
//	vals := testutil.DecodeUint32s(elems) // []uint32{1, 2, 3}
package testutil
