// Package conv provides overflow-checked size arithmetic.
//
// Element counts are multiplied by element sizes before every allocation;
// a product that wraps would request a tiny buffer for a huge count, so
// these helpers report ErrOverflow instead.
package conv
