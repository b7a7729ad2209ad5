//go:build noasm

package simd

func installKernels(ISA) {
	setKernels(kernelsFor(Generic))
}
