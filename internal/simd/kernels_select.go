//go:build !noasm

package simd

func installKernels(isa ISA) {
	setKernels(kernelsFor(isa))
}
