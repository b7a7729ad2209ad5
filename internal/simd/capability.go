package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA identifies the instruction set whose register width sizes the move kernels.
type ISA uint8

const (
	// Generic is the portable fallback.
	Generic ISA = iota
	// NEON is ARM64 Advanced SIMD, 128-bit registers.
	NEON
	// SVE2 is ARM64 SVE2; kernels assume 256-bit vectors.
	SVE2
	// AVX2 is x86-64 AVX2, 256-bit registers.
	AVX2
	// AVX512 is x86-64 AVX-512 F+BW, 512-bit registers.
	AVX512
)

// EnvOverride is the environment variable consulted once at init to force an ISA.
const EnvOverride = "BYTEVEC_SIMD"

var isaNames = [...]string{
	Generic: "generic",
	NEON:    "neon",
	SVE2:    "sve2",
	AVX2:    "avx2",
	AVX512:  "avx512",
}

func (i ISA) String() string {
	if int(i) < len(isaNames) {
		return isaNames[i]
	}
	return "unknown"
}

// ParseISA maps a case-insensitive name to an ISA.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range isaNames {
		if name == s {
			return ISA(i), true
		}
	}
	return Generic, false
}

// cpuFeatures is the subset of CPU flags the kernel choice depends on.
type cpuFeatures struct {
	asimd    bool
	sve2     bool
	avx2     bool
	avx512f  bool
	avx512bw bool
}

func (f cpuFeatures) supports(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return f.asimd
	case SVE2:
		return f.sve2
	case AVX2:
		return f.avx2
	case AVX512:
		return f.avx512f && f.avx512bw
	}
	return false
}

// best returns the widest supported ISA. Apple cores prefer NEON even
// when SVE2 is reported.
func (f cpuFeatures) best(goos string) ISA {
	order := []ISA{AVX512, AVX2, SVE2, NEON}
	for _, isa := range order {
		if isa == SVE2 && goos == "darwin" {
			continue
		}
		if f.supports(isa) {
			return isa
		}
	}
	return Generic
}

// selectISA applies an override name on top of auto-detection. An unknown
// or unsupported override is ignored; the second result reports whether
// the override took effect.
func selectISA(f cpuFeatures, goos, override string) (ISA, bool) {
	if override != "" {
		if isa, ok := ParseISA(override); ok && f.supports(isa) {
			return isa, true
		}
	}
	return f.best(goos), false
}

// Written once in init, read-only afterwards.
var (
	features   cpuFeatures
	activeISA  ISA
	overridden bool
)

func init() {
	features = detectFeatures()
	activeISA, overridden = selectISA(features, runtime.GOOS, os.Getenv(EnvOverride))
	installKernels(activeISA)
}

// ActiveISA returns the ISA the installed kernels were chosen for.
func ActiveISA() ISA { return activeISA }

// IsOverridden reports whether BYTEVEC_SIMD picked the active ISA.
func IsOverridden() bool { return overridden }

// Supports reports whether this CPU can run kernels for isa.
func Supports(isa ISA) bool { return features.supports(isa) }
