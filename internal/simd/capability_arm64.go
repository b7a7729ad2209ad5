//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func detectFeatures() cpuFeatures {
	return cpuFeatures{
		asimd: cpu.ARM64.HasASIMD,
		sve2:  cpu.ARM64.HasSVE2,
	}
}
