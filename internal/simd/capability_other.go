//go:build !amd64 && !arm64

package simd

func detectFeatures() cpuFeatures { return cpuFeatures{} }
