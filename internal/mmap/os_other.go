//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package mmap

func mapAnon(int) ([]byte, error) { return nil, ErrUnsupported }

func unmap([]byte) error { return nil }
