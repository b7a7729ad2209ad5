// Package mmap maps anonymous memory for off-heap vector buffers.
//
// Pages come straight from the operating system and go back on Close, not
// when the garbage collector gets around to it:
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//	buf := m.Bytes() // zero-filled, read-write
//
// Linux, macOS and the BSDs use mmap(2) and munmap(2). Windows uses
// VirtualAlloc and VirtualFree. Elsewhere MapAnon returns ErrUnsupported.
package mmap
