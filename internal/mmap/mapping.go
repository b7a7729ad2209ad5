package mmap

import "sync"

// Mapping owns one anonymous read-write region outside the Go heap.
type Mapping struct {
	mu  sync.Mutex
	buf []byte
}

// MapAnon maps size zero-filled bytes.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	buf, err := mapAnon(size)
	if err != nil {
		return nil, err
	}
	return &Mapping{buf: buf}, nil
}

// Bytes returns the region, or nil once closed. The slice must not be used
// after Close.
func (m *Mapping) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf
}

// Close releases the region. Calling it again returns nil.
func (m *Mapping) Close() error {
	m.mu.Lock()
	buf := m.buf
	m.buf = nil
	m.mu.Unlock()

	if buf == nil {
		return nil
	}
	return unmap(buf)
}
