package bytevec

import (
	"github.com/hupe1980/bytevec/internal/conv"
)

// Vector is a growable array of fixed-size elements stored in one contiguous,
// exclusively owned byte buffer.
//
// Invariants, at every observable point:
//   - Len() <= Cap()
//   - len(data) == Cap()*ElemSize()
//   - a failed reallocation leaves data, Len and Cap unchanged
//
// A Vector must be created with New and released with Free (or Close).
// It is not safe for concurrent use.
type Vector struct {
	data     []byte
	elemSize int
	size     int
	capacity int
	status   Status

	initialCapacity int
	alloc           Allocator
	baseLogger      *Logger
	logger          *Logger
	metrics         MetricsCollector
}

// New initializes an empty vector of elemSize-byte elements.
// No memory is allocated until the first growth.
//
// Returns ErrInvalidElemSize if elemSize <= 0.
func New(elemSize int, opts ...Option) (*Vector, error) {
	if elemSize <= 0 {
		return nil, ErrInvalidElemSize
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Vector{
		elemSize:        elemSize,
		initialCapacity: o.initialCapacity,
		alloc:           o.allocator,
		baseLogger:      o.logger,
		logger:          o.logger.WithElemSize(elemSize),
		metrics:         o.metricsCollector,
	}, nil
}

// Len returns the number of populated elements.
func (v *Vector) Len() int { return v.size }

// Cap returns the number of allocated element slots.
func (v *Vector) Cap() int { return v.capacity }

// ElemSize returns the byte size of one element.
func (v *Vector) ElemSize() int { return v.elemSize }

// Status returns the sticky status of the last failure (or StatusFreed).
func (v *Vector) Status() Status { return v.status }

// ClearStatus resets an allocation error back to StatusOK.
// A freed vector stays freed.
func (v *Vector) ClearStatus() {
	if v.status == StatusAllocationError {
		v.status = StatusOK
	}
}

// Bytes returns the populated part of the buffer, Len()*ElemSize() bytes.
// The slice aliases the vector and is invalidated by any growth, shrink or free.
func (v *Vector) Bytes() []byte {
	n := v.size * v.elemSize
	return v.data[:n:n]
}

// At returns the bytes of element i, or nil if i is out of range.
// The slice aliases the vector like Bytes.
func (v *Vector) At(i int) []byte {
	if i < 0 || i >= v.size {
		return nil
	}
	off := i * v.elemSize
	end := off + v.elemSize
	return v.data[off:end:end]
}

// Set overwrites element i. It reports false, without writing, if i is out of
// range or elem is not exactly one element long.
func (v *Vector) Set(i int, elem []byte) bool {
	if i < 0 || i >= v.size || len(elem) != v.elemSize {
		return false
	}
	copy(v.data[i*v.elemSize:], elem)
	return true
}

// byteSize converts an element count into a buffer length.
func (v *Vector) byteSize(count int) (int, error) {
	return conv.ByteSize(count, v.elemSize)
}
