package bytevec

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is matched by every allocation failure.
	ErrAllocation = errors.New("bytevec: allocation failed")
	// ErrFreed is returned by mutations on a freed vector.
	ErrFreed = errors.New("bytevec: vector is freed")
	// ErrInvalidElemSize is returned for element sizes <= 0.
	ErrInvalidElemSize = errors.New("bytevec: element size must be positive")
	// ErrElementSize is returned when an element buffer does not hold whole elements.
	ErrElementSize = errors.New("bytevec: buffer length does not match element size")
)

// AllocationError describes a failed reallocation.
//
// errors.Is(err, ErrAllocation) reports true; the allocator's own error
// can be reached via errors.Unwrap.
type AllocationError struct {
	Op        string // Operation that needed the memory (e.g. "push_back").
	Requested int    // Requested capacity in elements.
	ElemSize  int
	cause     error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("bytevec: %s: allocating %d elements of %d bytes: %v", e.Op, e.Requested, e.ElemSize, e.cause)
}

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

func (e *AllocationError) Unwrap() error { return e.cause }
