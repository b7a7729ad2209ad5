package bytevec

import (
	"time"

	"github.com/hupe1980/bytevec/internal/pow2"
)

// Operation names used in errors, logs and metrics.
const (
	opReserve     = "reserve"
	opShrinkToFit = "shrink_to_fit"
	opResize      = "resize"
	opPushBack    = "push_back"
	opInsertRange = "insert_range"
)

// Free releases the buffer, zeroes length and capacity and marks the vector
// StatusFreed. Calling Free again is a no-op.
func (v *Vector) Free() {
	if v.status == StatusFreed {
		return
	}

	capacity := v.capacity
	v.alloc.Free(v.data)
	v.data = nil
	v.size = 0
	v.capacity = 0
	v.status = StatusFreed

	v.metrics.RecordFree(capacity)
	v.logger.LogFree(capacity)
}

// Close implements io.Closer by calling Free. It always returns nil.
func (v *Vector) Close() error {
	v.Free()
	return nil
}

// Reinit returns the vector to the freshly initialized state with a new
// element size, releasing any buffer it still holds. It is the only valid
// way to reuse a freed vector.
func (v *Vector) Reinit(elemSize int) error {
	if elemSize <= 0 {
		return ErrInvalidElemSize
	}

	if v.status != StatusFreed {
		v.Free()
	}

	v.data = nil
	v.elemSize = elemSize
	v.size = 0
	v.capacity = 0
	v.status = StatusOK
	v.logger = v.baseLogger.WithElemSize(elemSize)
	return nil
}

// Reserve ensures Cap() >= n without changing Len(). Growth allocates exactly
// n elements. On failure the vector is unchanged and the status is
// StatusAllocationError.
func (v *Vector) Reserve(n int) error {
	if v.status == StatusFreed {
		return ErrFreed
	}
	if n <= v.capacity {
		return nil
	}
	return v.reallocate(opReserve, n)
}

// ShrinkToFit reallocates the buffer down to exactly Len() elements.
// A vector with no elements releases its buffer entirely.
func (v *Vector) ShrinkToFit() error {
	if v.status == StatusFreed {
		return ErrFreed
	}
	if v.size >= v.capacity {
		return nil
	}
	return v.reallocate(opShrinkToFit, v.size)
}

// Resize sets Len() to n. Within capacity this is bookkeeping only: newly
// exposed elements hold whatever bytes the buffer already had. Beyond
// capacity the buffer grows to the next power of two >= n first; on failure
// neither Len nor Cap changes. Negative n is ignored.
func (v *Vector) Resize(n int) error {
	if n >= 0 && n <= v.capacity {
		v.size = n
		return nil
	}
	return v.resizeSlow(n)
}

//go:noinline
func (v *Vector) resizeSlow(n int) error {
	if v.status == StatusFreed {
		return ErrFreed
	}
	if n < 0 {
		return nil
	}

	if err := v.reallocate(opResize, v.growTarget(n)); err != nil {
		return err
	}
	v.size = n
	return nil
}

// growTarget rounds a required element count up to a power of two, falling
// back to the exact count when the rounded buffer would not fit in an int.
func (v *Vector) growTarget(need int) int {
	target, ok := pow2.NextInt(need)
	if !ok {
		return need
	}
	if _, err := v.byteSize(target); err != nil {
		return need
	}
	return target
}

// reallocate moves the buffer to exactly newCap elements. It is the only
// place capacity changes after initialization.
func (v *Vector) reallocate(op string, newCap int) error {
	oldCap := v.capacity

	nbytes, err := v.byteSize(newCap)
	if err != nil {
		return v.allocFailed(op, newCap, 0, err)
	}

	start := time.Now()
	buf, err := v.alloc.Reallocate(v.data, nbytes)
	elapsed := time.Since(start)
	if err != nil {
		return v.allocFailed(op, newCap, elapsed, err)
	}

	v.data = buf
	v.capacity = newCap
	if v.size > newCap {
		v.size = newCap
	}

	v.metrics.RecordRealloc(oldCap, newCap, elapsed, nil)
	v.logger.LogRealloc(op, oldCap, newCap)
	return nil
}

func (v *Vector) allocFailed(op string, requested int, elapsed time.Duration, cause error) error {
	v.status = StatusAllocationError
	v.metrics.RecordRealloc(v.capacity, requested, elapsed, cause)
	v.logger.LogAllocFailure(op, v.capacity, requested, cause)
	return &AllocationError{Op: op, Requested: requested, ElemSize: v.elemSize, cause: cause}
}
