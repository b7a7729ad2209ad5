package mem

import (
	"fmt"

	"github.com/hupe1980/bytevec/internal/conv"
	"github.com/hupe1980/bytevec/internal/resource"
)

// Budget charges every byte handed out by Base against a shared Controller.
// A request that would exceed the limit fails without touching Base.
type Budget struct {
	Base       Allocator
	Controller *resource.Controller
}

// NewBudget wraps base (Heap if nil) with the controller's memory limit.
func NewBudget(base Allocator, ctrl *resource.Controller) *Budget {
	if base == nil {
		base = NewHeap()
	}
	return &Budget{Base: base, Controller: ctrl}
}

// Allocate implements Allocator.
func (b *Budget) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	bytes := conv.IntToInt64(n)
	if err := b.Controller.Acquire(bytes); err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrOutOfMemory, n, err)
	}

	buf, err := b.Base.Allocate(n)
	if err != nil {
		b.Controller.Release(bytes)
		return nil, err
	}
	return buf, nil
}

// Reallocate implements Allocator. Only growth is charged up front;
// shrinking releases the difference once the base allocator succeeds.
func (b *Budget) Reallocate(buf []byte, n int) ([]byte, error) {
	if n < 0 {
		n = 0
	}

	delta := conv.IntToInt64(n) - conv.IntToInt64(len(buf))
	if delta > 0 {
		if err := b.Controller.Acquire(delta); err != nil {
			return nil, fmt.Errorf("%w: grow by %d bytes: %w", ErrOutOfMemory, delta, err)
		}
	}

	nb, err := b.Base.Reallocate(buf, n)
	if err != nil {
		if delta > 0 {
			b.Controller.Release(delta)
		}
		return nil, err
	}

	if delta < 0 {
		b.Controller.Release(-delta)
	}
	return nb, nil
}

// Free implements Allocator.
func (b *Budget) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	b.Base.Free(buf)
	b.Controller.Release(conv.IntToInt64(len(buf)))
}
