package bytevec

import (
	"github.com/hupe1980/bytevec/internal/mem"
	"github.com/hupe1980/bytevec/internal/resource"
)

// Allocator provides and releases vector buffers.
//
// Implementations must return buffers of exactly the requested length, and a
// failed Reallocate must leave the old buffer untouched and owned by the caller.
// Allocators may be shared between vectors and must then be safe for concurrent use.
type Allocator interface {
	// Allocate returns a buffer of exactly n bytes (nil for n == 0).
	Allocate(n int) ([]byte, error)
	// Reallocate returns a buffer of exactly n bytes holding the first
	// min(len(buf), n) bytes of buf.
	Reallocate(buf []byte, n int) ([]byte, error)
	// Free releases a buffer obtained from this allocator.
	Free(buf []byte)
}

// NewHeapAllocator returns the default allocator: 64-byte aligned Go heap buffers.
func NewHeapAllocator() Allocator {
	return mem.NewHeap()
}

// NewOffHeapAllocator returns an allocator backing each buffer with an
// anonymous memory mapping, released to the OS as soon as it is freed.
func NewOffHeapAllocator() Allocator {
	return mem.NewOffHeap()
}

// BudgetAllocator limits the bytes held by all vectors sharing it.
// Requests beyond the limit fail as allocation errors.
type BudgetAllocator struct {
	budget *mem.Budget
	ctrl   *resource.Controller
}

// NewBudgetAllocator wraps base (heap if nil) with a byte limit.
// A limit of 0 only tracks usage.
func NewBudgetAllocator(base Allocator, limitBytes int64) *BudgetAllocator {
	ctrl := resource.NewController(limitBytes)
	return &BudgetAllocator{
		budget: mem.NewBudget(base, ctrl),
		ctrl:   ctrl,
	}
}

// Allocate implements Allocator.
func (b *BudgetAllocator) Allocate(n int) ([]byte, error) { return b.budget.Allocate(n) }

// Reallocate implements Allocator.
func (b *BudgetAllocator) Reallocate(buf []byte, n int) ([]byte, error) {
	return b.budget.Reallocate(buf, n)
}

// Free implements Allocator.
func (b *BudgetAllocator) Free(buf []byte) { b.budget.Free(buf) }

// Usage returns the bytes currently held.
func (b *BudgetAllocator) Usage() int64 { return b.ctrl.Used() }

// HighWaterMark returns the largest usage observed.
func (b *BudgetAllocator) HighWaterMark() int64 { return b.ctrl.Peak() }

// Limit returns the configured limit (0 if unlimited).
func (b *BudgetAllocator) Limit() int64 { return b.ctrl.Limit() }
