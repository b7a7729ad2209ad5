// Package resource implements the byte budget behind budgeted allocators.
//
// A weighted semaphore enforces the limit and atomic counters track usage
// and its peak. Acquire never blocks: a vector that cannot grow must fail
// that one operation and keep its previous buffer, so waiting for another
// vector to shrink is not an option.
//
//	budget := resource.NewController(64 << 20)
//	if err := budget.Acquire(4096); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer budget.Release(4096)
//
// All methods are safe for concurrent use and no-ops on a nil *Controller.
package resource
