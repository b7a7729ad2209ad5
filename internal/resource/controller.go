package resource

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when an acquisition would pass the limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Controller is a byte budget shared by any number of vectors.
// A nil *Controller imposes no limit and tracks nothing.
type Controller struct {
	limit int64
	sem   *semaphore.Weighted // nil when unlimited

	used atomic.Int64
	peak atomic.Int64
}

// NewController returns a controller enforcing limit bytes.
// A limit <= 0 tracks usage without enforcing anything.
func NewController(limit int64) *Controller {
	if limit <= 0 {
		return &Controller{}
	}
	return &Controller{limit: limit, sem: semaphore.NewWeighted(limit)}
}

// Acquire charges n bytes, failing immediately instead of waiting when the
// budget is exhausted.
func (c *Controller) Acquire(n int64) error {
	if c == nil || n <= 0 {
		return nil
	}
	if c.sem != nil && !c.sem.TryAcquire(n) {
		return ErrMemoryLimitExceeded
	}
	c.notePeak(c.used.Add(n))
	return nil
}

// Release returns n bytes to the budget.
func (c *Controller) Release(n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.used.Add(-n)
	if c.sem != nil {
		c.sem.Release(n)
	}
}

func (c *Controller) notePeak(used int64) {
	for {
		p := c.peak.Load()
		if used <= p || c.peak.CompareAndSwap(p, used) {
			return
		}
	}
}

// Used returns the bytes currently charged.
func (c *Controller) Used() int64 {
	if c == nil {
		return 0
	}
	return c.used.Load()
}

// Peak returns the highest Used value observed.
func (c *Controller) Peak() int64 {
	if c == nil {
		return 0
	}
	return c.peak.Load()
}

// Limit returns the enforced limit, 0 if unlimited.
func (c *Controller) Limit() int64 {
	if c == nil {
		return 0
	}
	return c.limit
}
