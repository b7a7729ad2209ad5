package bytevec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Only slow paths report: reallocations, gap moves and frees.
type MetricsCollector interface {
	// RecordRealloc is called after every capacity change attempt.
	// err is nil if successful.
	RecordRealloc(oldCap, newCap int, duration time.Duration, err error)

	// RecordMove is called after insert/erase relocated a tail of the buffer.
	RecordMove(bytes int)

	// RecordFree is called when a buffer is released.
	RecordFree(capacity int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRealloc(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMove(int)                               {}
func (NoopMetricsCollector) RecordFree(int)                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between vectors.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	ShrinkCount       atomic.Int64
	ReallocErrors     atomic.Int64
	ReallocTotalNanos atomic.Int64
	MoveCount         atomic.Int64
	BytesMoved        atomic.Int64
	FreeCount         atomic.Int64
}

// RecordRealloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRealloc(oldCap, newCap int, duration time.Duration, err error) {
	b.ReallocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReallocErrors.Add(1)
		return
	}
	if newCap > oldCap {
		b.GrowCount.Add(1)
	} else {
		b.ShrinkCount.Add(1)
	}
}

// RecordMove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMove(bytes int) {
	b.MoveCount.Add(1)
	b.BytesMoved.Add(int64(bytes))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(int) {
	b.FreeCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:      b.GrowCount.Load(),
		ShrinkCount:    b.ShrinkCount.Load(),
		ReallocErrors:  b.ReallocErrors.Load(),
		ReallocAvgNano: b.getAvgReallocNanos(),
		MoveCount:      b.MoveCount.Load(),
		BytesMoved:     b.BytesMoved.Load(),
		FreeCount:      b.FreeCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReallocNanos() int64 {
	count := b.GrowCount.Load() + b.ShrinkCount.Load() + b.ReallocErrors.Load()
	if count == 0 {
		return 0
	}
	return b.ReallocTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount      int64
	ShrinkCount    int64
	ReallocErrors  int64
	ReallocAvgNano int64
	MoveCount      int64
	BytesMoved     int64
	FreeCount      int64
}
