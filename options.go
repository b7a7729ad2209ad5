package bytevec

// DefaultInitialCapacity is the capacity of the first push-back allocation.
const DefaultInitialCapacity = 8

type options struct {
	allocator        Allocator
	initialCapacity  int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		allocator:        NewHeapAllocator(),
		initialCapacity:  DefaultInitialCapacity,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Vector.
type Option func(*options)

// WithAllocator sets the allocator backing the buffer.
//
// If nil is passed, the heap allocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = NewHeapAllocator()
		}
		o.allocator = a
	}
}

// WithInitialCapacity sets the capacity of the first push-back growth.
// Values below 1 are treated as 1.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.initialCapacity = n
	}
}

// WithLogger sets the logger for growth, shrink, failure and free events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
