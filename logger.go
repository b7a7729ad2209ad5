package bytevec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vector-specific events.
// Only slow paths log; appends that fit in capacity never do.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithElemSize adds an elem_size field to the logger.
func (l *Logger) WithElemSize(elemSize int) *Logger {
	return &Logger{
		Logger: l.Logger.With("elem_size", elemSize),
	}
}

// LogRealloc logs a successful capacity change.
func (l *Logger) LogRealloc(op string, oldCap, newCap int) {
	l.Debug("buffer reallocated",
		"op", op,
		"old_capacity", oldCap,
		"new_capacity", newCap,
	)
}

// LogAllocFailure logs a failed capacity change.
func (l *Logger) LogAllocFailure(op string, capacity, requested int, err error) {
	l.Warn("allocation failed",
		"op", op,
		"capacity", capacity,
		"requested", requested,
		"error", err,
	)
}

// LogFree logs a buffer release.
func (l *Logger) LogFree(capacity int) {
	l.Debug("buffer freed",
		"capacity", capacity,
	)
}
