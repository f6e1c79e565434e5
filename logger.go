package bitvec

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitvec-specific helpers.
// The core kernels never log; Batch and the persistence layer do.
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

// WithName adds a buffer name field.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithBuffer adds the length and endianness of b.
func (l *Logger) WithBuffer(b *Buffer) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", b.Len(), "endian", b.Endianness().String()),
	}
}

// LogBatch logs a completed batch of pairwise reductions.
func (l *Logger) LogBatch(ctx context.Context, op string, buffers, pairs int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"buffers", buffers,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "batch completed",
		"op", op,
		"buffers", buffers,
		"pairs", pairs,
		"elapsed", elapsed,
	)
}

// LogSave logs a persisted buffer.
func (l *Logger) LogSave(ctx context.Context, name string, bits int64, frameBytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"bits", bits,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "save completed",
		"name", name,
		"bits", bits,
		"frame_bytes", frameBytes,
	)
}

// LogLoad logs a loaded buffer.
func (l *Logger) LogLoad(ctx context.Context, name string, frameBytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "load completed",
		"name", name,
		"frame_bytes", frameBytes,
	)
}

// LogDelete logs a removed buffer.
func (l *Logger) LogDelete(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "delete failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "delete completed", "name", name)
}
