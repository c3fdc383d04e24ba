package bitgrid

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitgrid-specific context.
// This provides structured logging with consistent field names.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithShape adds the grid shape to the logger.
func (l *Logger) WithShape(s Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", s.String()),
	}
}

// WithKind adds the storage backend to the logger.
func (l *Logger) WithKind(k Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// LogTableBuild logs the construction of a shape's tables.
func (l *Logger) LogTableBuild(ctx context.Context, s Shape, k Kind, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table build failed",
			"shape", s.String(),
			"kind", k.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "table build completed",
			"shape", s.String(),
			"kind", k.String(),
			"squares", s.Squares(),
			"duration", took,
		)
	}
}

// LogCacheEvict logs the eviction of a shape's tables from a cache.
func (l *Logger) LogCacheEvict(ctx context.Context, s Shape, k Kind) {
	l.DebugContext(ctx, "tables evicted",
		"shape", s.String(),
		"kind", k.String(),
	)
}
