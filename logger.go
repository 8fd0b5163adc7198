package tiervec

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// resizeInfoInterval bounds how often resizes are logged at Info level.
// Every resize is still logged at Debug.
const resizeInfoInterval = 10 * time.Second

// Logger wraps slog.Logger with tiervec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	resizeInfo *rate.Sometimes
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger:     l,
		resizeInfo: &rate.Sometimes{First: 1, Interval: resizeInfoInterval},
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return newLogger(slog.New(handler))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return newLogger(slog.New(handler))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return newLogger(slog.New(handler))
}

// WithName adds a name field to the logger (useful to tell vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger:     l.Logger.With("vector", name),
		resizeInfo: l.resizeInfo,
	}
}

// ResizeEvent describes one grow or shrink of the tier set.
type ResizeEvent struct {
	Kind           ResizeKind
	FromTierCount  int
	ToTierCount    int
	ToTierCapacity int
	Length         int
	Duration       time.Duration
	ReservedBytes  int64
}

// LogResize logs a completed or failed resize.
func (l *Logger) LogResize(ev ResizeEvent, err error) {
	if err != nil {
		l.Warn("resize failed",
			"kind", ev.Kind.String(),
			"from_tiers", ev.FromTierCount,
			"to_tiers", ev.ToTierCount,
			"length", ev.Length,
			"error", err,
		)
		return
	}

	attrs := []any{
		"kind", ev.Kind.String(),
		"from_tiers", ev.FromTierCount,
		"to_tiers", ev.ToTierCount,
		"tier_capacity", ev.ToTierCapacity,
		"length", ev.Length,
		"bytes", ev.ReservedBytes,
		"duration", ev.Duration,
	}
	l.Debug("resize completed", attrs...)
	l.resizeInfo.Do(func() {
		l.Info("tier set resized", attrs...)
	})
}
