package octree

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with octree-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithDepth adds a depth field to the logger.
func (l *Logger) WithDepth(depth int) *Logger {
	return &Logger{
		Logger: l.Logger.With("depth", depth),
	}
}

// The helpers below run on the insert path, so they check the level before
// building attributes.

func (l *Logger) enabled(level slog.Level) bool {
	return l.Enabled(context.Background(), level)
}

// LogDroppedInsert logs a point rejected for lying outside the root bounds.
func (l *Logger) LogDroppedInsert(p Point) {
	if !l.enabled(slog.LevelDebug) {
		return
	}
	l.Debug("insert dropped: point outside root bounds",
		"id", p.ID,
		"x", p.X,
		"y", p.Y,
		"z", p.Z,
	)
}

// LogSubdivide logs a leaf turning into an internal node.
func (l *Logger) LogSubdivide(depth, points int) {
	if !l.enabled(slog.LevelDebug) {
		return
	}
	l.Debug("leaf subdivided",
		"depth", depth,
		"points", points,
	)
}

// LogDepthLimit logs a leaf that keeps more than capacity points because
// it reached the subdivision cutoff.
func (l *Logger) LogDepthLimit(depth, points, capacity int) {
	if !l.enabled(slog.LevelWarn) {
		return
	}
	l.Warn("leaf exceeds capacity at subdivision cutoff",
		"depth", depth,
		"points", points,
		"capacity", capacity,
	)
}

// LogClear logs a reset of the tree.
func (l *Logger) LogClear(points, nodes int) {
	l.Info("octree cleared",
		"points", points,
		"nodes", nodes,
	)
}

// LogBatch logs a batch query run.
func (l *Logger) LogBatch(ctx context.Context, queries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch query failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch query completed",
			"queries", queries,
		)
	}
}
