package rtree

import (
	"context"
	"log/slog"
	"os"
)

// Logger is a *slog.Logger with helpers for the structural events of a
// tree: splits, condensation, root collapse, bulk loads and finished
// queries. Structural events are logged at debug level.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON lines at or above level to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs human-readable lines at or above level to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything. It is the default of every tree.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimensions adds a dimensions field to the logger.
func (l *Logger) WithDimensions(dims int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimensions", dims),
	}
}

// LogSplit logs a node split. level is the height of the split node
// (1 for leaves).
func (l *Logger) LogSplit(ctx context.Context, level, sizeA, sizeB int) {
	l.DebugContext(ctx, "node split",
		"level", level,
		"size_a", sizeA,
		"size_b", sizeB,
	)
}

// LogCondense logs the removal of underflowing nodes during deletion.
func (l *Logger) LogCondense(ctx context.Context, removedNodes, reinserted int) {
	l.DebugContext(ctx, "tree condensed",
		"removed_nodes", removedNodes,
		"reinserted", reinserted,
	)
}

// LogRootCollapse logs a root with a single child being replaced by it.
func (l *Logger) LogRootCollapse(ctx context.Context, depth int) {
	l.DebugContext(ctx, "root collapsed",
		"depth", depth,
	)
}

// LogBulkLoad logs a bulk load.
func (l *Logger) LogBulkLoad(ctx context.Context, count, depth int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bulk load failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "bulk load completed",
			"count", count,
			"depth", depth,
		)
	}
}

// LogSearch logs the end of a query traversal.
func (l *Logger) LogSearch(ctx context.Context, kind string, emitted int, cancelled bool) {
	msg := "search completed"
	if cancelled {
		msg = "search cancelled"
	}
	l.DebugContext(ctx, msg, "kind", kind, "emitted", emitted)
}
