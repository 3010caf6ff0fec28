package regress

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with benchmark-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithCase adds a case field to the logger.
func (l *Logger) WithCase(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("case", name),
	}
}

// LogRound logs a single benchmark round.
func (l *Logger) LogRound(ctx context.Context, round int, r Result) {
	l.DebugContext(ctx, "round completed",
		"round", round,
		"n", r.N,
		"ns_per_op", r.NsPerOp,
	)
}

// LogResult logs the recorded result of a case.
func (l *Logger) LogResult(ctx context.Context, r Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "benchmark failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "benchmark completed",
			"ns_per_op", r.NsPerOp,
			"allocs_per_op", r.AllocsPerOp,
		)
	}
}

// LogRegression logs a case that got slower than the baseline allows.
func (l *Logger) LogRegression(ctx context.Context, r Regression) {
	l.WarnContext(ctx, "regression detected",
		"case", r.Name,
		"old_ns_per_op", r.Old,
		"new_ns_per_op", r.New,
		"ratio", r.Ratio,
	)
}
