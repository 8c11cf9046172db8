// Package logging wraps log/slog with the few helpers the hyperlath packages
// share. Library code never writes logs unless the caller injects a handler:
// the zero configuration is a logger that discards everything.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with hyperlath-specific field helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to handler. A nil handler yields Noop().
func New(handler slog.Handler) *Logger {
	if handler == nil {
		return Noop()
	}

	return &Logger{Logger: slog.New(handler)}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))}
}

// Or wraps l, falling back to Noop() when l is nil.
func Or(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}

	return &Logger{Logger: l}
}

// WithComponent tags every record with the emitting package.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{Logger: l.Logger.With("component", name)}
}

// LogIteration reports the outcome of an iterative numeric method.
func (l *Logger) LogIteration(ctx context.Context, method string, iterations int, residual float64, converged bool) {
	if !converged {
		l.WarnContext(ctx, "iteration did not converge",
			"method", method,
			"iterations", iterations,
			"residual", residual,
		)
		return
	}
	l.DebugContext(ctx, "iteration converged",
		"method", method,
		"iterations", iterations,
		"residual", residual,
	)
}
