// Package logging defines the structured, context-aware logger used across
// the service and its log/slog backed implementation.
package logging

import (
	"context"
	"io"
	"os"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are key-value pairs:
//
//	log.Info(ctx, "user signed up", "user_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// New builds a Logger writing to stdout. Format is "json" or "text"; level is
// one of debug, info, warn, error.
func New(level, format string) Logger {
	return newSlogLogger(os.Stdout, level, format)
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() Logger {
	return newSlogLogger(io.Discard, "error", "text")
}
