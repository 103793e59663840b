package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

const serviceName = "shop-service"

// slogLogger is the Logger used everywhere outside tests. Every record carries
// the service name; the level floor is fixed when the logger is built.
type slogLogger struct {
	base *slog.Logger
}

func newSlogLogger(w io.Writer, level, format string) *slogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	}

	return &slogLogger{base: slog.New(h).With("service", serviceName)}
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{base: l.base.With(args...)}
}

func (l *slogLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if !l.base.Enabled(ctx, level) {
		return
	}
	l.base.Log(ctx, level, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
