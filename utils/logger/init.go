package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger configures the process-wide structured logger. The level
// comes from LOG_LEVEL (default info).
func InitLogger() *slog.Logger {
	config := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, config))
	slog.SetDefault(Logger)

	return Logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SafeInfoContext logs at info level, tolerating an uninitialized
// logger (tests that never call InitLogger).
func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.InfoContext(ctx, msg, args...)
}

// SafeErrorContext logs at error level, tolerating an uninitialized
// logger.
func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	if Logger == nil {
		return
	}
	Logger.ErrorContext(ctx, msg, args...)
}
