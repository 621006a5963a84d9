// Package observability provides logging and metrics.
package observability

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger instance used throughout the
// application. It writes JSON records to stdout.
var Logger *slog.Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Logger = slog.New(handler)
}

// SetLevel replaces the global logger with one at the given level.
func SetLevel(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Logger = slog.New(handler)
}
