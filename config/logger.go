package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the application logger. Production deployments emit JSON
// for the log pipeline; everywhere else a human-readable text handler is used.
// LOG_LEVEL selects the minimum level (debug, info, warn, error; default info).
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
