// Package logger provides structured logging functionality for the demo programs.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/davidegreene/storelab/internal/config"
)

// Setup initializes the application's logging based on the provided
// configuration. It creates a structured JSON logger writing to stderr with
// the configured level, sets it as the default logger, and returns it.
//
// An invalid log level falls back to info after a warning; demo output goes
// to stdout, so the logger deliberately stays off that stream.
func Setup(cfg config.AppConfig) *slog.Logger {
	level, ok := ParseLevel(cfg.LogLevel)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel exposes the level mapping for callers that need the slog.Level
// without installing a default logger. Unknown names map to info and ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
