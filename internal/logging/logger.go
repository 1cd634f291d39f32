// Package logging provides structured logging configuration using log/slog.
//
// Parse warnings (skipped samples, classifier fallbacks) flow through the
// default slog logger, so configuring it once in main is enough for the
// whole process.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format when the tool runs under a log collector and "text"
// format for interactive use.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
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

// WithFields returns a logger carrying consistent context through a
// multi-step operation.
//
// Usage:
//
//	parseLogger := logging.WithFields("run_id", runID, "file", name)
//	parseLogger.Info("parse started")
func WithFields(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}
