// Package logging provides structured JSON logging for the backend.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a JSON slog logger at the given level.
// Supported levels: debug, info, warn, error.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler)
}

// WithComponent returns a logger tagged with a component attribute.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// WithVideo returns a logger tagged with the video being processed.
func WithVideo(logger *slog.Logger, videoName string) *slog.Logger {
	return logger.With("video_name", videoName)
}
