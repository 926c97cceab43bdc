package logger

import (
	"log/slog"
	"strings"
)

// New builds a logger from a textual level and a handler constructor, so the
// entry point can choose the output format (Cloud Run JSON, test discard).
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	return slog.New(handler(parseLevel(level)))
}

// parseLevel is forgiving: unknown or empty input falls back to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
