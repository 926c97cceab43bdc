package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything. The level still applies so tests can
// exercise level-gated paths.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
