package helpers

import (
	"context"
	"log/slog"

	"github.com/lucasmbarros/wallet-backend/pkg/logger"
)

// TestCtx returns a context carrying a discard logger, so code that pulls a
// logger from context can run in tests without emitting output.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), slog.New(logger.NewTestHandler(slog.LevelDebug)))
}
