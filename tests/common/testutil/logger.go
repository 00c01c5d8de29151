//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger swallows all output so tests stay quiet.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
