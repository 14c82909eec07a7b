// Package logging builds the server's structured logger: a single
// *slog.Logger constructed at process start and threaded through every
// constructor (never a package-level global), the way
// webitel-im-delivery-service wires slog.Logger into its services and
// handlers.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the base logger for the given level ("debug", "info",
// "warn", "error"; unrecognized values fall back to "info", matching
// infodancer-pop3d's config.LogLevel convention).
func NewLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

// WithHandler returns a logger built directly from an arbitrary
// slog.Handler, used by NewOTelBridgedLogger to install the fan-out
// handler built in otel.go.
func WithHandler(h slog.Handler) *slog.Logger {
	return slog.New(h)
}

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
