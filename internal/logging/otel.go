package logging

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// NewOTelBridgedLogger returns a logger that writes every record both to
// stdout (the same text handler NewLogger would build) and into the OTel
// log pipeline via the otelslog bridge, matching
// webitel-im-delivery-service's use of go.opentelemetry.io/contrib/bridges/otelslog.
// The returned shutdown func flushes the SDK's LoggerProvider on exit.
func NewOTelBridgedLogger(level, serviceName string) (*slog.Logger, func(context.Context) error) {
	provider := sdklog.NewLoggerProvider()

	otelHandler := otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(provider))
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})

	logger := WithHandler(newFanoutHandler(textHandler, otelHandler))
	return logger, provider.Shutdown
}
