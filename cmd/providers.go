package cmd

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/chatroom"
	"github.com/chatcore/chatserver/internal/config"
	"github.com/chatcore/chatserver/internal/directory"
	"github.com/chatcore/chatserver/internal/logging"
	"github.com/chatcore/chatserver/internal/metrics"
	"github.com/chatcore/chatserver/internal/opshttp"
	"github.com/chatcore/chatserver/internal/rpc"
	"github.com/chatcore/chatserver/internal/server"
)

// ProvideConfig loads and validates the configuration for fx to share
// across every other provider.
func ProvideConfig(path string) (*config.Loader, error) {
	logger := logging.NewLogger("info")
	loader, err := config.NewLoader(path, logger)
	if err != nil {
		return nil, err
	}
	if path != "" {
		loader.Watch(nil)
	}
	return loader, nil
}

// ProvideLogger builds the process logger, bridged into OpenTelemetry when
// tracing is enabled.
func ProvideLogger(loader *config.Loader) *slog.Logger {
	cfg := loader.Current()
	if cfg.Tracing.Enabled {
		logger, _ := logging.NewOTelBridgedLogger(cfg.LogLevel, cfg.Tracing.ServiceName)
		return logger
	}
	return logging.NewLogger(cfg.LogLevel)
}

// ProvideRegistry supplies the Prometheus registry backing both the
// metrics collector and the ops HTTP /metrics endpoint.
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvideMetricsCollector wires the collector every RPC handler and the
// ChatRoom report observations to.
func ProvideMetricsCollector(reg *prometheus.Registry) metrics.Collector {
	return metrics.NewPrometheusCollector(reg)
}

// ProvideDirectory supplies the process-wide user directory.
func ProvideDirectory() *directory.UserDirectory {
	return directory.New()
}

// ProvideChatRoom supplies the process-wide broadcast room.
func ProvideChatRoom(logger *slog.Logger, collector metrics.Collector) *chatroom.ChatRoom {
	return chatroom.New(logger, collector)
}

// ProvideChatServer assembles the six RPC handlers behind the
// chatpb.ChatServer interface.
func ProvideChatServer(logger *slog.Logger, dir *directory.UserDirectory, room *chatroom.ChatRoom, collector metrics.Collector) chatpb.ChatServer {
	return rpc.New(logger, dir, room, collector)
}

// ProvideGRPCServer builds the gRPC listener around chatServer.
func ProvideGRPCServer(loader *config.Loader, chatServer chatpb.ChatServer, logger *slog.Logger) *server.Server {
	cfg := loader.Current()
	return server.New(cfg.GRPC.Address, chatServer, logger)
}

// ProvideOpsServer builds the /healthz and /metrics HTTP mux, or nil when
// ops is disabled in configuration.
func ProvideOpsServer(loader *config.Loader, reg *prometheus.Registry) *opshttp.Server {
	cfg := loader.Current()
	if !cfg.Ops.Enabled {
		return nil
	}
	return opshttp.New(cfg.Ops.Address, reg)
}
