package cmd

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/chatcore/chatserver/internal/chatroom"
	"github.com/chatcore/chatserver/internal/config"
	"github.com/chatcore/chatserver/internal/opshttp"
	"github.com/chatcore/chatserver/internal/server"
	"github.com/chatcore/chatserver/internal/telemetry"
)

// NewApp wires the chat server's dependency graph for the given config
// file path (empty for defaults-plus-environment only).
func NewApp(configPath string) *fx.App {
	return fx.New(
		fx.Provide(
			func() (*config.Loader, error) { return ProvideConfig(configPath) },
			ProvideLogger,
			ProvideRegistry,
			ProvideMetricsCollector,
			ProvideDirectory,
			ProvideChatRoom,
			ProvideChatServer,
			ProvideGRPCServer,
			ProvideOpsServer,
		),
		fx.Invoke(registerLifecycle),
		fx.NopLogger,
	)
}

func registerLifecycle(lc fx.Lifecycle, loader *config.Loader, logger *slog.Logger, room *chatroom.ChatRoom, grpcSrv *server.Server, opsSrv *opshttp.Server) {
	cfg := loader.Current()

	var shutdownTracing func(context.Context) error
	if cfg.Tracing.Enabled {
		_, shutdown := telemetry.NewTracerProvider(cfg.Tracing.ServiceName)
		shutdownTracing = shutdown
	}

	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := grpcSrv.Start(ctx); err != nil && err != context.Canceled {
					logger.Error("GRPC_SERVER_STOPPED", slog.Any("error", err))
				}
			}()
			if opsSrv != nil {
				go func() {
					if err := opsSrv.Start(ctx); err != nil && err != context.Canceled {
						logger.Error("OPS_SERVER_STOPPED", slog.Any("error", err))
					}
				}()
			}
			logger.Info("CHATSERVER_STARTED", slog.String("grpc_address", cfg.GRPC.Address))
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			room.Shutdown()
			if shutdownTracing != nil {
				return shutdownTracing(stopCtx)
			}
			return nil
		},
	})
}
