// Package server bootstraps the gRPC listener the chat RPCs run on: codec
// registration, logging/recovery interceptors, and OpenTelemetry stats,
// wired together the way infodancer-pop3d's cmd/pop3d/serve.go wires its
// listener and metrics server around a cancelable context.
package server

import (
	"context"
	"log/slog"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chatcore/chatserver/internal/chatpb"
)

// Server wraps a *grpc.Server bound to a configured address.
type Server struct {
	addr string
	grpc *grpc.Server
}

// New builds a Server registering chatServer under addr. Transport uses
// chatpb's JSON codec in place of protobuf wire encoding, logging and panic
// recovery run as chained interceptors, and otelgrpc instruments every
// call with a trace span.
func New(addr string, chatServer chatpb.ChatServer, logger *slog.Logger) *Server {
	recoveryOpts := []recovery.Option{
		recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.Error("RPC_PANIC", slog.Any("panic", p))
			return status.Errorf(codes.Internal, "internal error")
		}),
	}

	gs := grpc.NewServer(
		grpc.ForceServerCodec(chatpb.Codec),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpts...),
			logging.StreamServerInterceptor(interceptorLogger(logger)),
		),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpts...),
			logging.UnaryServerInterceptor(interceptorLogger(logger)),
		),
	)

	chatpb.RegisterChatServer(gs, chatServer)

	return &Server{addr: addr, grpc: gs}
}

// Start listens on the bound address and serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(lis) }()

	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// GRPCServer exposes the underlying *grpc.Server, e.g. for bufconn-backed
// tests that drive it through grpc.NewServer's own Serve/Stop rather than
// through Start.
func (s *Server) GRPCServer() *grpc.Server { return s.grpc }

func interceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
