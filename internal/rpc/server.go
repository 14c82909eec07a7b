// Package rpc implements the six chat operations as methods on Server,
// which satisfies chatpb.ChatServer. Each RPC method runs as a goroutine
// the grpc-go runtime schedules per call — there is no completion-queue
// polling loop or explicit CREATE/PROCESS/FINISH switch: a handler's own
// function frame holds its per-call state, and returning from it ends the
// call, whether by normal completion, a Recv/Send error, or peer
// cancellation.
package rpc

import (
	"log/slog"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/chatroom"
	"github.com/chatcore/chatserver/internal/directory"
	"github.com/chatcore/chatserver/internal/metrics"
)

// Server implements chatpb.ChatServer against a UserDirectory and a
// ChatRoom.
type Server struct {
	chatpb.UnimplementedChatServer

	logger  *slog.Logger
	dir     *directory.UserDirectory
	room    *chatroom.ChatRoom
	metrics metrics.Collector
}

// New builds a Server. dir and room are shared with the rest of the
// process (e.g. cmd's lifecycle hook shuts room down on stop); metrics may
// be metrics.NoopCollector{} when metrics are disabled.
func New(logger *slog.Logger, dir *directory.UserDirectory, room *chatroom.ChatRoom, collector metrics.Collector) *Server {
	return &Server{
		logger:  logger,
		dir:     dir,
		room:    room,
		metrics: collector,
	}
}
