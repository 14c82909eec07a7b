package rpc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chatcore/chatserver/internal/chatpb"
)

// LogOut flips the named user offline. It never fails on an unknown or
// already-offline name — logout is idempotent.
func (s *Server) LogOut(ctx context.Context, req *chatpb.LogOutRequest) (*chatpb.LogOutReply, error) {
	s.dir.Logout(req.User)
	s.metrics.ActiveUsers(len(s.dir.SnapshotOnline()))
	s.logger.Info("LOGOUT", slog.String("user", req.User))
	return &chatpb.LogOutReply{Confirmation: fmt.Sprintf("%s logged out", req.User)}, nil
}
