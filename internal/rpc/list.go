package rpc

import (
	"context"
	"strings"

	"github.com/chatcore/chatserver/internal/chatpb"
)

// List returns every currently online user, bracketed, space-separated,
// newline-terminated.
func (s *Server) List(ctx context.Context, req *chatpb.ListRequest) (*chatpb.ListReply, error) {
	names := s.dir.SnapshotOnline()

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("[")
		b.WriteString(name)
		b.WriteString("]")
	}
	b.WriteString("\n")

	return &chatpb.ListReply{List: b.String()}, nil
}
