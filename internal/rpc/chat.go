package rpc

import (
	"errors"
	"io"
	"log/slog"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/chatroom"
)

// Chat joins the caller into the broadcast room for the life of the
// stream: every message it sends is fanned out to every other joined
// endpoint, and every message fanned out to it (from anyone else) is
// written back to the client. The endpoint leaves the room, whichever side
// closes first.
func (s *Server) Chat(stream chatpb.Chat_ChatServer) error {
	ep := chatroom.NewEndpoint()
	s.room.Join(ep)
	s.logger.Info("CHAT_JOINED", slog.String("endpoint", ep.ID().String()))
	defer func() {
		s.room.Leave(ep)
		s.logger.Info("CHAT_LEFT", slog.String("endpoint", ep.ID().String()))
	}()

	recvErr := make(chan error, 1)
	go func() {
		for {
			in, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				recvErr <- nil
				return
			}
			if err != nil {
				recvErr <- err
				return
			}
			s.room.Broadcast(ep, chatpb.ChatMessage{User: in.User, Messages: in.Messages})
		}
	}()

	for {
		select {
		case err := <-recvErr:
			return err
		case msg, ok := <-ep.Out():
			if !ok {
				return nil
			}
			if err := stream.Send(&msg); err != nil {
				return err
			}
		case <-ep.Done():
			return nil
		}
	}
}
