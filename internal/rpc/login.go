package rpc

import (
	"errors"
	"io"
	"log/slog"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/directory"
)

// LogIn runs the login loop for one client: each LogInRequest is validated
// against the directory and answered with INVALID, ALREADY, or SUCCESS.
// The server ends the stream right after the first SUCCESS reply; a client
// that keeps retrying INVALID or ALREADY names simply keeps the stream
// open.
func (s *Server) LogIn(stream chatpb.Chat_LogInServer) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		outcome, rec := s.dir.Login(req.User)
		switch outcome {
		case directory.LoginInvalid:
			s.metrics.LoginAttempt("invalid")
			if err := stream.Send(&chatpb.LogInReply{Loginstate: chatpb.LoginStateInvalid}); err != nil {
				return err
			}
		case directory.LoginAlready:
			s.metrics.LoginAttempt("already")
			if err := stream.Send(&chatpb.LogInReply{Loginstate: chatpb.LoginStateAlready}); err != nil {
				return err
			}
		case directory.LoginSuccess:
			s.metrics.LoginAttempt("success")
			s.metrics.ActiveUsers(len(s.dir.SnapshotOnline()))
			s.logger.Info("LOGIN_SUCCESS", slog.String("user", rec.Name))
			return stream.Send(&chatpb.LogInReply{Loginstate: chatpb.LoginStateSuccess, User: rec.Name})
		}
	}
}
