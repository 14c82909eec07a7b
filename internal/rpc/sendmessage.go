package rpc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chatcore/chatserver/internal/chatpb"
)

// SendMessage runs the two-phase send protocol: an INITIAL request names a
// recipient and gets back EXIST or NO_EXIST; on EXIST, any number of
// PROCESSING requests each append to the recipient's mailbox and get back a
// per-message confirmation.
func (s *Server) SendMessage(stream chatpb.Chat_SendMessageServer) error {
	req, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	if req.Requeststate != chatpb.RequestStateInitial {
		return stream.Send(&chatpb.SendMessageReply{
			Recipientstate: chatpb.RecipientStateNoExist,
			Confirmation:   "expected an initial request naming a recipient",
		})
	}

	rec, exists := s.dir.Lookup(req.Recipient)
	if !exists {
		return stream.Send(&chatpb.SendMessageReply{
			Recipientstate: chatpb.RecipientStateNoExist,
			Confirmation:   fmt.Sprintf("no such user: %s", req.Recipient),
		})
	}

	if err := stream.Send(&chatpb.SendMessageReply{Recipientstate: chatpb.RecipientStateExist}); err != nil {
		return err
	}

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if req.Requeststate != chatpb.RequestStateProcessing {
			continue
		}

		msg := fmt.Sprintf("Message from %s: %s", req.User, req.Messages)
		if ok := rec.Mailbox.Append(msg); !ok {
			s.metrics.MailboxOverflow()
			s.logger.Warn("MAILBOX_OVERFLOW", slog.String("recipient", req.Recipient))
			if err := stream.Send(&chatpb.SendMessageReply{
				Recipientstate: chatpb.RecipientStateExist,
				Confirmation:   "mailbox full, message dropped",
			}); err != nil {
				return err
			}
			continue
		}

		s.metrics.MailboxAppend(rec.Mailbox.Len())
		if err := stream.Send(&chatpb.SendMessageReply{
			Recipientstate: chatpb.RecipientStateExist,
			Confirmation:   fmt.Sprintf("message delivered to %s", req.Recipient),
		}); err != nil {
			return err
		}
	}
}
