package rpc

import "github.com/chatcore/chatserver/internal/chatpb"

// ReceiveMessage drains the caller's mailbox: if it is empty on entry, a
// single EMPTY reply ends the stream; otherwise every pending message is
// streamed out one at a time as NON_EMPTY replies until the mailbox is
// drained.
func (s *Server) ReceiveMessage(req *chatpb.ReceiveMessageRequest, stream chatpb.Chat_ReceiveMessageServer) error {
	rec, exists := s.dir.Lookup(req.User)
	if !exists {
		return stream.Send(&chatpb.ReceiveMessageReply{Queuestate: chatpb.QueueStateEmpty})
	}

	msg, ok := rec.Mailbox.PopOne()
	if !ok {
		return stream.Send(&chatpb.ReceiveMessageReply{Queuestate: chatpb.QueueStateEmpty})
	}

	for {
		if err := stream.Send(&chatpb.ReceiveMessageReply{
			Queuestate: chatpb.QueueStateNonEmpty,
			Messages:   msg,
		}); err != nil {
			return err
		}

		next, ok := rec.Mailbox.PopOne()
		if !ok {
			return nil
		}
		msg = next
	}
}
