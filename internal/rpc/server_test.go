package rpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/chatroom"
	"github.com/chatcore/chatserver/internal/directory"
	"github.com/chatcore/chatserver/internal/metrics"
)

const bufSize = 1 << 20

func newTestClient(t *testing.T) (chatpb.ChatClient, func()) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	dir := directory.New()
	room := chatroom.New(logger, metrics.NoopCollector{})
	srv := New(logger, dir, room, metrics.NoopCollector{})

	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ForceServerCodec(chatpb.Codec))
	chatpb.RegisterChatServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(chatpb.Codec)),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}

	cleanup := func() {
		_ = conn.Close()
		gs.Stop()
		room.Shutdown()
	}
	return chatpb.NewChatClient(conn), cleanup
}

func login(t *testing.T, client chatpb.ChatClient, user string) chatpb.LoginState {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.LogIn(ctx)
	if err != nil {
		t.Fatalf("LogIn: %v", err)
	}
	if err := stream.Send(&chatpb.LogInRequest{User: user}); err != nil {
		t.Fatalf("LogIn send: %v", err)
	}
	reply, err := stream.Recv()
	if err != nil {
		t.Fatalf("LogIn recv: %v", err)
	}
	return reply.Loginstate
}

func TestLogInSoloSuccess(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	if got := login(t, client, "Alice"); got != chatpb.LoginStateSuccess {
		t.Fatalf("expected SUCCESS, got %v", got)
	}
}

func TestLogInInvalidThenValidName(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.LogIn(ctx)
	if err != nil {
		t.Fatalf("LogIn: %v", err)
	}

	if err := stream.Send(&chatpb.LogInRequest{User: ""}); err != nil {
		t.Fatalf("send: %v", err)
	}
	reply, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if reply.Loginstate != chatpb.LoginStateInvalid {
		t.Fatalf("expected INVALID, got %v", reply.Loginstate)
	}

	if err := stream.Send(&chatpb.LogInRequest{User: "Bob"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	reply, err = stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if reply.Loginstate != chatpb.LoginStateSuccess {
		t.Fatalf("expected SUCCESS, got %v", reply.Loginstate)
	}
}

func TestLogInAlreadyOnline(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	if got := login(t, client, "Carol"); got != chatpb.LoginStateSuccess {
		t.Fatalf("expected SUCCESS, got %v", got)
	}
	if got := login(t, client, "Carol"); got != chatpb.LoginStateAlready {
		t.Fatalf("expected ALREADY, got %v", got)
	}
}

func TestListReflectsOnlineUsers(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	login(t, client, "Alice")
	login(t, client, "Bob")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	reply, err := client.List(ctx, &chatpb.ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if reply.List != "[Alice] [Bob]\n" && reply.List != "[Bob] [Alice]\n" {
		t.Fatalf("unexpected list output: %q", reply.List)
	}
}

func TestLogOutThenListOmitsUser(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	login(t, client, "Dave")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.LogOut(ctx, &chatpb.LogOutRequest{User: "Dave"}); err != nil {
		t.Fatalf("LogOut: %v", err)
	}

	reply, err := client.List(ctx, &chatpb.ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if reply.List != "\n" {
		t.Fatalf("expected empty list, got %q", reply.List)
	}
}

func TestSendMessageToUnknownRecipient(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stream, err := client.SendMessage(ctx)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if err := stream.Send(&chatpb.SendMessageRequest{
		Requeststate: chatpb.RequestStateInitial,
		Recipient:    "Ghost",
	}); err != nil {
		t.Fatalf("send: %v", err)
	}
	reply, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if reply.Recipientstate != chatpb.RecipientStateNoExist {
		t.Fatalf("expected NO_EXIST, got %v", reply.Recipientstate)
	}
}

func TestSendThenReceiveMessage(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	login(t, client, "Eve")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SendMessage(ctx)
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if err := stream.Send(&chatpb.SendMessageRequest{
		Requeststate: chatpb.RequestStateInitial,
		Recipient:    "Eve",
	}); err != nil {
		t.Fatalf("send initial: %v", err)
	}
	probe, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv probe: %v", err)
	}
	if probe.Recipientstate != chatpb.RecipientStateExist {
		t.Fatalf("expected EXIST, got %v", probe.Recipientstate)
	}

	if err := stream.Send(&chatpb.SendMessageRequest{
		Requeststate: chatpb.RequestStateProcessing,
		User:         "Frank",
		Recipient:    "Eve",
		Messages:     "hello there",
	}); err != nil {
		t.Fatalf("send payload: %v", err)
	}
	if _, err := stream.Recv(); err != nil {
		t.Fatalf("recv confirmation: %v", err)
	}

	rmClient, err := client.ReceiveMessage(ctx, &chatpb.ReceiveMessageRequest{User: "Eve"})
	if err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	reply, err := rmClient.Recv()
	if err != nil {
		t.Fatalf("recv message: %v", err)
	}
	if reply.Queuestate != chatpb.QueueStateNonEmpty {
		t.Fatalf("expected NON_EMPTY, got %v", reply.Queuestate)
	}
	if reply.Messages != "Message from Frank: hello there" {
		t.Fatalf("unexpected message body: %q", reply.Messages)
	}

	if _, err := rmClient.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected the stream to end after the last message, got %v", err)
	}
}

func TestReceiveMessageEmptyMailbox(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	login(t, client, "Grace")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rmClient, err := client.ReceiveMessage(ctx, &chatpb.ReceiveMessageRequest{User: "Grace"})
	if err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	reply, err := rmClient.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if reply.Queuestate != chatpb.QueueStateEmpty {
		t.Fatalf("expected EMPTY, got %v", reply.Queuestate)
	}
}

func TestChatBroadcastsToOtherParticipants(t *testing.T) {
	client, cleanup := newTestClient(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chatA, err := client.Chat(ctx)
	if err != nil {
		t.Fatalf("Chat A: %v", err)
	}
	chatB, err := client.Chat(ctx)
	if err != nil {
		t.Fatalf("Chat B: %v", err)
	}

	// Give the join goroutines a moment to register both endpoints before
	// broadcasting, since Join happens asynchronously relative to dial.
	time.Sleep(50 * time.Millisecond)

	if err := chatA.Send(&chatpb.ChatMessage{User: "A", Messages: "hi B"}); err != nil {
		t.Fatalf("send from A: %v", err)
	}

	recvDone := make(chan *chatpb.ChatMessage, 1)
	go func() {
		msg, err := chatB.Recv()
		if err != nil {
			recvDone <- nil
			return
		}
		recvDone <- msg
	}()

	select {
	case msg := <-recvDone:
		if msg == nil || msg.Messages != "hi B" {
			t.Fatalf("unexpected message received by B: %+v", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for B to receive A's broadcast")
	}
}
