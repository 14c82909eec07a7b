package chatroom

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/metrics"
)

func newTestRoom() *ChatRoom {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger, metrics.NoopCollector{})
}

func recvWithTimeout(t *testing.T, ep *Endpoint) chatpb.ChatMessage {
	t.Helper()
	select {
	case msg, ok := <-ep.Out():
		if !ok {
			t.Fatalf("endpoint closed while waiting for a message")
		}
		return msg
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for broadcast message")
		return chatpb.ChatMessage{}
	}
}

func assertNoMessage(t *testing.T, ep *Endpoint) {
	t.Helper()
	select {
	case msg, ok := <-ep.Out():
		if ok {
			t.Fatalf("expected no message, got %+v", msg)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroadcastExcludesSender(t *testing.T) {
	room := newTestRoom()
	defer room.Shutdown()

	sender := NewEndpoint()
	other := NewEndpoint()
	room.Join(sender)
	room.Join(other)

	room.Broadcast(sender, chatpb.ChatMessage{User: "Alice", Messages: "hi"})

	got := recvWithTimeout(t, other)
	if got.User != "Alice" || got.Messages != "hi" {
		t.Fatalf("unexpected broadcast payload: %+v", got)
	}
	assertNoMessage(t, sender)
}

func TestJoinLeaveUpdatesSize(t *testing.T) {
	room := newTestRoom()
	defer room.Shutdown()

	ep := NewEndpoint()
	room.Join(ep)
	if room.Size() != 1 {
		t.Fatalf("expected size 1 after join, got %d", room.Size())
	}

	room.Leave(ep)
	if room.Size() != 0 {
		t.Fatalf("expected size 0 after leave, got %d", room.Size())
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	room := newTestRoom()
	defer room.Shutdown()

	ep := NewEndpoint()
	room.Join(ep)
	room.Leave(ep)
	room.Leave(ep)

	if room.Size() != 0 {
		t.Fatalf("expected size 0, got %d", room.Size())
	}
}

func TestThreeWayBroadcastFanOut(t *testing.T) {
	room := newTestRoom()
	defer room.Shutdown()

	a, b, c := NewEndpoint(), NewEndpoint(), NewEndpoint()
	room.Join(a)
	room.Join(b)
	room.Join(c)

	room.Broadcast(a, chatpb.ChatMessage{User: "A", Messages: "hello"})

	for _, ep := range []*Endpoint{b, c} {
		got := recvWithTimeout(t, ep)
		if got.Messages != "hello" {
			t.Fatalf("expected \"hello\", got %q", got.Messages)
		}
	}
	assertNoMessage(t, a)
}

func TestEndpointPushFullBufferDropsWithoutBlocking(t *testing.T) {
	ep := NewEndpoint()
	defer ep.Close()

	delivered := 0
	const attempts = outBuffer + 3 // stay under the breaker's trip threshold of 5 consecutive failures
	for i := 0; i < attempts; i++ {
		d, alive := ep.push(chatpb.ChatMessage{User: "x", Messages: "y"})
		if !alive {
			t.Fatalf("push %d: expected endpoint to remain alive under plain buffer pressure", i)
		}
		if d {
			delivered++
		}
	}

	if delivered != outBuffer {
		t.Fatalf("expected exactly %d delivered messages, got %d", outBuffer, delivered)
	}
}

func TestEndpointPushTripsBreakerAfterConsecutiveFailures(t *testing.T) {
	ep := NewEndpoint()
	defer ep.Close()

	for i := 0; i < outBuffer; i++ {
		if d, _ := ep.push(chatpb.ChatMessage{User: "x", Messages: "y"}); !d {
			t.Fatalf("push %d: expected buffer to still have room", i)
		}
	}

	var alive bool
	for i := 0; i < 5; i++ {
		_, alive = ep.push(chatpb.ChatMessage{User: "x", Messages: "y"})
	}

	if alive {
		t.Fatalf("expected breaker to trip after 5 consecutive failed pushes")
	}
}
