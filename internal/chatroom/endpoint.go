package chatroom

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/chatcore/chatserver/internal/chatpb"
)

// outBuffer bounds how far a single slow consumer's Chat stream may lag
// before its messages start being dropped. Broadcast is best-effort and
// must never block the sender on any one receiver.
const outBuffer = 64

var errEndpointBusy = errors.New("chatroom: endpoint send buffer full")

// Endpoint is the server-side handle to one live Chat stream. It is
// registered in a ChatRoom while the stream is open and exposes a
// non-blocking push used by the room's broadcaster.
type Endpoint struct {
	id  uuid.UUID
	out chan chatpb.ChatMessage

	// breaker trips after repeated failed pushes (a consistently stalled
	// consumer), so the broadcaster stops burning cycles retrying a dead
	// endpoint and instead evicts it.
	breaker *gobreaker.CircuitBreaker

	closeOnce sync.Once
	done      chan struct{}

	// mu serializes push's send against Close's close of out, so the two
	// never race on the same channel.
	mu     sync.Mutex
	closed bool
}

// NewEndpoint allocates a fresh, unregistered endpoint.
func NewEndpoint() *Endpoint {
	ep := &Endpoint{
		id:   uuid.New(),
		out:  make(chan chatpb.ChatMessage, outBuffer),
		done: make(chan struct{}),
	}
	ep.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "chat-endpoint-" + ep.id.String(),
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return ep
}

// ID identifies this endpoint; sender suppression during broadcast is by
// this identity, not by user name.
func (e *Endpoint) ID() uuid.UUID { return e.id }

// Out is the channel the owning Chat RPC handler drains to write messages
// to its client, in the order the broadcaster delivered them.
func (e *Endpoint) Out() <-chan chatpb.ChatMessage { return e.out }

// Done reports when the endpoint has been closed, so the handler's
// send-to-client loop can stop even if Out() is never drained again.
func (e *Endpoint) Done() <-chan struct{} { return e.done }

// push attempts a non-blocking delivery to this endpoint's buffer.
// delivered reports whether msg was actually enqueued; alive reports
// whether the endpoint's breaker is still closed/half-open, i.e. whether
// the caller (the room's broadcaster) should keep pushing to it at all.
func (e *Endpoint) push(msg chatpb.ChatMessage) (delivered, alive bool) {
	_, err := e.breaker.Execute(func() (any, error) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed {
			return nil, errEndpointBusy
		}
		select {
		case e.out <- msg:
			return nil, nil
		default:
			return nil, errEndpointBusy
		}
	})
	return err == nil, e.breaker.State() != gobreaker.StateOpen
}

// Close tears down the endpoint's buffer exactly once. Safe to call from
// both the owning handler's cleanup and the room's eviction path, and safe
// to race against a concurrent push: mu ensures Close never closes out out
// from under an in-flight send.
func (e *Endpoint) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
		e.mu.Lock()
		e.closed = true
		close(e.out)
		e.mu.Unlock()
	})
}
