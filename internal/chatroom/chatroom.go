// Package chatroom implements the real-time chat broadcast fan-out: a
// registry of live chat endpoints, join/leave, and best-effort broadcast
// that excludes the sender's own endpoint.
//
// Broadcast runs through a dedicated broadcaster goroutine reading from a
// shared inbound bus, using watermill's in-process GoChannel pub/sub as
// that bus instead of a hand-rolled channel-of-channels. This decouples
// senders from per-endpoint delivery, with a real library behind the
// publish path.
package chatroom

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/chatcore/chatserver/internal/chatpb"
	"github.com/chatcore/chatserver/internal/logging"
	"github.com/chatcore/chatserver/internal/metrics"
)

const broadcastTopic = "chat.broadcast"

const senderHeader = "sender_id"

// ChatRoom is the set of active broadcast endpoints.
type ChatRoom struct {
	mu        sync.RWMutex
	endpoints map[uuid.UUID]*Endpoint

	bus     *gochannel.GoChannel
	logger  *slog.Logger
	metrics metrics.Collector
}

// New starts a ChatRoom, including its background broadcaster goroutine.
// Call Shutdown when the server stops to release the underlying bus.
func New(logger *slog.Logger, collector metrics.Collector) *ChatRoom {
	bus := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		logging.NewWatermillAdapter(logger),
	)

	cr := &ChatRoom{
		endpoints: make(map[uuid.UUID]*Endpoint),
		bus:       bus,
		logger:    logger,
		metrics:   collector,
	}

	// Subscribe once, up front: this is the "shared inbound channel" the
	// single broadcaster goroutine below drains. gochannel never errors on
	// Subscribe.
	msgs, _ := bus.Subscribe(context.Background(), broadcastTopic)
	go cr.runBroadcaster(msgs)

	return cr
}

// Join registers ep so it starts receiving broadcasts from other
// endpoints.
func (cr *ChatRoom) Join(ep *Endpoint) {
	cr.mu.Lock()
	cr.endpoints[ep.ID()] = ep
	size := len(cr.endpoints)
	cr.mu.Unlock()
	cr.metrics.ChatRoomSize(size)
}

// Leave removes ep from the room and closes its buffer. Idempotent.
func (cr *ChatRoom) Leave(ep *Endpoint) {
	cr.mu.Lock()
	_, present := cr.endpoints[ep.ID()]
	delete(cr.endpoints, ep.ID())
	size := len(cr.endpoints)
	cr.mu.Unlock()

	if present {
		cr.metrics.ChatRoomSize(size)
	}
	ep.Close()
}

// Broadcast publishes msg onto the shared bus to be fanned out to every
// endpoint except from. Publishing never blocks the sender on a slow
// receiver — gochannel's publish only hands off to the bus's own buffer.
func (cr *ChatRoom) Broadcast(from *Endpoint, msg chatpb.ChatMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		cr.logger.Error("CHAT_ENCODE_FAILED", slog.Any("error", err))
		return
	}

	wmsg := message.NewMessage(watermill.NewUUID(), payload)
	wmsg.Metadata.Set(senderHeader, from.ID().String())

	if err := cr.bus.Publish(broadcastTopic, wmsg); err != nil {
		cr.logger.Error("CHAT_PUBLISH_FAILED", slog.Any("error", err))
	}
}

// Size reports the current number of joined endpoints.
func (cr *ChatRoom) Size() int {
	cr.mu.RLock()
	defer cr.mu.RUnlock()
	return len(cr.endpoints)
}

// Shutdown stops the broadcaster and closes every remaining endpoint.
func (cr *ChatRoom) Shutdown() {
	cr.mu.Lock()
	endpoints := make([]*Endpoint, 0, len(cr.endpoints))
	for _, ep := range cr.endpoints {
		endpoints = append(endpoints, ep)
	}
	cr.endpoints = make(map[uuid.UUID]*Endpoint)
	cr.mu.Unlock()

	for _, ep := range endpoints {
		ep.Close()
	}
	_ = cr.bus.Close()
}

// runBroadcaster is the dedicated fan-out goroutine: the only place that
// ever iterates the endpoint set to deliver a message, so broadcasts
// arrive at any one endpoint in the order they were processed here.
func (cr *ChatRoom) runBroadcaster(msgs <-chan *message.Message) {
	for wmsg := range msgs {
		var cm chatpb.ChatMessage
		if err := json.Unmarshal(wmsg.Payload, &cm); err != nil {
			cr.logger.Error("CHAT_DECODE_FAILED", slog.Any("error", err))
			wmsg.Ack()
			continue
		}
		senderID := wmsg.Metadata.Get(senderHeader)

		cr.mu.RLock()
		targets := make([]*Endpoint, 0, len(cr.endpoints))
		for id, ep := range cr.endpoints {
			if id.String() == senderID {
				continue
			}
			targets = append(targets, ep)
		}
		cr.mu.RUnlock()

		for _, ep := range targets {
			delivered, alive := ep.push(cm)
			if !delivered {
				cr.metrics.BroadcastDropped()
			}
			if !alive {
				cr.Leave(ep)
			}
		}

		wmsg.Ack()
	}
}
