// Package realtime implements the room-based fan-out used to push parcel
// events to connected clients.
package realtime

import (
	"log/slog"
	"sync"

	"courier/internal/domain/service"

	"go.uber.org/fx"
)

// Hub is the in-process room registry and publisher. It tracks which
// subscribers belong to which rooms and fans events out to them. All methods
// are safe for concurrent use.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[service.Room]map[string]service.Subscriber
	logger *slog.Logger
}

// HubParams holds dependencies for the Hub, injected by Fx.
type HubParams struct {
	fx.In

	Logger *slog.Logger
}

// NewHub is the constructor for Hub.
func NewHub(params HubParams) *Hub {
	return &Hub{
		rooms:  make(map[service.Room]map[string]service.Subscriber),
		logger: params.Logger,
	}
}

// NewSubscriptionRegistry exposes the Hub as its registry interface.
func NewSubscriptionRegistry(hub *Hub) service.SubscriptionRegistry {
	return hub
}

// NewRealtimePublisher exposes the Hub as its publisher interface.
func NewRealtimePublisher(hub *Hub) service.RealtimePublisher {
	return hub
}

// Subscribe attaches the subscriber to a room. Subscribing twice to the same
// room is a no-op.
func (h *Hub) Subscribe(room service.Room, sub service.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[string]service.Subscriber)
		h.rooms[room] = members
	}
	members[sub.ID()] = sub
}

// Unsubscribe detaches the subscriber from a room. Unsubscribing a
// non-member is a no-op.
func (h *Hub) Unsubscribe(room service.Room, sub service.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(room, sub.ID())
}

// UnsubscribeAll detaches the subscriber from every room, used when a
// connection closes.
func (h *Hub) UnsubscribeAll(sub service.Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := sub.ID()
	for room := range h.rooms {
		h.removeLocked(room, id)
	}
}

// Publish fans an event out to every subscriber of a room. Delivery is best
// effort: Notify must not block, and a subscriber that cannot keep up simply
// misses the message.
func (h *Hub) Publish(room service.Room, event string, payload any) {
	h.mu.RLock()
	members := h.rooms[room]
	subs := make([]service.Subscriber, 0, len(members))
	for _, sub := range members {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		sub.Notify(room, event, payload)
	}

	h.logger.Debug("Event published",
		slog.String("room", string(room)),
		slog.String("event", event),
		slog.Int("subscribers", len(subs)),
	)
}

// RoomSize reports the current number of subscribers in a room.
func (h *Hub) RoomSize(room service.Room) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}

// removeLocked deletes a member and drops the room once empty. Caller holds mu.
func (h *Hub) removeLocked(room service.Room, id string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}

	delete(members, id)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}
