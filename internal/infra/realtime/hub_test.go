package realtime

import (
	"log/slog"
	"sync"
	"testing"

	"courier/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

// recordingSubscriber collects everything it is notified about.
type recordingSubscriber struct {
	id string

	mu     sync.Mutex
	events []string
}

func (r *recordingSubscriber) ID() string { return r.id }

func (r *recordingSubscriber) Notify(_ service.Room, event string, _ any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingSubscriber) received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.events...)
}

func newTestHub() *Hub {
	return NewHub(HubParams{Logger: slog.Default()})
}

func TestHub_PublishReachesRoomMembers(t *testing.T) {
	hub := newTestHub()
	inRoom := &recordingSubscriber{id: "a"}
	outside := &recordingSubscriber{id: "b"}

	hub.Subscribe(service.ParcelRoom(1), inRoom)
	hub.Subscribe(service.ParcelRoom(2), outside)

	hub.Publish(service.ParcelRoom(1), service.EventStatusUpdate, nil)

	assert.Equal(t, []string{service.EventStatusUpdate}, inRoom.received())
	assert.Empty(t, outside.received())
}

func TestHub_SubscribeIsIdempotent(t *testing.T) {
	hub := newTestHub()
	sub := &recordingSubscriber{id: "a"}

	hub.Subscribe(service.AdminRoom, sub)
	hub.Subscribe(service.AdminRoom, sub)

	assert.Equal(t, 1, hub.RoomSize(service.AdminRoom))

	hub.Publish(service.AdminRoom, service.EventNewParcel, nil)
	assert.Len(t, sub.received(), 1)
}

func TestHub_UnsubscribeNonMemberIsNoop(t *testing.T) {
	hub := newTestHub()
	member := &recordingSubscriber{id: "a"}
	stranger := &recordingSubscriber{id: "b"}

	hub.Subscribe(service.AdminRoom, member)
	hub.Unsubscribe(service.AdminRoom, stranger)

	assert.Equal(t, 1, hub.RoomSize(service.AdminRoom))
}

func TestHub_UnsubscribeAll(t *testing.T) {
	hub := newTestHub()
	sub := &recordingSubscriber{id: "a"}

	hub.Subscribe(service.AdminRoom, sub)
	hub.Subscribe(service.ParcelRoom(1), sub)
	hub.Subscribe(service.CustomerRoom(9), sub)

	hub.UnsubscribeAll(sub)

	assert.Equal(t, 0, hub.RoomSize(service.AdminRoom))
	assert.Equal(t, 0, hub.RoomSize(service.ParcelRoom(1)))
	assert.Equal(t, 0, hub.RoomSize(service.CustomerRoom(9)))
}

func TestHub_PublishToEmptyRoom(t *testing.T) {
	hub := newTestHub()

	// Must not panic or block.
	hub.Publish(service.ParcelRoom(404), service.EventLocationUpdate, nil)
}

func TestHub_ConcurrentSubscribePublish(t *testing.T) {
	hub := newTestHub()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		sub := &recordingSubscriber{id: string(rune('a' + i))}
		go func() {
			defer wg.Done()
			hub.Subscribe(service.AdminRoom, sub)
			hub.Unsubscribe(service.AdminRoom, sub)
		}()
		go func() {
			defer wg.Done()
			hub.Publish(service.AdminRoom, service.EventNewParcel, nil)
		}()
	}
	wg.Wait()
}
