package service

import (
	"fmt"
	"time"

	"courier/internal/domain/entity"
)

// Room is a logical broadcast channel keyed by audience: one per parcel, one
// per customer, and a shared admin room.
type Room string

// AdminRoom receives every back-office event.
const AdminRoom Room = "admin"

// ParcelRoom is the room for everyone tracking one parcel.
func ParcelRoom(parcelID uint) Room {
	return Room(fmt.Sprintf("parcel:%d", parcelID))
}

// CustomerRoom is the room for one customer's own bookings.
func CustomerRoom(customerID uint) Room {
	return Room(fmt.Sprintf("customer:%d", customerID))
}

// Event names pushed to subscribers.
const (
	EventNewParcel      = "newParcel"
	EventStatusUpdate   = "statusUpdate"
	EventLocationUpdate = "locationUpdate"
	EventAgentAssigned  = "agentAssigned"
)

// NewParcelPayload announces a freshly booked parcel.
type NewParcelPayload struct {
	Parcel    *entity.Parcel `json:"parcel"`
	Timestamp time.Time      `json:"timestamp"`
}

// StatusUpdatePayload announces a parcel status change.
type StatusUpdatePayload struct {
	ParcelID  uint           `json:"parcelId"`
	Status    entity.Status  `json:"status"`
	Parcel    *entity.Parcel `json:"parcel"`
	Timestamp time.Time      `json:"timestamp"`
}

// AgentAssignedPayload announces an agent assignment.
type AgentAssignedPayload struct {
	ParcelID  uint           `json:"parcelId"`
	Agent     *entity.User   `json:"agent"`
	Parcel    *entity.Parcel `json:"parcel"`
	Timestamp time.Time      `json:"timestamp"`
}

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationUpdatePayload announces a live position change during transit.
type LocationUpdatePayload struct {
	ParcelID  uint      `json:"parcelId"`
	Location  GeoPoint  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// Subscriber is one real-time client attached to rooms. Notify must never
// block: a subscriber that cannot keep up simply misses the message.
type Subscriber interface {
	// ID uniquely identifies the subscriber across rooms.
	ID() string

	// Notify delivers one event to the subscriber, best effort.
	Notify(room Room, event string, payload any)
}

// SubscriptionRegistry tracks which subscribers belong to which rooms.
// Subscribe is idempotent: double-subscribing the same subscriber to the
// same room is a no-op. Unsubscribing a non-member is also a no-op.
type SubscriptionRegistry interface {
	Subscribe(room Room, sub Subscriber)
	Unsubscribe(room Room, sub Subscriber)

	// UnsubscribeAll detaches the subscriber from every room, used when a
	// connection closes.
	UnsubscribeAll(sub Subscriber)
}

// RealtimePublisher fans an event out to every subscriber of a room.
// Publishing is fire-and-forget: it happens after the state change is
// persisted and a delivery failure never rolls anything back.
type RealtimePublisher interface {
	Publish(room Room, event string, payload any)
}
