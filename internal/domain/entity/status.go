package entity

import "slices"

// Status represents the lifecycle state of a parcel.
type Status string

const (
	// StatusPending is the initial status of a freshly booked parcel.
	StatusPending Status = "pending"
	// StatusPickedUp indicates the agent has collected the parcel.
	StatusPickedUp Status = "picked_up"
	// StatusInTransit indicates the parcel is on its way to the delivery address.
	StatusInTransit Status = "in_transit"
	// StatusDelivered is a terminal status: the parcel reached the customer.
	StatusDelivered Status = "delivered"
	// StatusFailed marks a failed delivery attempt. Failed parcels can be
	// re-opened back to pending.
	StatusFailed Status = "failed"
)

// allowedTransitions is the parcel state machine as an explicit directed
// graph. Anything absent from a row is rejected, including self-transitions.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusPickedUp, StatusFailed},
	StatusPickedUp:  {StatusInTransit, StatusFailed},
	StatusInTransit: {StatusDelivered, StatusFailed},
	StatusDelivered: {},
	StatusFailed:    {StatusPending},
}

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether s -> to is an allowed transition.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(allowedTransitions[s], to)
}

// AllowedTransitions returns the statuses reachable from s.
// The returned slice is a copy and safe to mutate.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(allowedTransitions[s])
}

// AllStatuses returns every valid parcel status.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusPickedUp, StatusInTransit, StatusDelivered, StatusFailed}
}
