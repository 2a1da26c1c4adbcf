package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo_TableComplete(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:   {StatusPickedUp, StatusFailed},
		StatusPickedUp:  {StatusInTransit, StatusFailed},
		StatusInTransit: {StatusDelivered, StatusFailed},
		StatusDelivered: {},
		StatusFailed:    {StatusPending},
	}

	// Every (from, to) pair, including self-transitions, must match the table:
	// pairs in the table are allowed, every other pair is rejected.
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_SelfTransitionRejected(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.False(t, s.CanTransitionTo(s), "no-op update %s -> %s must be rejected", s, s)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.False(t, StatusFailed.IsTerminal(), "failed can be re-opened")
	assert.False(t, StatusPending.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("returned").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_AllowedTransitionsIsACopy(t *testing.T) {
	got := StatusPending.AllowedTransitions()
	got[0] = StatusDelivered

	assert.True(t, StatusPending.CanTransitionTo(StatusPickedUp))
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))
}
