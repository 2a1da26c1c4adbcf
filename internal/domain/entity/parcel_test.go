package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcel_ApplyStatus_HappyPath(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	p := &Parcel{Status: StatusPending}

	require.NoError(t, p.ApplyStatus(StatusPickedUp, "", now))
	assert.Equal(t, StatusPickedUp, p.Status)
	require.NotNil(t, p.PickedUpAt)
	assert.Equal(t, now, *p.PickedUpAt)

	later := now.Add(2 * time.Hour)
	require.NoError(t, p.ApplyStatus(StatusInTransit, "", later))
	require.NoError(t, p.ApplyStatus(StatusDelivered, "", later))
	require.NotNil(t, p.DeliveredAt)
	assert.Equal(t, later, *p.DeliveredAt)
}

func TestParcel_ApplyStatus_InvalidTransitionCarriesBothStatuses(t *testing.T) {
	p := &Parcel{Status: StatusDelivered}

	err := p.ApplyStatus(StatusPickedUp, "", time.Now())
	require.Error(t, err)

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, StatusDelivered, transitionErr.From)
	assert.Equal(t, StatusPickedUp, transitionErr.To)

	// Rejected transitions must not mutate the parcel.
	assert.Equal(t, StatusDelivered, p.Status)
}

func TestParcel_ApplyStatus_FailureReason(t *testing.T) {
	p := &Parcel{Status: StatusPending}
	require.NoError(t, p.ApplyStatus(StatusFailed, "recipient unreachable", time.Now()))
	assert.Equal(t, "recipient unreachable", p.FailureReason)

	p = &Parcel{Status: StatusPending}
	require.NoError(t, p.ApplyStatus(StatusFailed, "", time.Now()))
	assert.Equal(t, DefaultFailureReason, p.FailureReason)
}

func TestParcel_ApplyStatus_ReopenKeepsWriteOnceTimestamps(t *testing.T) {
	first := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	second := first.Add(6 * time.Hour)

	p := &Parcel{Status: StatusPending}
	require.NoError(t, p.ApplyStatus(StatusPickedUp, "", first))
	require.NoError(t, p.ApplyStatus(StatusFailed, "address not found", first))

	// Re-open and run the lifecycle again: pickedUpAt must keep its first value.
	require.NoError(t, p.ApplyStatus(StatusPending, "", second))
	require.NoError(t, p.ApplyStatus(StatusPickedUp, "", second))
	require.NotNil(t, p.PickedUpAt)
	assert.Equal(t, first, *p.PickedUpAt)
}

func TestNewTrackingNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^CPM-[0-9A-Z]+-[0-9A-Z]{6}$`)

	for range 50 {
		tn := NewTrackingNumber("CPM", time.Now())
		assert.Regexp(t, pattern, tn)
	}
}

func TestNewTrackingNumber_UsesPrefix(t *testing.T) {
	tn := NewTrackingNumber("xyz", time.Now())
	assert.Regexp(t, `^XYZ-`, tn)
}
