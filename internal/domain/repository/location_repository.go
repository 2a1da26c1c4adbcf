package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// ErrNoLocationRecorded is returned when a parcel has no tracking history yet.
var ErrNoLocationRecorded = errors.New("no location recorded")

// LocationRepository defines persistence operations over the append-only
// parcel tracking history. There are intentionally no update or delete
// operations.
type LocationRepository interface {
	// Append writes one GPS ping for a parcel.
	Append(ctx context.Context, location *entity.Location) error

	// History returns all pings for a parcel, newest first.
	History(ctx context.Context, parcelID uint) ([]*entity.Location, error)

	// Latest returns the most recent ping for a parcel.
	// Returns ErrNoLocationRecorded when the history is empty.
	Latest(ctx context.Context, parcelID uint) (*entity.Location, error)
}
