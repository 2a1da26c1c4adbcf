package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// ErrParcelNotFound is returned when a parcel does not exist.
var ErrParcelNotFound = errors.New("parcel not found")

// ErrDuplicateTrackingNumber is returned when the tracking number unique
// index rejects an insert. Tracking numbers are generated probabilistically,
// so this is the backstop for the same-millisecond collision case.
var ErrDuplicateTrackingNumber = errors.New("duplicate tracking number")

// ParcelFilter narrows a parcel listing. Nil fields are ignored.
type ParcelFilter struct {
	Status     *entity.Status
	CustomerID *uint
	AgentID    *uint
}

// ParcelRepository defines persistence operations over parcels.
// Reads preload the customer and agent references.
type ParcelRepository interface {
	// Create persists a new parcel and fills in the generated fields.
	// Returns ErrDuplicateTrackingNumber on a tracking number collision.
	Create(ctx context.Context, parcel *entity.Parcel) error

	// FindByID retrieves a parcel by its numeric ID.
	// Returns ErrParcelNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Parcel, error)

	// FindByTrackingNumber retrieves a parcel by its tracking number.
	// Returns ErrParcelNotFound when absent.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Parcel, error)

	// List returns parcels matching the filter, newest first.
	List(ctx context.Context, filter ParcelFilter) ([]*entity.Parcel, error)

	// Update persists changes to an existing parcel.
	Update(ctx context.Context, parcel *entity.Parcel) error

	// Delete removes a parcel permanently.
	Delete(ctx context.Context, id uint) error
}
