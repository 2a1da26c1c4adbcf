package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// AddLocationInput represents one GPS ping reported for a parcel.
type AddLocationInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// LocationUsecase manages the append-only tracking history of parcels.
type LocationUsecase interface {
	// AddLocation appends a ping to the parcel's history and pushes the
	// same coordinates into the parcel's live position. A delivery agent
	// may only report for parcels assigned to them.
	AddLocation(ctx context.Context, parcelID uint, input *AddLocationInput, actor Actor) (*entity.Location, error)

	// History returns the parcel's full tracking history, newest first.
	History(ctx context.Context, parcelID uint) ([]*entity.Location, error)

	// Latest returns the most recent ping for the parcel.
	Latest(ctx context.Context, parcelID uint) (*entity.Location, error)
}
