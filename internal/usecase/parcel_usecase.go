// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
)

// Actor identifies the authenticated user performing an operation. The
// delivery layer fills it from validated token claims; use cases trust it.
type Actor struct {
	ID   uint
	Role entity.Role
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// CreateParcelInput represents the input for booking a new parcel.
type CreateParcelInput struct {
	PickupAddress     string   `json:"pickup_address" validate:"required"`
	PickupLatitude    *float64 `json:"pickup_latitude,omitempty"`
	PickupLongitude   *float64 `json:"pickup_longitude,omitempty"`
	DeliveryAddress   string   `json:"delivery_address" validate:"required"`
	DeliveryLatitude  *float64 `json:"delivery_latitude,omitempty"`
	DeliveryLongitude *float64 `json:"delivery_longitude,omitempty"`

	Size        entity.ParcelSize    `json:"size"`
	Type        entity.ParcelType    `json:"type"`
	Description string               `json:"description"`
	Weight      *float64             `json:"weight,omitempty"`
	Payment     entity.PaymentMethod `json:"payment_method"`
	CODAmount   *float64             `json:"cod_amount,omitempty"`
}

// UpdateParcelInput represents an admin free-form edit. Nil fields are left
// untouched. Status is intentionally absent: status only changes through
// UpdateStatus.
type UpdateParcelInput struct {
	PickupAddress     *string  `json:"pickup_address,omitempty"`
	PickupLatitude    *float64 `json:"pickup_latitude,omitempty"`
	PickupLongitude   *float64 `json:"pickup_longitude,omitempty"`
	DeliveryAddress   *string  `json:"delivery_address,omitempty"`
	DeliveryLatitude  *float64 `json:"delivery_latitude,omitempty"`
	DeliveryLongitude *float64 `json:"delivery_longitude,omitempty"`

	Size           *entity.ParcelSize `json:"size,omitempty"`
	Type           *entity.ParcelType `json:"type,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Weight         *float64           `json:"weight,omitempty"`
	DeliveryCharge *float64           `json:"delivery_charge,omitempty"`
}

// UpdateStatusInput represents a requested status transition.
type UpdateStatusInput struct {
	Status        entity.Status `json:"status"`
	FailureReason string        `json:"failure_reason,omitempty"`
}

// ParcelUsecase is the parcel lifecycle service: booking, assignment, status
// transitions, live location and the read operations around them.
type ParcelUsecase interface {
	// Create books a new parcel for the customer, generates its tracking
	// number and announces it to the admin and customer audiences.
	Create(ctx context.Context, customerID uint, input *CreateParcelInput) (*entity.Parcel, error)

	// AssignAgent sets the parcel's agent, overwriting any prior assignment.
	// Delivered and failed parcels cannot be assigned.
	AssignAgent(ctx context.Context, parcelID, agentID uint) (*entity.Parcel, error)

	// UpdateStatus performs a validated status transition on behalf of the
	// actor. A delivery agent may only transition parcels assigned to them.
	UpdateStatus(ctx context.Context, parcelID uint, input *UpdateStatusInput, actor Actor) (*entity.Parcel, error)

	// UpdateCurrentLocation overwrites the parcel's live position. Only the
	// assigned agent may call it.
	UpdateCurrentLocation(ctx context.Context, parcelID uint, latitude, longitude float64, actorID uint) (*entity.Parcel, error)

	// Update applies an admin free-form field edit, without transition checks.
	Update(ctx context.Context, parcelID uint, input *UpdateParcelInput) (*entity.Parcel, error)

	// Delete removes a parcel unconditionally.
	Delete(ctx context.Context, parcelID uint) error

	FindByID(ctx context.Context, parcelID uint) (*entity.Parcel, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Parcel, error)
	List(ctx context.Context, filter repository.ParcelFilter) ([]*entity.Parcel, error)

	// BookingHistory returns all parcels booked by a customer.
	BookingHistory(ctx context.Context, customerID uint) ([]*entity.Parcel, error)

	// AssignedParcels returns all parcels assigned to an agent.
	AssignedParcels(ctx context.Context, agentID uint) ([]*entity.Parcel, error)
}
