package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// QRValidationResult is the outcome of checking a scanned QR payload.
type QRValidationResult struct {
	Valid   bool           `json:"valid"`
	Parcel  *entity.Parcel `json:"parcel,omitempty"`
	Message string         `json:"message"`
}

// QRCodeUsecase generates parcel QR codes and drives scan-based workflows.
type QRCodeUsecase interface {
	// Generate renders the parcel's QR code, stores it on the parcel and
	// returns the data URL together with the tracking number.
	Generate(ctx context.Context, parcelID uint) (qrCode string, trackingNumber string, err error)

	// Validate checks a scanned payload against the parcel records. A
	// malformed or mismatching payload yields Valid=false, not an error.
	Validate(ctx context.Context, qrData string) (*QRValidationResult, error)

	// ConfirmPickup scans a QR code and transitions the parcel to
	// picked_up through the lifecycle service (all guards apply).
	ConfirmPickup(ctx context.Context, qrData string, actor Actor) (*entity.Parcel, error)

	// ConfirmDelivery scans a QR code and transitions the parcel to
	// delivered through the lifecycle service (all guards apply).
	ConfirmDelivery(ctx context.Context, qrData string, actor Actor) (*entity.Parcel, error)
}
