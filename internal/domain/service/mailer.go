package service

import "context"

// BookingConfirmationMail is the data for the "booking confirmed" email.
type BookingConfirmationMail struct {
	To              string
	CustomerName    string
	TrackingNumber  string
	PickupAddress   string
	DeliveryAddress string
}

// StatusUpdateMail is the data for the "status changed" email.
type StatusUpdateMail struct {
	To             string
	CustomerName   string
	TrackingNumber string
	Status         string
}

// DeliveryConfirmationMail is the data for the "parcel delivered" email.
type DeliveryConfirmationMail struct {
	To             string
	CustomerName   string
	TrackingNumber string
	DeliveredAt    string
}

// Mailer sends transactional emails. Sending is best effort from the
// caller's point of view: lifecycle operations log mailer errors and move on.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, mail BookingConfirmationMail) error
	SendStatusUpdate(ctx context.Context, mail StatusUpdateMail) error
	SendDeliveryConfirmation(ctx context.Context, mail DeliveryConfirmationMail) error
}
