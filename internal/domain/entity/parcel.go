package entity

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParcelSize buckets a parcel by weight class.
type ParcelSize string

const (
	SizeSmall      ParcelSize = "small"       // up to 1kg
	SizeMedium     ParcelSize = "medium"      // 1-5kg
	SizeLarge      ParcelSize = "large"       // 5-15kg
	SizeExtraLarge ParcelSize = "extra_large" // 15kg+
)

// IsValid checks if the ParcelSize is a valid value.
func (s ParcelSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	default:
		return false
	}
}

// ParcelType categorizes the contents of a parcel.
type ParcelType string

const (
	TypeDocument    ParcelType = "document"
	TypePackage     ParcelType = "package"
	TypeFragile     ParcelType = "fragile"
	TypeElectronics ParcelType = "electronics"
	TypeFood        ParcelType = "food"
	TypeOther       ParcelType = "other"
)

// IsValid checks if the ParcelType is a valid value.
func (t ParcelType) IsValid() bool {
	switch t {
	case TypeDocument, TypePackage, TypeFragile, TypeElectronics, TypeFood, TypeOther:
		return true
	default:
		return false
	}
}

// PaymentMethod specifies how a parcel is paid for.
type PaymentMethod string

const (
	// PaymentCOD means the amount is collected in cash at delivery time.
	PaymentCOD PaymentMethod = "cod"
	// PaymentPrepaid means the parcel was paid for in advance.
	PaymentPrepaid PaymentMethod = "prepaid"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCOD || m == PaymentPrepaid
}

// DefaultFailureReason is recorded when a parcel is failed without an
// explicit reason.
const DefaultFailureReason = "No reason provided"

// Parcel is the aggregate at the heart of the system: one shipment booked by
// a customer, optionally assigned to a delivery agent, moving through the
// status state machine until delivered or failed.
type Parcel struct {
	ID             uint   // Numeric identifier, generated by the database.
	TrackingNumber string // Human-facing unique identifier, immutable after creation.

	CustomerID uint  // Owning customer, required.
	AgentID    *uint // Assigned delivery agent, nil until assigned.
	Customer   *User // Loaded customer, nil unless preloaded.
	Agent      *User // Loaded agent, nil unless preloaded or unassigned.

	PickupAddress     string
	PickupLatitude    *float64
	PickupLongitude   *float64
	DeliveryAddress   string
	DeliveryLatitude  *float64
	DeliveryLongitude *float64

	// Live position reported by the agent during transit.
	CurrentLatitude  *float64
	CurrentLongitude *float64

	Size        ParcelSize
	Type        ParcelType
	Description string
	Weight      *float64 // kg, optional

	PaymentMethod  PaymentMethod
	CODAmount      *decimal.Decimal // Required when PaymentMethod is cod. Zero is a valid amount.
	DeliveryCharge decimal.Decimal

	Status        Status
	QRCode        string // base64 PNG data URL, set once generated.
	FailureReason string

	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvalidTransitionError reports a status change that is not in the
// transition table. It carries both statuses for the caller to report.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid parcel status transition: %s -> %s", e.From, e.To)
}

// ApplyStatus transitions the parcel to a new status, maintaining the
// derived fields that go with it. Timestamps are write-once: re-entering a
// status after a re-open never overwrites a previously recorded time.
func (p *Parcel) ApplyStatus(to Status, failureReason string, now time.Time) error {
	if !p.Status.CanTransitionTo(to) {
		return &InvalidTransitionError{From: p.Status, To: to}
	}

	p.Status = to

	switch to {
	case StatusPickedUp:
		if p.PickedUpAt == nil {
			t := now
			p.PickedUpAt = &t
		}
	case StatusDelivered:
		if p.DeliveredAt == nil {
			t := now
			p.DeliveredAt = &t
		}
	case StatusFailed:
		if failureReason == "" {
			failureReason = DefaultFailureReason
		}
		p.FailureReason = failureReason
	}

	return nil
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTrackingNumber builds a tracking number of the form
// PREFIX-<base36 millisecond timestamp>-<6 random base36 chars>, upper-cased.
// Uniqueness is probabilistic; the persistence layer's unique index is the
// backstop for the same-millisecond collision case.
func NewTrackingNumber(prefix string, now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, suffix))
}
