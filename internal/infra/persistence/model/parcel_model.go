package model

import (
	"time"

	"courier/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ParcelModel mirrors the 'parcels' table. The tracking number carries a
// unique index; the insert that loses a collision race surfaces a duplicate
// key error rather than a second read.
type ParcelModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	TrackingNumber string `gorm:"type:varchar(40);uniqueIndex;not null"`

	CustomerID uint       `gorm:"not null;index"`
	AgentID    *uint      `gorm:"index"`
	Customer   *UserModel `gorm:"foreignKey:CustomerID"`
	Agent      *UserModel `gorm:"foreignKey:AgentID"`

	PickupAddress     string `gorm:"type:text;not null"`
	PickupLatitude    *float64
	PickupLongitude   *float64
	DeliveryAddress   string `gorm:"type:text;not null"`
	DeliveryLatitude  *float64
	DeliveryLongitude *float64

	CurrentLatitude  *float64
	CurrentLongitude *float64

	Size        string `gorm:"type:varchar(20);not null;default:medium"`
	Type        string `gorm:"type:varchar(20);not null;default:package"`
	Description string `gorm:"type:text"`
	Weight      *float64

	PaymentMethod  string           `gorm:"type:varchar(10);not null;default:prepaid"`
	CODAmount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryCharge decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`

	Status        string `gorm:"type:varchar(20);not null;default:pending;index"`
	QRCode        string `gorm:"type:text"`
	FailureReason string `gorm:"type:text"`

	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ParcelModel) TableName() string {
	return "parcels"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *ParcelModel) ToDomain() *entity.Parcel {
	if m == nil {
		return nil
	}

	return &entity.Parcel{
		ID:             m.ID,
		TrackingNumber: m.TrackingNumber,

		CustomerID: m.CustomerID,
		AgentID:    m.AgentID,
		Customer:   m.Customer.ToDomain(),
		Agent:      m.Agent.ToDomain(),

		PickupAddress:     m.PickupAddress,
		PickupLatitude:    m.PickupLatitude,
		PickupLongitude:   m.PickupLongitude,
		DeliveryAddress:   m.DeliveryAddress,
		DeliveryLatitude:  m.DeliveryLatitude,
		DeliveryLongitude: m.DeliveryLongitude,

		CurrentLatitude:  m.CurrentLatitude,
		CurrentLongitude: m.CurrentLongitude,

		Size:        entity.ParcelSize(m.Size),
		Type:        entity.ParcelType(m.Type),
		Description: m.Description,
		Weight:      m.Weight,

		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		CODAmount:      m.CODAmount,
		DeliveryCharge: m.DeliveryCharge,

		Status:        entity.Status(m.Status),
		QRCode:        m.QRCode,
		FailureReason: m.FailureReason,

		PickedUpAt:  m.PickedUpAt,
		DeliveredAt: m.DeliveredAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromParcelDomain maps a domain entity to its persistence model. The loaded
// Customer and Agent references are intentionally not mapped back: they are
// read-only preloads, never written through the parcel.
func FromParcelDomain(parcel *entity.Parcel) *ParcelModel {
	if parcel == nil {
		return nil
	}

	return &ParcelModel{
		ID:             parcel.ID,
		TrackingNumber: parcel.TrackingNumber,

		CustomerID: parcel.CustomerID,
		AgentID:    parcel.AgentID,

		PickupAddress:     parcel.PickupAddress,
		PickupLatitude:    parcel.PickupLatitude,
		PickupLongitude:   parcel.PickupLongitude,
		DeliveryAddress:   parcel.DeliveryAddress,
		DeliveryLatitude:  parcel.DeliveryLatitude,
		DeliveryLongitude: parcel.DeliveryLongitude,

		CurrentLatitude:  parcel.CurrentLatitude,
		CurrentLongitude: parcel.CurrentLongitude,

		Size:        string(parcel.Size),
		Type:        string(parcel.Type),
		Description: parcel.Description,
		Weight:      parcel.Weight,

		PaymentMethod:  string(parcel.PaymentMethod),
		CODAmount:      parcel.CODAmount,
		DeliveryCharge: parcel.DeliveryCharge,

		Status:        parcel.Status.String(),
		QRCode:        parcel.QRCode,
		FailureReason: parcel.FailureReason,

		PickedUpAt:  parcel.PickedUpAt,
		DeliveredAt: parcel.DeliveredAt,
		CreatedAt:   parcel.CreatedAt,
		UpdatedAt:   parcel.UpdatedAt,
	}
}
