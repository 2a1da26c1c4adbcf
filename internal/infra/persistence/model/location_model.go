package model

import (
	"time"

	"courier/internal/domain/entity"
)

// LocationModel mirrors the 'parcel_locations' table. Rows are append-only.
type LocationModel struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	ParcelID   uint    `gorm:"not null;index"`
	Latitude   float64 `gorm:"not null"`
	Longitude  float64 `gorm:"not null"`
	Address    string  `gorm:"type:text"`
	Notes      string  `gorm:"type:text"`
	RecordedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "parcel_locations"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *LocationModel) ToDomain() *entity.Location {
	if m == nil {
		return nil
	}

	return &entity.Location{
		ID:         m.ID,
		ParcelID:   m.ParcelID,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		Address:    m.Address,
		Notes:      m.Notes,
		RecordedAt: m.RecordedAt,
	}
}

// FromLocationDomain maps a domain entity to its persistence model.
func FromLocationDomain(location *entity.Location) *LocationModel {
	if location == nil {
		return nil
	}

	return &LocationModel{
		ID:         location.ID,
		ParcelID:   location.ParcelID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Address:    location.Address,
		Notes:      location.Notes,
		RecordedAt: location.RecordedAt,
	}
}
