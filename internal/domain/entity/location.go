package entity

import "time"

// Location is one GPS ping in a parcel's tracking history. Records are
// append-only: they are written once and never updated or deleted
// individually.
type Location struct {
	ID         uint
	ParcelID   uint
	Latitude   float64
	Longitude  float64
	Address    string // Optional human-readable address.
	Notes      string // Optional free-text notes from the agent.
	RecordedAt time.Time
}
