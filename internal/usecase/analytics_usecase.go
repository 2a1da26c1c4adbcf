package usecase

import (
	"context"
	"io"
	"time"
)

// DateRange bounds an analytics query. Both fields must be set together;
// a zero range means "all time".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the range is unbounded.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// DashboardStats aggregates the parcel ledger for the admin dashboard.
type DashboardStats struct {
	Total           int              `json:"total"`
	ByStatus        map[string]int   `json:"byStatus"`
	ByPaymentMethod map[string]int   `json:"byPaymentMethod"`
	TotalRevenue    string           `json:"totalRevenue"`
	TotalCOD        string           `json:"totalCOD"`
	DeliveryRate    string           `json:"deliveryRate"`
	DateRange       map[string]any   `json:"dateRange"`
}

// AnalyticsUsecase computes dashboard aggregates and exports reports.
type AnalyticsUsecase interface {
	DashboardStats(ctx context.Context, dateRange DateRange) (*DashboardStats, error)

	// WriteCSVReport streams the parcel ledger as CSV.
	WriteCSVReport(ctx context.Context, w io.Writer, dateRange DateRange) error

	// WritePDFReport streams the parcel ledger as a PDF document.
	WritePDFReport(ctx context.Context, w io.Writer, dateRange DateRange) error
}
