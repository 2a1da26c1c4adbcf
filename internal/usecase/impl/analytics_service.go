package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var reportColumns = []string{
	"Tracking Number", "Status", "Customer", "Agent",
	"Pickup Address", "Delivery Address", "Payment Method",
	"COD Amount", "Delivery Charge", "Created At",
}

// analyticsService implements the AnalyticsUsecase interface. Aggregation
// happens in memory over the filtered ledger; money sums use decimals.
type analyticsService struct {
	parcelRepo repository.ParcelRepository
	logger     *slog.Logger
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	ParcelRepo repository.ParcelRepository
	Logger     *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		parcelRepo: params.ParcelRepo,
		logger:     params.Logger,
	}
}

// DashboardStats aggregates the parcel ledger for the admin dashboard.
func (srv *analyticsService) DashboardStats(ctx context.Context, dateRange usecase.DateRange) (*usecase.DashboardStats, error) {
	parcels, err := srv.loadParcels(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	stats := &usecase.DashboardStats{
		Total:           len(parcels),
		ByStatus:        make(map[string]int),
		ByPaymentMethod: make(map[string]int),
		DateRange:       describeRange(dateRange),
	}
	for _, status := range entity.AllStatuses() {
		stats.ByStatus[status.String()] = 0
	}

	revenue := decimal.Zero
	cod := decimal.Zero
	delivered := 0
	for _, parcel := range parcels {
		stats.ByStatus[parcel.Status.String()]++
		stats.ByPaymentMethod[string(parcel.PaymentMethod)]++
		revenue = revenue.Add(parcel.DeliveryCharge)
		if parcel.CODAmount != nil {
			cod = cod.Add(*parcel.CODAmount)
		}
		if parcel.Status == entity.StatusDelivered {
			delivered++
		}
	}

	stats.TotalRevenue = revenue.StringFixed(2)
	stats.TotalCOD = cod.StringFixed(2)
	stats.DeliveryRate = "0.00%"
	if len(parcels) > 0 {
		rate := decimal.NewFromInt(int64(delivered)).
			Div(decimal.NewFromInt(int64(len(parcels)))).
			Mul(decimal.NewFromInt(100))
		stats.DeliveryRate = rate.StringFixed(2) + "%"
	}

	return stats, nil
}

// WriteCSVReport streams the parcel ledger as CSV.
func (srv *analyticsService) WriteCSVReport(ctx context.Context, w io.Writer, dateRange usecase.DateRange) error {
	parcels, err := srv.loadParcels(ctx, dateRange)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(reportColumns); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, parcel := range parcels {
		if err := writer.Write(reportRow(parcel)); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "failed to flush CSV report")
}

// WritePDFReport streams the parcel ledger as a PDF document.
func (srv *analyticsService) WritePDFReport(ctx context.Context, w io.Writer, dateRange usecase.DateRange) error {
	parcels, err := srv.loadParcels(ctx, dateRange)
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Parcel Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Parcel Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d parcels", time.Now().Format("2006-01-02 15:04"), len(parcels)))
	pdf.Ln(10)

	widths := []float64{40, 20, 28, 28, 40, 40, 22, 20, 22, 25}

	pdf.SetFont("Helvetica", "B", 8)
	for i, column := range reportColumns {
		pdf.CellFormat(widths[i], 7, column, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, parcel := range parcels {
		for i, value := range reportRow(parcel) {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return errors.Wrap(pdf.Output(w), "failed to render PDF report")
}

func (srv *analyticsService) loadParcels(ctx context.Context, dateRange usecase.DateRange) ([]*entity.Parcel, error) {
	parcels, err := srv.parcelRepo.List(ctx, repository.ParcelFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parcels")
	}

	if dateRange.IsZero() {
		return parcels, nil
	}

	filtered := make([]*entity.Parcel, 0, len(parcels))
	for _, parcel := range parcels {
		if parcel.CreatedAt.Before(dateRange.Start) || parcel.CreatedAt.After(dateRange.End) {
			continue
		}
		filtered = append(filtered, parcel)
	}

	return filtered, nil
}

func reportRow(parcel *entity.Parcel) []string {
	customer := ""
	if parcel.Customer != nil {
		customer = parcel.Customer.Name
	}
	agent := "Unassigned"
	if parcel.Agent != nil {
		agent = parcel.Agent.Name
	}
	codAmount := ""
	if parcel.CODAmount != nil {
		codAmount = parcel.CODAmount.StringFixed(2)
	}

	return []string{
		parcel.TrackingNumber,
		parcel.Status.String(),
		customer,
		agent,
		parcel.PickupAddress,
		parcel.DeliveryAddress,
		string(parcel.PaymentMethod),
		codAmount,
		parcel.DeliveryCharge.StringFixed(2),
		parcel.CreatedAt.Format(time.RFC3339),
	}
}

func describeRange(dateRange usecase.DateRange) map[string]any {
	if dateRange.IsZero() {
		return map[string]any{"start": nil, "end": nil}
	}

	return map[string]any{
		"start": dateRange.Start.Format(time.RFC3339),
		"end":   dateRange.End.Format(time.RFC3339),
	}
}
