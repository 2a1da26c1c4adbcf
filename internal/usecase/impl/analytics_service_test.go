package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"testing"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	"courier/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service    usecase.AnalyticsUsecase
	parcelRepo *mockRepo.MockParcelRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	parcelRepo := mockRepo.NewMockParcelRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAnalyticsService(AnalyticsServiceParams{
		ParcelRepo: parcelRepo,
		Logger:     logger,
	})

	return analyticsServiceFixtures{
		service:    svc,
		parcelRepo: parcelRepo,
	}
}

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func sampleLedger() []*entity.Parcel {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	return []*entity.Parcel{
		{
			ID:             1,
			TrackingNumber: "CPM-A",
			Status:         entity.StatusDelivered,
			PaymentMethod:  entity.PaymentCOD,
			CODAmount:      decimalPtr("120.00"),
			DeliveryCharge: decimal.RequireFromString("60.00"),
			Customer:       &entity.User{Name: "Customer A"},
			Agent:          &entity.User{Name: "Agent A"},
			CreatedAt:      created,
		},
		{
			ID:             2,
			TrackingNumber: "CPM-B",
			Status:         entity.StatusDelivered,
			PaymentMethod:  entity.PaymentPrepaid,
			DeliveryCharge: decimal.RequireFromString("40.00"),
			Customer:       &entity.User{Name: "Customer B"},
			CreatedAt:      created.Add(24 * time.Hour),
		},
		{
			ID:             3,
			TrackingNumber: "CPM-C",
			Status:         entity.StatusPending,
			PaymentMethod:  entity.PaymentPrepaid,
			DeliveryCharge: decimal.RequireFromString("55.50"),
			CreatedAt:      created.Add(48 * time.Hour),
		},
	}
}

func TestAnalyticsService_DashboardStats(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().List(ctx, repository.ParcelFilter{}).Return(sampleLedger(), nil)

	stats, err := fx.service.DashboardStats(ctx, usecase.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStatus["delivered"])
	assert.Equal(t, 1, stats.ByStatus["pending"])
	// Every status appears in the breakdown, including zero buckets.
	assert.Equal(t, 0, stats.ByStatus["in_transit"])
	assert.Equal(t, 0, stats.ByStatus["picked_up"])
	assert.Equal(t, 0, stats.ByStatus["failed"])
	assert.Equal(t, 1, stats.ByPaymentMethod["cod"])
	assert.Equal(t, 2, stats.ByPaymentMethod["prepaid"])
	assert.Equal(t, "155.50", stats.TotalRevenue)
	assert.Equal(t, "120.00", stats.TotalCOD)
	assert.Equal(t, "66.67%", stats.DeliveryRate)
}

func TestAnalyticsService_DashboardStats_EmptyLedger(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().List(ctx, repository.ParcelFilter{}).Return(nil, nil)

	stats, err := fx.service.DashboardStats(ctx, usecase.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, "0.00", stats.TotalRevenue)
	assert.Equal(t, "0.00", stats.TotalCOD)
	assert.Equal(t, "0.00%", stats.DeliveryRate)
}

func TestAnalyticsService_DashboardStats_DateRangeFilter(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().List(ctx, repository.ParcelFilter{}).Return(sampleLedger(), nil)

	// Only the first parcel falls within the window.
	dateRange := usecase.DateRange{
		Start: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
	}

	stats, err := fx.service.DashboardStats(ctx, dateRange)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, "60.00", stats.TotalRevenue)
	assert.Equal(t, "100.00%", stats.DeliveryRate)
}

func TestAnalyticsService_WriteCSVReport(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().List(ctx, repository.ParcelFilter{}).Return(sampleLedger(), nil)

	var buf bytes.Buffer
	err := fx.service.WriteCSVReport(ctx, &buf, usecase.DateRange{})

	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, reportColumns, records[0])
	assert.Equal(t, "CPM-A", records[1][0])
	assert.Equal(t, "delivered", records[1][1])
	assert.Equal(t, "Customer A", records[1][2])
	assert.Equal(t, "Agent A", records[1][3])
	assert.Equal(t, "120.00", records[1][7])
	assert.Equal(t, "60.00", records[1][8])
	// No agent assigned and no COD amount.
	assert.Equal(t, "Unassigned", records[3][3])
	assert.Equal(t, "", records[3][7])
}

func TestAnalyticsService_WritePDFReport(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().List(ctx, repository.ParcelFilter{}).Return(sampleLedger(), nil)

	var buf bytes.Buffer
	err := fx.service.WritePDFReport(ctx, &buf, usecase.DateRange{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
