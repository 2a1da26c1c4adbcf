package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	mockUC "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// qrCodeServiceFixtures holds all test dependencies for QR code service tests.
type qrCodeServiceFixtures struct {
	service       usecase.QRCodeUsecase
	qrService     *mockSvc.MockQRCodeService
	parcelRepo    *mockRepo.MockParcelRepository
	parcelUsecase *mockUC.MockParcelUsecase
}

func createTestQRCodeService(t *testing.T) qrCodeServiceFixtures {
	qrService := mockSvc.NewMockQRCodeService(t)
	parcelRepo := mockRepo.NewMockParcelRepository(t)
	parcelUsecase := mockUC.NewMockParcelUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewQRCodeService(QRCodeServiceParams{
		QRService:     qrService,
		ParcelRepo:    parcelRepo,
		ParcelUsecase: parcelUsecase,
		Logger:        logger,
	})

	return qrCodeServiceFixtures{
		service:       svc,
		qrService:     qrService,
		parcelRepo:    parcelRepo,
		parcelUsecase: parcelUsecase,
	}
}

func TestQRCodeService_Generate_Success(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123"}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)
	fx.qrService.EXPECT().
		GenerateParcelQR(uint(10), "CPM-XYZ-ABC123").
		Return("data:image/png;base64,AAAA", nil)
	fx.parcelRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, p *entity.Parcel) {
			assert.Equal(t, "data:image/png;base64,AAAA", p.QRCode)
		}).
		Return(nil)

	dataURL, trackingNumber, err := fx.service.Generate(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", dataURL)
	assert.Equal(t, "CPM-XYZ-ABC123", trackingNumber)
}

func TestQRCodeService_Generate_ParcelNotFound(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrParcelNotFound)

	dataURL, trackingNumber, err := fx.service.Generate(ctx, 99)

	assert.Empty(t, dataURL)
	assert.Empty(t, trackingNumber)
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
}

func TestQRCodeService_Validate_Success(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123"}

	fx.qrService.EXPECT().
		ParseParcelQR("payload").
		Return(&service.ParcelQRData{TrackingNumber: "CPM-XYZ-ABC123", ParcelID: 10, Type: "parcel"}, nil)
	fx.parcelRepo.EXPECT().FindByTrackingNumber(ctx, "CPM-XYZ-ABC123").Return(parcel, nil)

	result, err := fx.service.Validate(ctx, "payload")

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, parcel, result.Parcel)
}

func TestQRCodeService_Validate_MalformedPayload(t *testing.T) {
	fx := createTestQRCodeService(t)

	fx.qrService.EXPECT().ParseParcelQR("garbage").Return(nil, errors.New("bad payload"))

	result, err := fx.service.Validate(context.Background(), "garbage")

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid QR code format", result.Message)
}

func TestQRCodeService_Validate_NoMatchingParcel(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()

	fx.qrService.EXPECT().
		ParseParcelQR("payload").
		Return(&service.ParcelQRData{TrackingNumber: "CPM-GONE", ParcelID: 10, Type: "parcel"}, nil)
	fx.parcelRepo.EXPECT().
		FindByTrackingNumber(ctx, "CPM-GONE").
		Return(nil, repository.ErrParcelNotFound)

	result, err := fx.service.Validate(ctx, "payload")

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "No parcel matches this QR code", result.Message)
}

func TestQRCodeService_Validate_ParcelIDMismatch(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()

	fx.qrService.EXPECT().
		ParseParcelQR("payload").
		Return(&service.ParcelQRData{TrackingNumber: "CPM-XYZ-ABC123", ParcelID: 11, Type: "parcel"}, nil)
	fx.parcelRepo.EXPECT().
		FindByTrackingNumber(ctx, "CPM-XYZ-ABC123").
		Return(&entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123"}, nil)

	result, err := fx.service.Validate(ctx, "payload")

	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestQRCodeService_ConfirmPickup_DelegatesTransition(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}
	parcel := &entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123", Status: entity.StatusPending}
	picked := &entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123", Status: entity.StatusPickedUp}

	fx.qrService.EXPECT().
		ParseParcelQR("payload").
		Return(&service.ParcelQRData{TrackingNumber: "CPM-XYZ-ABC123", ParcelID: 10, Type: "parcel"}, nil)
	fx.parcelRepo.EXPECT().FindByTrackingNumber(ctx, "CPM-XYZ-ABC123").Return(parcel, nil)
	fx.parcelUsecase.EXPECT().
		UpdateStatus(ctx, uint(10), mock.MatchedBy(func(input *usecase.UpdateStatusInput) bool {
			return input.Status == entity.StatusPickedUp
		}), actor).
		Return(picked, nil)

	result, err := fx.service.ConfirmPickup(ctx, "payload", actor)

	require.NoError(t, err)
	assert.Equal(t, picked, result)
}

func TestQRCodeService_ConfirmDelivery_DelegatesTransition(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}
	parcel := &entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123", Status: entity.StatusInTransit}
	delivered := &entity.Parcel{ID: 10, TrackingNumber: "CPM-XYZ-ABC123", Status: entity.StatusDelivered}

	fx.qrService.EXPECT().
		ParseParcelQR("payload").
		Return(&service.ParcelQRData{TrackingNumber: "CPM-XYZ-ABC123", ParcelID: 10, Type: "parcel"}, nil)
	fx.parcelRepo.EXPECT().FindByTrackingNumber(ctx, "CPM-XYZ-ABC123").Return(parcel, nil)
	fx.parcelUsecase.EXPECT().
		UpdateStatus(ctx, uint(10), mock.MatchedBy(func(input *usecase.UpdateStatusInput) bool {
			return input.Status == entity.StatusDelivered
		}), actor).
		Return(delivered, nil)

	result, err := fx.service.ConfirmDelivery(ctx, "payload", actor)

	require.NoError(t, err)
	assert.Equal(t, delivered, result)
}

func TestQRCodeService_ConfirmPickup_MalformedPayload(t *testing.T) {
	fx := createTestQRCodeService(t)

	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}

	fx.qrService.EXPECT().ParseParcelQR("garbage").Return(nil, errors.New("bad payload"))

	result, err := fx.service.ConfirmPickup(context.Background(), "garbage", actor)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
}

func TestQRCodeService_ConfirmDelivery_NoMatchingParcel(t *testing.T) {
	fx := createTestQRCodeService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}

	fx.qrService.EXPECT().
		ParseParcelQR("payload").
		Return(&service.ParcelQRData{TrackingNumber: "CPM-GONE", ParcelID: 10, Type: "parcel"}, nil)
	fx.parcelRepo.EXPECT().
		FindByTrackingNumber(ctx, "CPM-GONE").
		Return(nil, repository.ErrParcelNotFound)

	result, err := fx.service.ConfirmDelivery(ctx, "payload", actor)

	assert.Nil(t, result)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_QR_CODE", appErr.ErrorCode())
}
