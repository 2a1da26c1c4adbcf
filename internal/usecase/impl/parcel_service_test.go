package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"courier/config"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// parcelServiceFixtures holds all test dependencies for parcel service tests.
type parcelServiceFixtures struct {
	service    usecase.ParcelUsecase
	parcelRepo *mockRepo.MockParcelRepository
	publisher  *mockSvc.MockRealtimePublisher
	mailer     *mockSvc.MockMailer
}

func createTestParcelService(t *testing.T) parcelServiceFixtures {
	parcelRepo := mockRepo.NewMockParcelRepository(t)
	publisher := mockSvc.NewMockRealtimePublisher(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Tracking: &config.TrackingConfig{Prefix: "CPM"},
		Pricing:  &config.PricingConfig{BaseCharge: 50, ChargePerKm: 20},
	}

	svc := NewParcelService(ParcelServiceParams{
		ParcelRepo: parcelRepo,
		Publisher:  publisher,
		Mailer:     mailer,
		Config:     cfg,
		Logger:     logger,
	})

	return parcelServiceFixtures{
		service:    svc,
		parcelRepo: parcelRepo,
		publisher:  publisher,
		mailer:     mailer,
	}
}

func floatPtr(v float64) *float64 { return &v }
func uintPtr(v uint) *uint        { return &v }

func TestParcelService_Create_Success(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	input := &usecase.CreateParcelInput{
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
		Payment:         entity.PaymentPrepaid,
	}

	fx.parcelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, parcel *entity.Parcel) {
			parcel.ID = 10
		}).
		Return(nil)

	created := &entity.Parcel{
		ID:             10,
		TrackingNumber: "CPM-XYZ-ABC123",
		CustomerID:     3,
		Status:         entity.StatusPending,
		Customer:       &entity.User{ID: 3, Name: "Customer", Email: "customer@example.com"},
	}
	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(created, nil)

	fx.publisher.EXPECT().
		Publish(service.AdminRoom, service.EventNewParcel, mock.AnythingOfType("service.NewParcelPayload")).
		Return()
	fx.publisher.EXPECT().
		Publish(service.CustomerRoom(3), service.EventNewParcel, mock.AnythingOfType("service.NewParcelPayload")).
		Return()
	fx.mailer.EXPECT().
		SendBookingConfirmation(ctx, mock.AnythingOfType("service.BookingConfirmationMail")).
		Return(nil)

	parcel, err := fx.service.Create(ctx, 3, input)

	require.NoError(t, err)
	assert.Equal(t, created, parcel)
}

func TestParcelService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	input := &usecase.CreateParcelInput{
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
	}

	var stored *entity.Parcel
	fx.parcelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, parcel *entity.Parcel) {
			parcel.ID = 11
			stored = parcel
		}).
		Return(nil)
	fx.parcelRepo.EXPECT().
		FindByID(ctx, uint(11)).
		Return(&entity.Parcel{ID: 11, CustomerID: 3}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := fx.service.Create(ctx, 3, input)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.SizeMedium, stored.Size)
	assert.Equal(t, entity.TypePackage, stored.Type)
	assert.Equal(t, entity.PaymentPrepaid, stored.PaymentMethod)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.True(t, strings.HasPrefix(stored.TrackingNumber, "CPM-"))
	// No coordinates: the charge falls back to the configured base charge.
	assert.Equal(t, "50.00", stored.DeliveryCharge.StringFixed(2))
}

func TestParcelService_Create_ChargeFromDistance(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	input := &usecase.CreateParcelInput{
		PickupAddress:     "1 Origin Rd",
		PickupLatitude:    floatPtr(23.8103),
		PickupLongitude:   floatPtr(90.4125),
		DeliveryAddress:   "2 Target Ave",
		DeliveryLatitude:  floatPtr(23.8103),
		DeliveryLongitude: floatPtr(90.4125),
	}

	var stored *entity.Parcel
	fx.parcelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, parcel *entity.Parcel) {
			parcel.ID = 12
			stored = parcel
		}).
		Return(nil)
	fx.parcelRepo.EXPECT().
		FindByID(ctx, uint(12)).
		Return(&entity.Parcel{ID: 12, CustomerID: 3}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := fx.service.Create(ctx, 3, input)

	require.NoError(t, err)
	require.NotNil(t, stored)
	// Identical pickup and delivery points, so charge is exactly the base.
	assert.Equal(t, "50.00", stored.DeliveryCharge.StringFixed(2))
}

func TestParcelService_Create_CODAmountRequired(t *testing.T) {
	fx := createTestParcelService(t)

	parcel, err := fx.service.Create(context.Background(), 3, &usecase.CreateParcelInput{
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
		Payment:         entity.PaymentCOD,
	})

	assert.Nil(t, parcel)
	assert.ErrorIs(t, err, domainerrors.ErrCODAmountRequired)
}

func TestParcelService_Create_CODAmountNegative(t *testing.T) {
	fx := createTestParcelService(t)

	parcel, err := fx.service.Create(context.Background(), 3, &usecase.CreateParcelInput{
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
		Payment:         entity.PaymentCOD,
		CODAmount:       floatPtr(-10),
	})

	assert.Nil(t, parcel)
	assert.ErrorIs(t, err, domainerrors.ErrCODAmountNegative)
}

func TestParcelService_Create_ZeroCODAmountAccepted(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()

	var stored *entity.Parcel
	fx.parcelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, parcel *entity.Parcel) {
			parcel.ID = 13
			stored = parcel
		}).
		Return(nil)
	fx.parcelRepo.EXPECT().
		FindByID(ctx, uint(13)).
		Return(&entity.Parcel{ID: 13, CustomerID: 3}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := fx.service.Create(ctx, 3, &usecase.CreateParcelInput{
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
		Payment:         entity.PaymentCOD,
		CODAmount:       floatPtr(0),
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.CODAmount)
	assert.Equal(t, "0.00", stored.CODAmount.StringFixed(2))
}

func TestParcelService_Create_DuplicateTrackingNumber(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Parcel")).
		Return(repository.ErrDuplicateTrackingNumber)

	parcel, err := fx.service.Create(ctx, 3, &usecase.CreateParcelInput{
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
	})

	assert.Nil(t, parcel)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingNumberConflict)
}

func TestParcelService_AssignAgent_Success(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{ID: 10, CustomerID: 3, Status: entity.StatusPending}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil).Once()
	fx.parcelRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, p *entity.Parcel) {
			require.NotNil(t, p.AgentID)
			assert.Equal(t, uint(7), *p.AgentID)
		}).
		Return(nil)

	updated := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Agent:      &entity.User{ID: 7, Name: "Agent"},
		Status:     entity.StatusPending,
	}
	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(updated, nil).Once()

	fx.publisher.EXPECT().
		Publish(service.ParcelRoom(10), service.EventAgentAssigned, mock.AnythingOfType("service.AgentAssignedPayload")).
		Return()
	fx.publisher.EXPECT().
		Publish(service.AdminRoom, service.EventAgentAssigned, mock.AnythingOfType("service.AgentAssignedPayload")).
		Return()
	fx.publisher.EXPECT().
		Publish(service.CustomerRoom(3), service.EventAgentAssigned, mock.AnythingOfType("service.AgentAssignedPayload")).
		Return()

	result, err := fx.service.AssignAgent(ctx, 10, 7)

	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestParcelService_AssignAgent_TerminalStatusRejected(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()

	for _, status := range []entity.Status{entity.StatusDelivered, entity.StatusFailed} {
		parcel := &entity.Parcel{ID: 10, CustomerID: 3, Status: status}
		fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil).Once()

		result, err := fx.service.AssignAgent(ctx, 10, 7)

		assert.Nil(t, result)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "PARCEL_NOT_ASSIGNABLE", appErr.ErrorCode())
	}
}

func TestParcelService_UpdateStatus_Success(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusPending,
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil).Once()
	fx.parcelRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Parcel")).
		Run(func(ctx context.Context, p *entity.Parcel) {
			assert.Equal(t, entity.StatusPickedUp, p.Status)
			assert.NotNil(t, p.PickedUpAt)
		}).
		Return(nil)

	updated := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusPickedUp,
		Customer:   &entity.User{ID: 3, Name: "Customer", Email: "customer@example.com"},
	}
	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(updated, nil).Once()

	fx.publisher.EXPECT().
		Publish(service.ParcelRoom(10), service.EventStatusUpdate, mock.AnythingOfType("service.StatusUpdatePayload")).
		Return()
	fx.publisher.EXPECT().
		Publish(service.AdminRoom, service.EventStatusUpdate, mock.AnythingOfType("service.StatusUpdatePayload")).
		Return()
	fx.publisher.EXPECT().
		Publish(service.CustomerRoom(3), service.EventStatusUpdate, mock.AnythingOfType("service.StatusUpdatePayload")).
		Return()
	fx.mailer.EXPECT().
		SendStatusUpdate(ctx, mock.AnythingOfType("service.StatusUpdateMail")).
		Return(nil)

	result, err := fx.service.UpdateStatus(ctx, 10,
		&usecase.UpdateStatusInput{Status: entity.StatusPickedUp},
		usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent},
	)

	require.NoError(t, err)
	assert.Equal(t, updated, result)
}

func TestParcelService_UpdateStatus_DeliveredSendsConfirmation(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusInTransit,
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil).Once()
	fx.parcelRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Parcel")).Return(nil)

	updated := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusDelivered,
		Customer:   &entity.User{ID: 3, Name: "Customer", Email: "customer@example.com"},
	}
	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(updated, nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, service.EventStatusUpdate, mock.Anything).Return().Times(3)
	fx.mailer.EXPECT().
		SendDeliveryConfirmation(ctx, mock.AnythingOfType("service.DeliveryConfirmationMail")).
		Return(nil)

	_, err := fx.service.UpdateStatus(ctx, 10,
		&usecase.UpdateStatusInput{Status: entity.StatusDelivered},
		usecase.Actor{ID: 1, Role: entity.RoleAdmin},
	)

	require.NoError(t, err)
}

func TestParcelService_UpdateStatus_AgentNotAssigned(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusPending,
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)

	result, err := fx.service.UpdateStatus(ctx, 10,
		&usecase.UpdateStatusInput{Status: entity.StatusPickedUp},
		usecase.Actor{ID: 8, Role: entity.RoleDeliveryAgent},
	)

	assert.Nil(t, result)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestParcelService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{ID: 10, CustomerID: 3, Status: entity.StatusPending}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)

	result, err := fx.service.UpdateStatus(ctx, 10,
		&usecase.UpdateStatusInput{Status: entity.StatusDelivered},
		usecase.Actor{ID: 1, Role: entity.RoleAdmin},
	)

	assert.Nil(t, result)
	require.Error(t, err)

	var transitionErr *domainerrors.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "pending", transitionErr.From())
	assert.Equal(t, "delivered", transitionErr.To())
}

func TestParcelService_UpdateStatus_FailedReopensToPending(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{ID: 10, CustomerID: 3, Status: entity.StatusFailed}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil).Once()
	fx.parcelRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Parcel")).Return(nil)

	updated := &entity.Parcel{ID: 10, CustomerID: 3, Status: entity.StatusPending}
	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(updated, nil).Once()
	fx.publisher.EXPECT().Publish(mock.Anything, service.EventStatusUpdate, mock.Anything).Return().Times(3)

	result, err := fx.service.UpdateStatus(ctx, 10,
		&usecase.UpdateStatusInput{Status: entity.StatusPending},
		usecase.Actor{ID: 1, Role: entity.RoleAdmin},
	)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, result.Status)
}

func TestParcelService_UpdateCurrentLocation_Success(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusInTransit,
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)
	fx.parcelRepo.EXPECT().Update(ctx, parcel).Return(nil)
	fx.publisher.EXPECT().
		Publish(service.ParcelRoom(10), service.EventLocationUpdate, mock.AnythingOfType("service.LocationUpdatePayload")).
		Return()

	result, err := fx.service.UpdateCurrentLocation(ctx, 10, 23.81, 90.41, 7)

	require.NoError(t, err)
	require.NotNil(t, result.CurrentLatitude)
	assert.Equal(t, 23.81, *result.CurrentLatitude)
	require.NotNil(t, result.CurrentLongitude)
	assert.Equal(t, 90.41, *result.CurrentLongitude)
}

func TestParcelService_UpdateCurrentLocation_NotAssignedAgent(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{
		ID:         10,
		CustomerID: 3,
		AgentID:    uintPtr(7),
		Status:     entity.StatusInTransit,
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)

	result, err := fx.service.UpdateCurrentLocation(ctx, 10, 23.81, 90.41, 8)

	assert.Nil(t, result)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestParcelService_FindByID_NotFound(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrParcelNotFound)

	parcel, err := fx.service.FindByID(ctx, 99)

	assert.Nil(t, parcel)
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
}

func TestParcelService_Update_AppliesPartialEdit(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{
		ID:              10,
		CustomerID:      3,
		PickupAddress:   "1 Origin Rd",
		DeliveryAddress: "2 Target Ave",
		Status:          entity.StatusPending,
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)
	fx.parcelRepo.EXPECT().Update(ctx, parcel).Return(nil)

	newAddress := "3 Changed St"
	newCharge := 75.5
	result, err := fx.service.Update(ctx, 10, &usecase.UpdateParcelInput{
		DeliveryAddress: &newAddress,
		DeliveryCharge:  &newCharge,
	})

	require.NoError(t, err)
	assert.Equal(t, "3 Changed St", result.DeliveryAddress)
	assert.Equal(t, "1 Origin Rd", result.PickupAddress)
	assert.Equal(t, "75.50", result.DeliveryCharge.StringFixed(2))
}

func TestParcelService_BookingHistory_FiltersByCustomer(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcels := []*entity.Parcel{{ID: 1, CustomerID: 3}}

	fx.parcelRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.ParcelFilter) bool {
			return filter.CustomerID != nil && *filter.CustomerID == 3 &&
				filter.AgentID == nil && filter.Status == nil
		})).
		Return(parcels, nil)

	result, err := fx.service.BookingHistory(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, parcels, result)
}

func TestParcelService_AssignedParcels_FiltersByAgent(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcels := []*entity.Parcel{{ID: 1, AgentID: uintPtr(7)}}

	fx.parcelRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.ParcelFilter) bool {
			return filter.AgentID != nil && *filter.AgentID == 7 &&
				filter.CustomerID == nil && filter.Status == nil
		})).
		Return(parcels, nil)

	result, err := fx.service.AssignedParcels(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, parcels, result)
}

func TestParcelService_Delete_Success(t *testing.T) {
	fx := createTestParcelService(t)

	ctx := context.Background()
	parcel := &entity.Parcel{ID: 10, CustomerID: 3}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)
	fx.parcelRepo.EXPECT().Delete(ctx, uint(10)).Return(nil)

	err := fx.service.Delete(ctx, 10)

	require.NoError(t, err)
}
