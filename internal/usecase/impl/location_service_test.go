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
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	txManager    *mockRepo.MockTransactionManager
	locationRepo *mockRepo.MockLocationRepository
	parcelRepo   *mockRepo.MockParcelRepository
	publisher    *mockSvc.MockRealtimePublisher
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	parcelRepo := mockRepo.NewMockParcelRepository(t)
	publisher := mockSvc.NewMockRealtimePublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLocationService(LocationServiceParams{
		TxManager:    txManager,
		LocationRepo: locationRepo,
		ParcelRepo:   parcelRepo,
		Publisher:    publisher,
		Logger:       logger,
	})

	return locationServiceFixtures{
		service:      svc,
		txManager:    txManager,
		locationRepo: locationRepo,
		parcelRepo:   parcelRepo,
		publisher:    publisher,
	}
}

func TestLocationService_AddLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := &usecase.AddLocationInput{
		Latitude:  23.81,
		Longitude: 90.41,
		Address:   "Warehouse gate",
	}
	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockParcelRepo := mockRepo.NewMockParcelRepository(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().ParcelRepo().Return(mockParcelRepo)
			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)

			parcel := &entity.Parcel{
				ID:         10,
				CustomerID: 3,
				AgentID:    uintPtr(7),
				Status:     entity.StatusInTransit,
			}
			mockParcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)
			mockLocationRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.Location")).
				Run(func(ctx context.Context, location *entity.Location) {
					location.ID = 100
				}).
				Return(nil)
			mockParcelRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Parcel")).
				Run(func(ctx context.Context, p *entity.Parcel) {
					require.NotNil(t, p.CurrentLatitude)
					assert.Equal(t, 23.81, *p.CurrentLatitude)
					require.NotNil(t, p.CurrentLongitude)
					assert.Equal(t, 90.41, *p.CurrentLongitude)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(service.ParcelRoom(10), service.EventLocationUpdate, mock.AnythingOfType("service.LocationUpdatePayload")).
		Return()

	location, err := fx.service.AddLocation(ctx, 10, input, actor)

	require.NoError(t, err)
	assert.Equal(t, uint(100), location.ID)
	assert.Equal(t, uint(10), location.ParcelID)
	assert.Equal(t, "Warehouse gate", location.Address)
}

func TestLocationService_AddLocation_AdminAllowed(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: 1, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockParcelRepo := mockRepo.NewMockParcelRepository(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().ParcelRepo().Return(mockParcelRepo)
			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)

			// Assigned to a different agent; the admin may still report.
			parcel := &entity.Parcel{ID: 10, CustomerID: 3, AgentID: uintPtr(7)}
			mockParcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)
			mockLocationRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)
			mockParcelRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Parcel")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().Publish(service.ParcelRoom(10), service.EventLocationUpdate, mock.Anything).Return()

	_, err := fx.service.AddLocation(ctx, 10, &usecase.AddLocationInput{Latitude: 1, Longitude: 2}, actor)

	require.NoError(t, err)
}

func TestLocationService_AddLocation_NotAssignedAgent(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: 8, Role: entity.RoleDeliveryAgent}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockParcelRepo := mockRepo.NewMockParcelRepository(t)

			mockFactory.EXPECT().ParcelRepo().Return(mockParcelRepo)

			parcel := &entity.Parcel{ID: 10, CustomerID: 3, AgentID: uintPtr(7)}
			mockParcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(parcel, nil)

			return fn(mockFactory)
		})

	location, err := fx.service.AddLocation(ctx, 10, &usecase.AddLocationInput{Latitude: 1, Longitude: 2}, actor)

	assert.Nil(t, location)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestLocationService_AddLocation_ParcelNotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: 1, Role: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockParcelRepo := mockRepo.NewMockParcelRepository(t)

			mockFactory.EXPECT().ParcelRepo().Return(mockParcelRepo)
			mockParcelRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrParcelNotFound)

			return fn(mockFactory)
		})

	location, err := fx.service.AddLocation(ctx, 99, &usecase.AddLocationInput{Latitude: 1, Longitude: 2}, actor)

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
}

func TestLocationService_History_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	history := []*entity.Location{
		{ID: 2, ParcelID: 10, Latitude: 23.82, Longitude: 90.42},
		{ID: 1, ParcelID: 10, Latitude: 23.81, Longitude: 90.41},
	}

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(10)).Return(&entity.Parcel{ID: 10}, nil)
	fx.locationRepo.EXPECT().History(ctx, uint(10)).Return(history, nil)

	result, err := fx.service.History(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, history, result)
}

func TestLocationService_History_ParcelNotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.parcelRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrParcelNotFound)

	result, err := fx.service.History(ctx, 99)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrParcelNotFound)
}

func TestLocationService_Latest_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	latest := &entity.Location{ID: 5, ParcelID: 10, Latitude: 23.81, Longitude: 90.41}

	fx.locationRepo.EXPECT().Latest(ctx, uint(10)).Return(latest, nil)

	result, err := fx.service.Latest(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, latest, result)
}

func TestLocationService_Latest_NoneRecorded(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().Latest(ctx, uint(10)).Return(nil, repository.ErrNoLocationRecorded)

	result, err := fx.service.Latest(ctx, 10)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}
