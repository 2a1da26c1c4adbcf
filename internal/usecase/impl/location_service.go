package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface. The history is
// append-only; the parcel's live position mirrors the latest ping. Append and
// mirror happen in one transaction so the two views never diverge.
type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	parcelRepo   repository.ParcelRepository
	publisher    service.RealtimePublisher
	logger       *slog.Logger

	now func() time.Time
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	ParcelRepo   repository.ParcelRepository
	Publisher    service.RealtimePublisher
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		parcelRepo:   params.ParcelRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddLocation appends a ping to the parcel's history and mirrors it into the
// parcel's live position, atomically. The fan-out happens after the commit
// and goes to the parcel's tracking room only.
func (srv *locationService) AddLocation(ctx context.Context, parcelID uint, input *usecase.AddLocationInput, actor usecase.Actor) (*entity.Location, error) {
	location := &entity.Location{
		ParcelID:  parcelID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
		Notes:     input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		parcelRepo := repoFactory.ParcelRepo()

		parcel, err := parcelRepo.FindByID(ctx, parcelID)
		if err != nil {
			if errors.Is(err, repository.ErrParcelNotFound) {
				return domainerrors.ErrParcelNotFound
			}

			return errors.Wrap(err, "failed to find parcel by ID")
		}

		if !actor.IsAdmin() && !isAssignedAgent(parcel, actor.ID) {
			return domainerrors.ErrForbidden.WithDetails(
				"you can only report locations for your assigned parcels",
			)
		}

		if err := repoFactory.LocationRepo().Append(ctx, location); err != nil {
			return errors.Wrap(err, "failed to append location")
		}

		parcel.CurrentLatitude = &location.Latitude
		parcel.CurrentLongitude = &location.Longitude
		if err := parcelRepo.Update(ctx, parcel); err != nil {
			return errors.Wrap(err, "failed to mirror location onto parcel")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publisher.Publish(service.ParcelRoom(parcelID), service.EventLocationUpdate, service.LocationUpdatePayload{
		ParcelID:  parcelID,
		Location:  service.GeoPoint{Latitude: location.Latitude, Longitude: location.Longitude},
		Timestamp: srv.now(),
	})

	srv.log(ctx).Debug("Location recorded",
		slog.Uint64("parcelID", uint64(parcelID)),
		slog.Float64("latitude", location.Latitude),
		slog.Float64("longitude", location.Longitude),
	)

	return location, nil
}

// History returns the parcel's tracking history, newest first.
func (srv *locationService) History(ctx context.Context, parcelID uint) ([]*entity.Location, error) {
	if _, err := srv.parcelRepo.FindByID(ctx, parcelID); err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, domainerrors.ErrParcelNotFound
		}

		return nil, errors.Wrap(err, "failed to find parcel by ID")
	}

	history, err := srv.locationRepo.History(ctx, parcelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location history")
	}

	return history, nil
}

// Latest returns the most recent ping for the parcel.
func (srv *locationService) Latest(ctx context.Context, parcelID uint) (*entity.Location, error) {
	latest, err := srv.locationRepo.Latest(ctx, parcelID)
	if err != nil {
		if errors.Is(err, repository.ErrNoLocationRecorded) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load latest location")
	}

	return latest, nil
}
