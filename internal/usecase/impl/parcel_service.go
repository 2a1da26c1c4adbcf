// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// parcelService implements the ParcelUsecase interface. It is the lifecycle
// core: every status change, assignment and live-position update flows
// through here, and every persisted change is followed by a best-effort
// room fan-out.
type parcelService struct {
	parcelRepo repository.ParcelRepository
	publisher  service.RealtimePublisher
	mailer     service.Mailer
	cfg        *config.Config
	logger     *slog.Logger

	now func() time.Time
}

// ParcelServiceParams holds dependencies for parcelService, injected by Fx.
type ParcelServiceParams struct {
	fx.In

	ParcelRepo repository.ParcelRepository
	Publisher  service.RealtimePublisher
	Mailer     service.Mailer `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewParcelService is the constructor for parcelService.
func NewParcelService(params ParcelServiceParams) usecase.ParcelUsecase {
	return &parcelService{
		parcelRepo: params.ParcelRepo,
		publisher:  params.Publisher,
		mailer:     params.Mailer,
		cfg:        params.Config,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *parcelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a new parcel with status pending.
func (srv *parcelService) Create(ctx context.Context, customerID uint, input *usecase.CreateParcelInput) (*entity.Parcel, error) {
	if input.Payment == entity.PaymentCOD && input.CODAmount == nil {
		return nil, domainerrors.ErrCODAmountRequired
	}
	if input.CODAmount != nil && *input.CODAmount < 0 {
		return nil, domainerrors.ErrCODAmountNegative
	}

	now := srv.now()
	parcel := &entity.Parcel{
		TrackingNumber:    entity.NewTrackingNumber(srv.cfg.Tracking.Prefix, now),
		CustomerID:        customerID,
		PickupAddress:     input.PickupAddress,
		PickupLatitude:    input.PickupLatitude,
		PickupLongitude:   input.PickupLongitude,
		DeliveryAddress:   input.DeliveryAddress,
		DeliveryLatitude:  input.DeliveryLatitude,
		DeliveryLongitude: input.DeliveryLongitude,
		Size:              input.Size,
		Type:              input.Type,
		Description:       input.Description,
		Weight:            input.Weight,
		PaymentMethod:     input.Payment,
		Status:            entity.StatusPending,
	}
	if parcel.Size == "" {
		parcel.Size = entity.SizeMedium
	}
	if parcel.Type == "" {
		parcel.Type = entity.TypePackage
	}
	if parcel.PaymentMethod == "" {
		parcel.PaymentMethod = entity.PaymentPrepaid
	}
	if input.CODAmount != nil {
		amount := decimal.NewFromFloat(*input.CODAmount)
		parcel.CODAmount = &amount
	}
	parcel.DeliveryCharge = srv.estimateDeliveryCharge(parcel)

	if err := srv.parcelRepo.Create(ctx, parcel); err != nil {
		if errors.Is(err, repository.ErrDuplicateTrackingNumber) {
			return nil, domainerrors.ErrTrackingNumberConflict
		}

		return nil, errors.Wrap(err, "failed to create parcel")
	}

	created, err := srv.parcelRepo.FindByID(ctx, parcel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created parcel")
	}

	payload := service.NewParcelPayload{Parcel: created, Timestamp: srv.now()}
	srv.publisher.Publish(service.AdminRoom, service.EventNewParcel, payload)
	srv.publisher.Publish(service.CustomerRoom(created.CustomerID), service.EventNewParcel, payload)

	srv.sendBookingConfirmation(ctx, created)

	srv.log(ctx).Info("Parcel booked",
		slog.Uint64("parcelID", uint64(created.ID)),
		slog.String("trackingNumber", created.TrackingNumber),
	)

	return created, nil
}

// AssignAgent sets the parcel's agent, overwriting any prior assignment.
func (srv *parcelService) AssignAgent(ctx context.Context, parcelID, agentID uint) (*entity.Parcel, error) {
	parcel, err := srv.findParcel(ctx, parcelID)
	if err != nil {
		return nil, err
	}

	if parcel.Status == entity.StatusDelivered || parcel.Status == entity.StatusFailed {
		return nil, domainerrors.ErrParcelNotAssignable.WithDetails(
			"parcel status is " + parcel.Status.String(),
		)
	}

	parcel.AgentID = &agentID

	if err := srv.parcelRepo.Update(ctx, parcel); err != nil {
		return nil, errors.Wrap(err, "failed to assign agent")
	}

	updated, err := srv.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload parcel after assignment")
	}

	payload := service.AgentAssignedPayload{
		ParcelID:  updated.ID,
		Agent:     updated.Agent,
		Parcel:    updated,
		Timestamp: srv.now(),
	}
	srv.publisher.Publish(service.ParcelRoom(updated.ID), service.EventAgentAssigned, payload)
	srv.publisher.Publish(service.AdminRoom, service.EventAgentAssigned, payload)
	srv.publisher.Publish(service.CustomerRoom(updated.CustomerID), service.EventAgentAssigned, payload)

	srv.log(ctx).Info("Agent assigned",
		slog.Uint64("parcelID", uint64(updated.ID)),
		slog.Uint64("agentID", uint64(agentID)),
	)

	return updated, nil
}

// UpdateStatus performs a validated status transition.
func (srv *parcelService) UpdateStatus(ctx context.Context, parcelID uint, input *usecase.UpdateStatusInput, actor usecase.Actor) (*entity.Parcel, error) {
	parcel, err := srv.findParcel(ctx, parcelID)
	if err != nil {
		return nil, err
	}

	if actor.Role == entity.RoleDeliveryAgent && !isAssignedAgent(parcel, actor.ID) {
		return nil, domainerrors.ErrForbidden.WithDetails(
			"you can only update status of your assigned parcels",
		)
	}

	if err := parcel.ApplyStatus(input.Status, input.FailureReason, srv.now()); err != nil {
		var transitionErr *entity.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			return nil, domainerrors.NewInvalidTransitionError(
				transitionErr.From.String(),
				transitionErr.To.String(),
			)
		}

		return nil, errors.Wrap(err, "failed to apply status")
	}

	if err := srv.parcelRepo.Update(ctx, parcel); err != nil {
		return nil, errors.Wrap(err, "failed to update parcel status")
	}

	updated, err := srv.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload parcel after status update")
	}

	payload := service.StatusUpdatePayload{
		ParcelID:  updated.ID,
		Status:    updated.Status,
		Parcel:    updated,
		Timestamp: srv.now(),
	}
	srv.publisher.Publish(service.ParcelRoom(updated.ID), service.EventStatusUpdate, payload)
	srv.publisher.Publish(service.AdminRoom, service.EventStatusUpdate, payload)
	srv.publisher.Publish(service.CustomerRoom(updated.CustomerID), service.EventStatusUpdate, payload)

	srv.sendStatusMail(ctx, updated)

	srv.log(ctx).Info("Parcel status updated",
		slog.Uint64("parcelID", uint64(updated.ID)),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// UpdateCurrentLocation overwrites the parcel's live position.
// The fan-out goes to the parcel's tracking room only.
func (srv *parcelService) UpdateCurrentLocation(ctx context.Context, parcelID uint, latitude, longitude float64, actorID uint) (*entity.Parcel, error) {
	parcel, err := srv.findParcel(ctx, parcelID)
	if err != nil {
		return nil, err
	}

	if !isAssignedAgent(parcel, actorID) {
		return nil, domainerrors.ErrForbidden.WithDetails(
			"you can only update location of your assigned parcels",
		)
	}

	parcel.CurrentLatitude = &latitude
	parcel.CurrentLongitude = &longitude

	if err := srv.parcelRepo.Update(ctx, parcel); err != nil {
		return nil, errors.Wrap(err, "failed to update parcel location")
	}

	srv.publisher.Publish(service.ParcelRoom(parcel.ID), service.EventLocationUpdate, service.LocationUpdatePayload{
		ParcelID:  parcel.ID,
		Location:  service.GeoPoint{Latitude: latitude, Longitude: longitude},
		Timestamp: srv.now(),
	})

	return parcel, nil
}

// Update applies an admin free-form edit without transition checks.
func (srv *parcelService) Update(ctx context.Context, parcelID uint, input *usecase.UpdateParcelInput) (*entity.Parcel, error) {
	parcel, err := srv.findParcel(ctx, parcelID)
	if err != nil {
		return nil, err
	}

	applyParcelUpdates(parcel, input)

	if err := srv.parcelRepo.Update(ctx, parcel); err != nil {
		return nil, errors.Wrap(err, "failed to update parcel")
	}

	return parcel, nil
}

// Delete removes a parcel unconditionally.
func (srv *parcelService) Delete(ctx context.Context, parcelID uint) error {
	if _, err := srv.findParcel(ctx, parcelID); err != nil {
		return err
	}

	if err := srv.parcelRepo.Delete(ctx, parcelID); err != nil {
		return errors.Wrap(err, "failed to delete parcel")
	}

	return nil
}

// FindByID retrieves a parcel by its numeric ID.
func (srv *parcelService) FindByID(ctx context.Context, parcelID uint) (*entity.Parcel, error) {
	return srv.findParcel(ctx, parcelID)
}

// FindByTrackingNumber retrieves a parcel by its tracking number.
func (srv *parcelService) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Parcel, error) {
	parcel, err := srv.parcelRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, domainerrors.ErrParcelNotFound.WithDetails("tracking number " + trackingNumber)
		}

		return nil, errors.Wrap(err, "failed to find parcel by tracking number")
	}

	return parcel, nil
}

// List returns parcels matching the filter, newest first.
func (srv *parcelService) List(ctx context.Context, filter repository.ParcelFilter) ([]*entity.Parcel, error) {
	parcels, err := srv.parcelRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parcels")
	}

	return parcels, nil
}

// BookingHistory returns all parcels booked by a customer.
func (srv *parcelService) BookingHistory(ctx context.Context, customerID uint) ([]*entity.Parcel, error) {
	return srv.List(ctx, repository.ParcelFilter{CustomerID: &customerID})
}

// AssignedParcels returns all parcels assigned to an agent.
func (srv *parcelService) AssignedParcels(ctx context.Context, agentID uint) ([]*entity.Parcel, error) {
	return srv.List(ctx, repository.ParcelFilter{AgentID: &agentID})
}

func (srv *parcelService) findParcel(ctx context.Context, parcelID uint) (*entity.Parcel, error) {
	parcel, err := srv.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, domainerrors.ErrParcelNotFound
		}

		return nil, errors.Wrap(err, "failed to find parcel by ID")
	}

	return parcel, nil
}

// estimateDeliveryCharge derives the charge from the haversine distance
// between pickup and delivery. Parcels without both coordinate pairs keep a
// zero charge for an admin to fill in later.
func (srv *parcelService) estimateDeliveryCharge(parcel *entity.Parcel) decimal.Decimal {
	pricing := srv.cfg.Pricing
	if pricing == nil {
		return decimal.Zero
	}
	if parcel.PickupLatitude == nil || parcel.PickupLongitude == nil ||
		parcel.DeliveryLatitude == nil || parcel.DeliveryLongitude == nil {
		return decimal.NewFromFloat(pricing.BaseCharge).Round(2)
	}

	pickup := orb.Point{*parcel.PickupLongitude, *parcel.PickupLatitude}
	delivery := orb.Point{*parcel.DeliveryLongitude, *parcel.DeliveryLatitude}
	km := geo.DistanceHaversine(pickup, delivery) / 1000

	charge := pricing.BaseCharge + pricing.ChargePerKm*km

	return decimal.NewFromFloat(charge).Round(2)
}

func (srv *parcelService) sendBookingConfirmation(ctx context.Context, parcel *entity.Parcel) {
	if srv.mailer == nil || parcel.Customer == nil {
		return
	}

	mail := service.BookingConfirmationMail{
		To:              parcel.Customer.Email,
		CustomerName:    parcel.Customer.Name,
		TrackingNumber:  parcel.TrackingNumber,
		PickupAddress:   parcel.PickupAddress,
		DeliveryAddress: parcel.DeliveryAddress,
	}
	if err := srv.mailer.SendBookingConfirmation(ctx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send booking confirmation email",
			slog.String("trackingNumber", parcel.TrackingNumber),
			slog.Any("error", err),
		)
	}
}

func (srv *parcelService) sendStatusMail(ctx context.Context, parcel *entity.Parcel) {
	if srv.mailer == nil || parcel.Customer == nil {
		return
	}

	var err error
	if parcel.Status == entity.StatusDelivered {
		deliveredAt := ""
		if parcel.DeliveredAt != nil {
			deliveredAt = parcel.DeliveredAt.Format(time.RFC1123)
		}
		err = srv.mailer.SendDeliveryConfirmation(ctx, service.DeliveryConfirmationMail{
			To:             parcel.Customer.Email,
			CustomerName:   parcel.Customer.Name,
			TrackingNumber: parcel.TrackingNumber,
			DeliveredAt:    deliveredAt,
		})
	} else {
		err = srv.mailer.SendStatusUpdate(ctx, service.StatusUpdateMail{
			To:             parcel.Customer.Email,
			CustomerName:   parcel.Customer.Name,
			TrackingNumber: parcel.TrackingNumber,
			Status:         parcel.Status.String(),
		})
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to send status email",
			slog.String("trackingNumber", parcel.TrackingNumber),
			slog.Any("error", err),
		)
	}
}

func isAssignedAgent(parcel *entity.Parcel, userID uint) bool {
	return parcel.AgentID != nil && *parcel.AgentID == userID
}

// applyParcelUpdates applies the update input to a parcel.
func applyParcelUpdates(parcel *entity.Parcel, input *usecase.UpdateParcelInput) {
	if input.PickupAddress != nil {
		parcel.PickupAddress = *input.PickupAddress
	}
	if input.PickupLatitude != nil {
		parcel.PickupLatitude = input.PickupLatitude
	}
	if input.PickupLongitude != nil {
		parcel.PickupLongitude = input.PickupLongitude
	}
	if input.DeliveryAddress != nil {
		parcel.DeliveryAddress = *input.DeliveryAddress
	}
	if input.DeliveryLatitude != nil {
		parcel.DeliveryLatitude = input.DeliveryLatitude
	}
	if input.DeliveryLongitude != nil {
		parcel.DeliveryLongitude = input.DeliveryLongitude
	}
	if input.Size != nil {
		parcel.Size = *input.Size
	}
	if input.Type != nil {
		parcel.Type = *input.Type
	}
	if input.Description != nil {
		parcel.Description = *input.Description
	}
	if input.Weight != nil {
		parcel.Weight = input.Weight
	}
	if input.DeliveryCharge != nil {
		parcel.DeliveryCharge = decimal.NewFromFloat(*input.DeliveryCharge).Round(2)
	}
}
