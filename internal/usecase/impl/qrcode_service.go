package impl

import (
	"context"
	"log/slog"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// qrCodeService implements the QRCodeUsecase interface. Scan confirmations
// delegate the transition to the parcel lifecycle service so every guard
// applies the same way it does over plain HTTP.
type qrCodeService struct {
	qrService     service.QRCodeService
	parcelRepo    repository.ParcelRepository
	parcelUsecase usecase.ParcelUsecase
	logger        *slog.Logger
}

// QRCodeServiceParams holds dependencies for qrCodeService, injected by Fx.
type QRCodeServiceParams struct {
	fx.In

	QRService     service.QRCodeService
	ParcelRepo    repository.ParcelRepository
	ParcelUsecase usecase.ParcelUsecase
	Logger        *slog.Logger
}

// NewQRCodeService is the constructor for qrCodeService.
func NewQRCodeService(params QRCodeServiceParams) usecase.QRCodeUsecase {
	return &qrCodeService{
		qrService:     params.QRService,
		parcelRepo:    params.ParcelRepo,
		parcelUsecase: params.ParcelUsecase,
		logger:        params.Logger,
	}
}

func (srv *qrCodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate renders the parcel's QR code and stores it on the parcel.
func (srv *qrCodeService) Generate(ctx context.Context, parcelID uint) (string, string, error) {
	parcel, err := srv.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return "", "", domainerrors.ErrParcelNotFound
		}

		return "", "", errors.Wrap(err, "failed to find parcel by ID")
	}

	dataURL, err := srv.qrService.GenerateParcelQR(parcel.ID, parcel.TrackingNumber)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate QR code")
	}

	parcel.QRCode = dataURL
	if err := srv.parcelRepo.Update(ctx, parcel); err != nil {
		return "", "", errors.Wrap(err, "failed to store QR code")
	}

	srv.log(ctx).Debug("QR code generated", slog.Uint64("parcelID", uint64(parcel.ID)))

	return dataURL, parcel.TrackingNumber, nil
}

// Validate checks a scanned payload against the parcel records. A malformed
// or mismatching payload yields Valid=false, not an error.
func (srv *qrCodeService) Validate(ctx context.Context, qrData string) (*usecase.QRValidationResult, error) {
	data, err := srv.qrService.ParseParcelQR(qrData)
	if err != nil {
		return &usecase.QRValidationResult{Valid: false, Message: "Invalid QR code format"}, nil
	}

	parcel, err := srv.parcelRepo.FindByTrackingNumber(ctx, data.TrackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return &usecase.QRValidationResult{Valid: false, Message: "No parcel matches this QR code"}, nil
		}

		return nil, errors.Wrap(err, "failed to find parcel by tracking number")
	}

	if parcel.ID != data.ParcelID {
		return &usecase.QRValidationResult{Valid: false, Message: "QR code does not match the parcel record"}, nil
	}

	return &usecase.QRValidationResult{Valid: true, Parcel: parcel, Message: "QR code is valid"}, nil
}

// ConfirmPickup scans a QR code and transitions the parcel to picked_up.
func (srv *qrCodeService) ConfirmPickup(ctx context.Context, qrData string, actor usecase.Actor) (*entity.Parcel, error) {
	return srv.confirmTransition(ctx, qrData, entity.StatusPickedUp, actor)
}

// ConfirmDelivery scans a QR code and transitions the parcel to delivered.
func (srv *qrCodeService) ConfirmDelivery(ctx context.Context, qrData string, actor usecase.Actor) (*entity.Parcel, error) {
	return srv.confirmTransition(ctx, qrData, entity.StatusDelivered, actor)
}

func (srv *qrCodeService) confirmTransition(ctx context.Context, qrData string, to entity.Status, actor usecase.Actor) (*entity.Parcel, error) {
	data, err := srv.qrService.ParseParcelQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode
	}

	parcel, err := srv.parcelRepo.FindByTrackingNumber(ctx, data.TrackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, domainerrors.ErrInvalidQRCode.WithDetails("no parcel matches this QR code")
		}

		return nil, errors.Wrap(err, "failed to find parcel by tracking number")
	}

	return srv.parcelUsecase.UpdateStatus(ctx, parcel.ID, &usecase.UpdateStatusInput{Status: to}, actor)
}
