package handler

import (
	"log/slog"
	"net/http"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QRCodeHandler holds dependencies for QR code handlers.
type QRCodeHandler struct {
	uc     usecase.QRCodeUsecase
	logger *slog.Logger
}

// NewQRCodeHandler is the constructor for QRCodeHandler, injected by Fx.
func NewQRCodeHandler(uc usecase.QRCodeUsecase, logger *slog.Logger) *QRCodeHandler {
	return &QRCodeHandler{
		uc:     uc,
		logger: logger,
	}
}

type scanRequest struct {
	QRData string `json:"qr_data"`
}

// Generate renders the parcel's QR code and returns it as a data URL.
func (h *QRCodeHandler) Generate(c echo.Context) error {
	parcelID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	qrCode, trackingNumber, err := h.uc.Generate(c.Request().Context(), parcelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"qrCode":         qrCode,
		"trackingNumber": trackingNumber,
	}, "QR code generated")
}

// Validate checks a scanned payload against the parcel records.
func (h *QRCodeHandler) Validate(c echo.Context) error {
	var req scanRequest
	if err := c.Bind(&req); err != nil || req.QRData == "" {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR payload")
	}

	result, err := h.uc.Validate(c.Request().Context(), req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"valid":   result.Valid,
		"parcel":  toParcelView(result.Parcel),
		"message": result.Message,
	}, "")
}

// ConfirmPickup scans a QR code and transitions the parcel to picked_up.
func (h *QRCodeHandler) ConfirmPickup(c echo.Context) error {
	var req scanRequest
	if err := c.Bind(&req); err != nil || req.QRData == "" {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR payload")
	}

	parcel, err := h.uc.ConfirmPickup(c.Request().Context(), req.QRData, middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "Pickup confirmed")
}

// ConfirmDelivery scans a QR code and transitions the parcel to delivered.
func (h *QRCodeHandler) ConfirmDelivery(c echo.Context) error {
	var req scanRequest
	if err := c.Bind(&req); err != nil || req.QRData == "" {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR payload")
	}

	parcel, err := h.uc.ConfirmDelivery(c.Request().Context(), req.QRData, middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "Delivery confirmed")
}
