package handler

import (
	"log/slog"
	"net/http"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/response"
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for tracking-history handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

type locationView struct {
	ID         uint    `json:"id"`
	ParcelID   uint    `json:"parcelId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	RecordedAt string  `json:"recordedAt"`
}

func toLocationView(location *entity.Location) *locationView {
	if location == nil {
		return nil
	}

	return &locationView{
		ID:         location.ID,
		ParcelID:   location.ParcelID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Address:    location.Address,
		Notes:      location.Notes,
		RecordedAt: location.RecordedAt.UTC().Format(timeLayout),
	}
}

// Add appends a GPS ping to the parcel's history.
func (h *LocationHandler) Add(c echo.Context) error {
	parcelID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	var input usecase.AddLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.uc.AddLocation(c.Request().Context(), parcelID, &input, middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLocationView(location), "Location recorded")
}

// History returns the parcel's full tracking history, newest first.
func (h *LocationHandler) History(c echo.Context) error {
	parcelID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	history, err := h.uc.History(c.Request().Context(), parcelID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*locationView, 0, len(history))
	for _, location := range history {
		views = append(views, toLocationView(location))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Latest returns the most recent ping for the parcel.
func (h *LocationHandler) Latest(c echo.Context) error {
	parcelID, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	location, err := h.uc.Latest(c.Request().Context(), parcelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLocationView(location), "")
}
