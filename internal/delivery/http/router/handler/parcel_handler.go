package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/response"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ParcelHandler holds dependencies for parcel-related handlers.
type ParcelHandler struct {
	uc     usecase.ParcelUsecase
	logger *slog.Logger
}

// NewParcelHandler is the constructor for ParcelHandler, injected by Fx.
func NewParcelHandler(uc usecase.ParcelUsecase, logger *slog.Logger) *ParcelHandler {
	return &ParcelHandler{
		uc:     uc,
		logger: logger,
	}
}

// parcelView is the parcel shape returned to clients.
type parcelView struct {
	ID             uint   `json:"id"`
	TrackingNumber string `json:"trackingNumber"`

	CustomerID uint      `json:"customerId"`
	AgentID    *uint     `json:"agentId,omitempty"`
	Customer   *userView `json:"customer,omitempty"`
	Agent      *userView `json:"agent,omitempty"`

	PickupAddress     string   `json:"pickupAddress"`
	PickupLatitude    *float64 `json:"pickupLatitude,omitempty"`
	PickupLongitude   *float64 `json:"pickupLongitude,omitempty"`
	DeliveryAddress   string   `json:"deliveryAddress"`
	DeliveryLatitude  *float64 `json:"deliveryLatitude,omitempty"`
	DeliveryLongitude *float64 `json:"deliveryLongitude,omitempty"`

	CurrentLatitude  *float64 `json:"currentLatitude,omitempty"`
	CurrentLongitude *float64 `json:"currentLongitude,omitempty"`

	Size        entity.ParcelSize `json:"size"`
	Type        entity.ParcelType `json:"type"`
	Description string            `json:"description,omitempty"`
	Weight      *float64          `json:"weight,omitempty"`

	PaymentMethod  entity.PaymentMethod `json:"paymentMethod"`
	CODAmount      *string              `json:"codAmount,omitempty"`
	DeliveryCharge string               `json:"deliveryCharge"`

	Status        entity.Status `json:"status"`
	QRCode        string        `json:"qrCode,omitempty"`
	FailureReason string        `json:"failureReason,omitempty"`

	PickedUpAt  *string `json:"pickedUpAt,omitempty"`
	DeliveredAt *string `json:"deliveredAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func toParcelView(parcel *entity.Parcel) *parcelView {
	if parcel == nil {
		return nil
	}

	view := &parcelView{
		ID:             parcel.ID,
		TrackingNumber: parcel.TrackingNumber,

		CustomerID: parcel.CustomerID,
		AgentID:    parcel.AgentID,
		Customer:   toUserView(parcel.Customer),
		Agent:      toUserView(parcel.Agent),

		PickupAddress:     parcel.PickupAddress,
		PickupLatitude:    parcel.PickupLatitude,
		PickupLongitude:   parcel.PickupLongitude,
		DeliveryAddress:   parcel.DeliveryAddress,
		DeliveryLatitude:  parcel.DeliveryLatitude,
		DeliveryLongitude: parcel.DeliveryLongitude,

		CurrentLatitude:  parcel.CurrentLatitude,
		CurrentLongitude: parcel.CurrentLongitude,

		Size:        parcel.Size,
		Type:        parcel.Type,
		Description: parcel.Description,
		Weight:      parcel.Weight,

		PaymentMethod:  parcel.PaymentMethod,
		DeliveryCharge: parcel.DeliveryCharge.StringFixed(2),

		Status:        parcel.Status,
		QRCode:        parcel.QRCode,
		FailureReason: parcel.FailureReason,

		CreatedAt: parcel.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: parcel.UpdatedAt.UTC().Format(timeLayout),
	}

	if parcel.CODAmount != nil {
		amount := parcel.CODAmount.StringFixed(2)
		view.CODAmount = &amount
	}
	if parcel.PickedUpAt != nil {
		ts := parcel.PickedUpAt.UTC().Format(timeLayout)
		view.PickedUpAt = &ts
	}
	if parcel.DeliveredAt != nil {
		ts := parcel.DeliveredAt.UTC().Format(timeLayout)
		view.DeliveredAt = &ts
	}

	return view
}

func toParcelViews(parcels []*entity.Parcel) []*parcelView {
	views := make([]*parcelView, 0, len(parcels))
	for _, parcel := range parcels {
		views = append(views, toParcelView(parcel))
	}

	return views
}

// createParcelRequest wraps the booking input with the admin-only override
// of the owning customer.
type createParcelRequest struct {
	usecase.CreateParcelInput
	CustomerID *uint `json:"customer_id,omitempty"`
}

// Create books a new parcel. Customers book for themselves; admins may book
// on behalf of a customer by naming them.
func (h *ParcelHandler) Create(c echo.Context) error {
	var req createParcelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	actor := middleware.ActorFromContext(c)
	customerID := actor.ID
	if req.CustomerID != nil {
		if !actor.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Only admins can book on behalf of a customer")
		}
		customerID = *req.CustomerID
	}

	parcel, err := h.uc.Create(c.Request().Context(), customerID, &req.CreateParcelInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toParcelView(parcel), "Parcel booked successfully")
}

// List returns parcels matching the query filters.
func (h *ParcelHandler) List(c echo.Context) error {
	var filter repository.ParcelFilter

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.Status(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown status "+raw)
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("customer_id"); raw != "" {
		id, err := parseUintQuery(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid customer_id")
		}
		filter.CustomerID = &id
	}
	if raw := c.QueryParam("agent_id"); raw != "" {
		id, err := parseUintQuery(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid agent_id")
		}
		filter.AgentID = &id
	}

	parcels, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelViews(parcels), "")
}

// MyBookings returns the authenticated customer's booking history.
func (h *ParcelHandler) MyBookings(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	parcels, err := h.uc.BookingHistory(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelViews(parcels), "")
}

// Assigned returns the authenticated agent's assigned parcels.
func (h *ParcelHandler) Assigned(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	parcels, err := h.uc.AssignedParcels(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelViews(parcels), "")
}

// Get returns one parcel. Agents see their assigned parcels, customers their
// own bookings, admins everything.
func (h *ParcelHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	parcel, err := h.uc.FindByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if !canReadParcel(middleware.ActorFromContext(c), parcel) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "")
}

// Track returns a parcel by tracking number. Public: no authentication.
func (h *ParcelHandler) Track(c echo.Context) error {
	trackingNumber := c.Param("trackingNumber")

	parcel, err := h.uc.FindByTrackingNumber(c.Request().Context(), trackingNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "")
}

// Update applies an admin free-form field edit.
func (h *ParcelHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	var input usecase.UpdateParcelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	parcel, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "Parcel updated successfully")
}

// Delete removes a parcel.
func (h *ParcelHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Parcel deleted")
}

// AssignAgent sets the parcel's delivery agent.
func (h *ParcelHandler) AssignAgent(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	var body struct {
		AgentID uint `json:"agent_id"`
	}
	if err := c.Bind(&body); err != nil || body.AgentID == 0 {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	parcel, err := h.uc.AssignAgent(c.Request().Context(), id, body.AgentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "Agent assigned successfully")
}

// UpdateStatus performs a validated status transition.
func (h *ParcelHandler) UpdateStatus(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	var input usecase.UpdateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if !input.Status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown status "+input.Status.String())
	}

	parcel, err := h.uc.UpdateStatus(c.Request().Context(), id, &input, middleware.ActorFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "Parcel status updated")
}

// UpdateLocation overwrites the parcel's live position.
func (h *ParcelHandler) UpdateLocation(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID")
	}

	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	actor := middleware.ActorFromContext(c)
	parcel, err := h.uc.UpdateCurrentLocation(c.Request().Context(), id, body.Latitude, body.Longitude, actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toParcelView(parcel), "Parcel location updated")
}

// parseUintQuery reads a numeric query parameter value.
func parseUintQuery(raw string) (uint, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(value), nil
}

// canReadParcel applies the read access rule shared by parcel detail reads.
func canReadParcel(actor usecase.Actor, parcel *entity.Parcel) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.Role == entity.RoleDeliveryAgent {
		return parcel.AgentID != nil && *parcel.AgentID == actor.ID
	}

	return parcel.CustomerID == actor.ID
}
