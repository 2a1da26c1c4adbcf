package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"courier/internal/delivery/http/response"
	"courier/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MapsHandler exposes the external maps provider. The route service is nil
// when no API key is configured; every endpoint then reports the feature as
// unavailable.
type MapsHandler struct {
	routeService service.RouteService
	logger       *slog.Logger
}

// NewMapsHandler is the constructor for MapsHandler, injected by Fx.
func NewMapsHandler(routeService service.RouteService, logger *slog.Logger) *MapsHandler {
	return &MapsHandler{
		routeService: routeService,
		logger:       logger,
	}
}

func (h *MapsHandler) unavailable(c echo.Context) error {
	return response.ServiceUnavailable(c, "MAPS_UNAVAILABLE", "Maps features are not configured")
}

// Geocode resolves a free-form address to coordinates.
func (h *MapsHandler) Geocode(c echo.Context) error {
	if h.routeService == nil {
		return h.unavailable(c)
	}

	address := c.QueryParam("address")
	if address == "" {
		return response.BadRequest(c, "INVALID_INPUT", "address is required")
	}

	result, err := h.routeService.Geocode(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ReverseGeocode resolves coordinates to a formatted address.
func (h *MapsHandler) ReverseGeocode(c echo.Context) error {
	if h.routeService == nil {
		return h.unavailable(c)
	}

	point, err := parsePointQuery(c, "lat", "lng")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	address, err := h.routeService.ReverseGeocode(c.Request().Context(), point)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"address": address}, "")
}

// Distance estimates driving distance and duration between two points.
func (h *MapsHandler) Distance(c echo.Context) error {
	if h.routeService == nil {
		return h.unavailable(c)
	}

	origin, err := parsePointQuery(c, "origin_lat", "origin_lng")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	destination, err := parsePointQuery(c, "dest_lat", "dest_lng")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	estimate, err := h.routeService.Distance(c.Request().Context(), origin, destination)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, estimate, "")
}

type optimizeRouteRequest struct {
	Origin      service.GeoPoint   `json:"origin"`
	Waypoints   []service.GeoPoint `json:"waypoints"`
	Destination *service.GeoPoint  `json:"destination,omitempty"`
}

// OptimizeRoute computes the provider-optimized visiting order for a set of
// delivery stops.
func (h *MapsHandler) OptimizeRoute(c echo.Context) error {
	if h.routeService == nil {
		return h.unavailable(c)
	}

	var req optimizeRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if len(req.Waypoints) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "at least one waypoint is required")
	}

	route, err := h.routeService.OptimizedRoute(c.Request().Context(), req.Origin, req.Waypoints, req.Destination)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "")
}

func parsePointQuery(c echo.Context, latParam, lngParam string) (service.GeoPoint, error) {
	lat, err := strconv.ParseFloat(c.QueryParam(latParam), 64)
	if err != nil {
		return service.GeoPoint{}, errors.Errorf("%s is required and must be a number", latParam)
	}
	lng, err := strconv.ParseFloat(c.QueryParam(lngParam), 64)
	if err != nil {
		return service.GeoPoint{}, errors.Errorf("%s is required and must be a number", lngParam)
	}

	return service.GeoPoint{Latitude: lat, Longitude: lng}, nil
}
