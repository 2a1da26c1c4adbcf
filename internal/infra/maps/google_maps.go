// Package maps wraps the Google Maps APIs behind the domain RouteService.
package maps

import (
	"context"
	"fmt"
	"log/slog"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"

	"go.uber.org/fx"
	gmaps "googlemaps.github.io/maps"
)

// googleRouteService implements the RouteService interface using the Google
// Maps Directions, Distance Matrix and Geocoding APIs.
type googleRouteService struct {
	client *gmaps.Client
	logger *slog.Logger
}

// RouteServiceParams holds dependencies for the route service, injected by Fx.
type RouteServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGoogleRouteService is the constructor for googleRouteService. When no
// API key is configured it returns a nil RouteService and the maps endpoints
// report the feature as unavailable.
func NewGoogleRouteService(params RouteServiceParams) (service.RouteService, error) {
	if params.Config.Maps == nil || params.Config.Maps.APIKey == "" {
		params.Logger.Info("Maps API key not configured, route features disabled")

		return nil, nil
	}

	client, err := gmaps.NewClient(gmaps.WithAPIKey(params.Config.Maps.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	return &googleRouteService{
		client: client,
		logger: params.Logger,
	}, nil
}

// OptimizedRoute computes a driving route visiting all waypoints in the
// provider-optimized order.
func (s *googleRouteService) OptimizedRoute(ctx context.Context, origin service.GeoPoint, waypoints []service.GeoPoint, destination *service.GeoPoint) (*service.Route, error) {
	if err := validatePoint(origin); err != nil {
		return nil, err
	}
	if len(waypoints) == 0 {
		return nil, errors.New("at least one waypoint is required")
	}
	for _, wp := range waypoints {
		if err := validatePoint(wp); err != nil {
			return nil, err
		}
	}

	dest := waypoints[len(waypoints)-1]
	via := waypoints[:len(waypoints)-1]
	if destination != nil {
		if err := validatePoint(*destination); err != nil {
			return nil, err
		}
		dest = *destination
		via = waypoints
	}

	req := &gmaps.DirectionsRequest{
		Origin:      formatPoint(origin),
		Destination: formatPoint(dest),
		Mode:        gmaps.TravelModeDriving,
		Optimize:    true,
	}
	for _, wp := range via {
		req.Waypoints = append(req.Waypoints, formatPoint(wp))
	}

	routes, _, err := s.client.Directions(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	if len(routes) == 0 {
		return nil, errors.New("no route found")
	}

	best := routes[0]
	route := &service.Route{
		WaypointOrder: best.WaypointOrder,
		Polyline:      best.OverviewPolyline.Points,
	}
	for _, leg := range best.Legs {
		route.Legs = append(route.Legs, service.RouteLeg{
			DistanceMeters:  leg.Distance.Meters,
			DurationSeconds: int(leg.Duration.Seconds()),
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
		})
		route.DistanceMeters += leg.Distance.Meters
		route.DurationSeconds += int(leg.Duration.Seconds())
	}

	return route, nil
}

// Distance estimates driving distance and duration between two points.
func (s *googleRouteService) Distance(ctx context.Context, origin, destination service.GeoPoint) (*service.DistanceEstimate, error) {
	if err := validatePoint(origin); err != nil {
		return nil, err
	}
	if err := validatePoint(destination); err != nil {
		return nil, err
	}

	resp, err := s.client.DistanceMatrix(ctx, &gmaps.DistanceMatrixRequest{
		Origins:      []string{formatPoint(origin)},
		Destinations: []string{formatPoint(destination)},
		Mode:         gmaps.TravelModeDriving,
	})
	if err != nil {
		return nil, errors.Wrap(err, "distance matrix request failed")
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, errors.New("empty distance matrix response")
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, errors.Errorf("distance lookup failed: %s", element.Status)
	}

	return &service.DistanceEstimate{
		DistanceMeters:  element.Distance.Meters,
		DurationSeconds: int(element.Duration.Seconds()),
		DistanceText:    element.Distance.HumanReadable,
		DurationText:    element.Duration.String(),
	}, nil
}

// Geocode resolves a free-form address to coordinates.
func (s *googleRouteService) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	if address == "" {
		return nil, errors.New("address is required")
	}

	results, err := s.client.Geocode(ctx, &gmaps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, errors.Wrap(err, "geocode request failed")
	}
	if len(results) == 0 {
		return nil, errors.New("address not found")
	}

	loc := results[0].Geometry.Location

	return &service.GeocodeResult{
		FormattedAddress: results[0].FormattedAddress,
		Location: service.GeoPoint{
			Latitude:  loc.Lat,
			Longitude: loc.Lng,
		},
	}, nil
}

// ReverseGeocode resolves coordinates to a formatted address.
func (s *googleRouteService) ReverseGeocode(ctx context.Context, point service.GeoPoint) (string, error) {
	if err := validatePoint(point); err != nil {
		return "", err
	}

	results, err := s.client.ReverseGeocode(ctx, &gmaps.GeocodingRequest{
		LatLng: &gmaps.LatLng{Lat: point.Latitude, Lng: point.Longitude},
	})
	if err != nil {
		return "", errors.Wrap(err, "reverse geocode request failed")
	}
	if len(results) == 0 {
		return "", errors.New("no address found for coordinates")
	}

	return results[0].FormattedAddress, nil
}

func validatePoint(p service.GeoPoint) error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return errors.Errorf("latitude out of range: %f", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return errors.Errorf("longitude out of range: %f", p.Longitude)
	}

	return nil
}

func formatPoint(p service.GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}
