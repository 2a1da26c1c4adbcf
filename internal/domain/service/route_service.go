package service

import "context"

// RouteLeg is one segment of a computed route.
type RouteLeg struct {
	DistanceMeters  int    `json:"distanceMeters"`
	DurationSeconds int    `json:"durationSeconds"`
	StartAddress    string `json:"startAddress"`
	EndAddress      string `json:"endAddress"`
}

// Route is a computed route with its waypoint visiting order.
type Route struct {
	Legs            []RouteLeg `json:"legs"`
	WaypointOrder   []int      `json:"waypointOrder"`
	DistanceMeters  int        `json:"distanceMeters"`
	DurationSeconds int        `json:"durationSeconds"`
	Polyline        string     `json:"polyline"`
}

// DistanceEstimate is a single origin/destination distance lookup.
type DistanceEstimate struct {
	DistanceMeters  int    `json:"distanceMeters"`
	DurationSeconds int    `json:"durationSeconds"`
	DistanceText    string `json:"distanceText"`
	DurationText    string `json:"durationText"`
}

// GeocodeResult resolves an address to coordinates.
type GeocodeResult struct {
	FormattedAddress string   `json:"formattedAddress"`
	Location         GeoPoint `json:"location"`
}

// RouteService wraps the external maps provider. Every method validates
// coordinates before calling out; provider failures surface synchronously
// as wrapped errors with the underlying message attached.
type RouteService interface {
	// OptimizedRoute computes a driving route visiting all waypoints in the
	// provider-optimized order. destination is optional; when nil the last
	// waypoint is the destination.
	OptimizedRoute(ctx context.Context, origin GeoPoint, waypoints []GeoPoint, destination *GeoPoint) (*Route, error)

	// Distance estimates driving distance and duration between two points.
	Distance(ctx context.Context, origin, destination GeoPoint) (*DistanceEstimate, error)

	// Geocode resolves a free-form address to coordinates.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)

	// ReverseGeocode resolves coordinates to a formatted address.
	ReverseGeocode(ctx context.Context, point GeoPoint) (string, error)
}
