package ports

import (
	"context"

	"logisafe/internal/features/geo/domain"
)

// DirectionsProvider defines the interface for external directions lookups.
// This is a Secondary Port (Driven Port); the GoMaps adapter implements it.
type DirectionsProvider interface {
	// GetDirections fetches drivable routes between two named locations.
	// Any failure (transport error, non-OK status, malformed payload) is
	// returned as an error; callers decide whether to fall back.
	GetDirections(ctx context.Context, origin, destination string, waypoints []string, travelMode string) (*domain.DirectionsResponse, error)
}
