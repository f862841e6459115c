package service

import (
	"context"
	"errors"
	"fmt"

	"logisafe/internal/core/logger"
	"logisafe/internal/features/geo/domain"
	"logisafe/internal/features/geo/ports"

	"go.uber.org/zap"
)

// ErrMissingEndpoint is returned when origin or destination is empty.
var ErrMissingEndpoint = errors.New("origin and destination are required")

// variantOffsets shifts the synthetic midpoint per route variant so that
// overlapping fallback polylines stay visually separable on the map.
var variantOffsets = map[string]domain.Coordinate{
	"fastest":    {Lat: 0.12, Lng: -0.08},
	"safest":     {Lat: -0.12, Lng: 0.08},
	"economical": {Lat: 0.08, Lng: 0.12},
	"balanced":   {Lat: -0.08, Lng: -0.12},
}

// defaultOffset is used for unknown variant keys.
var defaultOffset = domain.Coordinate{Lat: 0.1, Lng: 0.1}

// DirectionsService obtains a drivable path for a route variant, preferring
// the live directions provider and degrading to a synthetic 3-point path on
// any provider failure. Provider failures are never surfaced to the caller
// as errors; the Synthetic flag on the result is the only signal.
type DirectionsService struct {
	provider ports.DirectionsProvider
}

// NewDirectionsService creates a new DirectionsService.
func NewDirectionsService(provider ports.DirectionsProvider) *DirectionsService {
	return &DirectionsService{provider: provider}
}

// GetDirections returns a provider-shaped directions payload for the request,
// synthesized locally when the provider fails. The second return value is
// true for the synthesized case.
func (s *DirectionsService) GetDirections(ctx context.Context, origin, destination string, waypoints []string, travelMode, variant string) (*domain.DirectionsResponse, bool, error) {
	if origin == "" || destination == "" {
		return nil, false, ErrMissingEndpoint
	}
	if travelMode == "" {
		travelMode = "driving"
	}

	resp, err := s.provider.GetDirections(ctx, origin, destination, waypoints, travelMode)
	if err != nil {
		logger.Named("geo").Warn("Directions provider failed, serving synthetic route",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err),
		)
		return s.synthesizeDirections(origin, destination, variant), true, nil
	}

	return resp, false, nil
}

// GetPath returns the flattened coordinate path for the request. The path
// always has at least two points; the synthetic fallback has exactly three.
func (s *DirectionsService) GetPath(ctx context.Context, origin, destination string, waypoints []string, variant string) (domain.Path, error) {
	resp, synthetic, err := s.GetDirections(ctx, origin, destination, waypoints, "driving", variant)
	if err != nil {
		return domain.Path{}, err
	}

	points := resp.FlattenPath()
	if len(points) < 2 {
		// Provider answered OK but with an unusable route; treat it like a failure.
		return SyntheticPath(origin, destination, variant), nil
	}

	return domain.Path{
		Points:    points,
		Synthetic: synthetic,
		Summary:   fmt.Sprintf("%s to %s", origin, destination),
	}, nil
}

// SyntheticPath builds the deterministic 3-point fallback path: origin,
// offset midpoint, destination. Location names outside the city table
// resolve to the default city.
func SyntheticPath(origin, destination, variant string) domain.Path {
	start, _ := domain.Resolve(origin)
	end, _ := domain.Resolve(destination)

	offset, ok := variantOffsets[variant]
	if !ok {
		offset = defaultOffset
	}

	mid := domain.Coordinate{
		Lat: (start.Lat+end.Lat)/2 + offset.Lat,
		Lng: (start.Lng+end.Lng)/2 + offset.Lng,
	}

	return domain.Path{
		Points:    []domain.Coordinate{start, mid, end},
		Synthetic: true,
		Summary:   fmt.Sprintf("%s to %s", origin, destination),
	}
}

// synthesizeDirections wraps SyntheticPath in the provider payload shape so
// both modes stay interchangeable for the consumer.
func (s *DirectionsService) synthesizeDirections(origin, destination, variant string) *domain.DirectionsResponse {
	path := SyntheticPath(origin, destination, variant)
	start := path.Points[0]
	end := path.Points[len(path.Points)-1]

	return &domain.DirectionsResponse{
		Status: "OK",
		Routes: []domain.Route{
			{
				Summary: path.Summary,
				Bounds: domain.Bounds{
					Northeast: domain.Coordinate{Lat: max(start.Lat, end.Lat), Lng: max(start.Lng, end.Lng)},
					Southwest: domain.Coordinate{Lat: min(start.Lat, end.Lat), Lng: min(start.Lng, end.Lng)},
				},
				Legs: []domain.Leg{
					{
						Steps:         []domain.Step{{Path: path.Points}},
						Distance:      domain.TextValue{Text: "150 km", Value: 150000},
						Duration:      domain.TextValue{Text: "2 hours", Value: 7200},
						StartLocation: start,
						EndLocation:   end,
					},
				},
				OverviewPolyline: domain.Polyline{Points: "synthetic"},
				Warnings:         []string{},
				WaypointOrder:    []int{},
			},
		},
		AvailableTravelModes: []string{"DRIVING"},
	}
}
