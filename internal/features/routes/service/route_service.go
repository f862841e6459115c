package service

import (
	"context"
	"errors"
	"fmt"

	"logisafe/internal/features/routes/domain"
	"logisafe/internal/features/routes/ports"
)

// ErrMissingLocation is returned when origin or destination is empty.
var ErrMissingLocation = errors.New("start and end locations are required")

// RouteService validates optimize requests and delegates variant generation
// to the configured source.
type RouteService struct {
	source ports.RouteVariantSource
}

// NewRouteService creates a new RouteService.
func NewRouteService(source ports.RouteVariantSource) *RouteService {
	return &RouteService{source: source}
}

// Optimize generates the labeled route variants for the request. An empty
// origin or destination rejects the whole request; no partial result is
// returned.
func (s *RouteService) Optimize(ctx context.Context, req ports.OptimizeRequest) (map[domain.VariantKey]domain.RouteVariant, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, ErrMissingLocation
	}
	if req.Mode == "" {
		req.Mode = domain.ModeBasic
	}

	variants, err := s.source.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate route variants: %w", err)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("variant source returned no routes")
	}

	return variants, nil
}
