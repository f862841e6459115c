package ports

import (
	"context"

	"logisafe/internal/features/routes/domain"
)

// OptimizeRequest carries the inputs for one variant generation run.
type OptimizeRequest struct {
	// Origin is the start location name.
	Origin string
	// Destination is the end location name.
	Destination string
	// Stops are optional intermediate stops, in visiting order.
	Stops []string
	// CargoType drives the base risk factor.
	CargoType domain.CargoType
	// Mode selects basic (2 variants) or extended (4 variants) output.
	Mode domain.VariantMode
}

// RouteVariantSource generates the labeled route alternatives for a request.
// The simulated source is the default implementation; a real optimization
// backend can be substituted without touching the assignment workflow.
//
// Implementations must keep the relative risk ordering fixed regardless of
// randomness: the safest variant carries the lowest risk score of the set
// and the fastest the highest.
type RouteVariantSource interface {
	Generate(ctx context.Context, req OptimizeRequest) (map[domain.VariantKey]domain.RouteVariant, error)
}
