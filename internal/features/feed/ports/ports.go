package ports

import (
	"context"

	riskdomain "logisafe/internal/features/riskzones/domain"
)

// ZoneGenerator produces a new risk zone from a free-text query.
// Implemented by the riskzones service.
type ZoneGenerator interface {
	GenerateForQuery(ctx context.Context, query string) (riskdomain.RiskZone, error)
}
