package ports

import (
	"context"

	"logisafe/internal/features/riskzones/domain"
)

// ZoneRepository persists the generated (non-seeded) risk zones.
// The collection is append-only; zones are never removed or edited.
type ZoneRepository interface {
	// List returns every stored zone in insertion order.
	// A missing collection is an empty list, not an error.
	List(ctx context.Context) ([]domain.RiskZone, error)

	// Append adds a zone to the collection.
	Append(ctx context.Context, zone domain.RiskZone) error
}
