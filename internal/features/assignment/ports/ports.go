package ports

import (
	"context"

	"logisafe/internal/features/assignment/domain"
	driverdomain "logisafe/internal/features/drivers/domain"
	orderdomain "logisafe/internal/features/orders/domain"
	riskdomain "logisafe/internal/features/riskzones/domain"
	routedomain "logisafe/internal/features/routes/domain"
	routeports "logisafe/internal/features/routes/ports"
)

// RouteOptimizer generates the labeled route variants for a request.
// Implemented by the routes service.
type RouteOptimizer interface {
	Optimize(ctx context.Context, req routeports.OptimizeRequest) (map[routedomain.VariantKey]routedomain.RouteVariant, error)
}

// DriverDirectory looks up drivers in the fleet roster.
// Implemented by the drivers service.
type DriverDirectory interface {
	Get(id string) (driverdomain.Driver, error)
}

// OrderAssigner binds a driver and route to an order.
// Implemented by the orders service.
type OrderAssigner interface {
	MarkAssigned(ctx context.Context, id, driverID, route string) (orderdomain.Order, error)
}

// ZoneUpdater refreshes risk data for a route after assignment.
// Implemented by the riskzones service.
type ZoneUpdater interface {
	GenerateForQuery(ctx context.Context, query string) (riskdomain.RiskZone, error)
}

// RecordLog persists the assignment history.
type RecordLog interface {
	// Append adds a record to the log.
	Append(ctx context.Context, record domain.AssignmentRecord) error

	// List returns every record in insertion order.
	// A missing collection is an empty list, not an error.
	List(ctx context.Context) ([]domain.AssignmentRecord, error)
}
