package ports

import (
	"context"

	"logisafe/internal/features/orders/domain"
)

// OrderRepository persists the order collection.
// Orders are upserted, never deleted.
type OrderRepository interface {
	// Save inserts the order, or replaces an existing one with the same ID.
	Save(ctx context.Context, order domain.Order) error

	// Get returns the order with the given ID, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*domain.Order, error)

	// List returns every order in insertion order.
	// A missing collection is an empty list, not an error.
	List(ctx context.Context) ([]domain.Order, error)
}
