package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"logisafe/internal/core/cache"
	"logisafe/internal/features/orders/domain"
)

const ordersCacheKey = "orders"

// RedisOrderRepository implements ports.OrderRepository on the cache port,
// storing the whole collection as one JSON document.
type RedisOrderRepository struct {
	cache cache.Cache
}

// NewRedisOrderRepository creates a new RedisOrderRepository.
func NewRedisOrderRepository(c cache.Cache) *RedisOrderRepository {
	return &RedisOrderRepository{
		cache: c,
	}
}

// List returns the stored orders, or an empty slice when none exist yet.
func (r *RedisOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	data, err := r.cache.Get(ctx, ordersCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("failed to get orders from cache: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}

	return orders, nil
}

// Get returns the order with the given ID, or nil when absent.
func (r *RedisOrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// Save upserts the order into the collection.
// The workflow serializes writers, so load-modify-store is race-free here.
func (r *RedisOrderRepository) Save(ctx context.Context, order domain.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			replaced = true
			break
		}
	}
	if !replaced {
		orders = append(orders, order)
	}

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}

	if err := r.cache.Set(ctx, ordersCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save orders to cache: %w", err)
	}

	return nil
}
