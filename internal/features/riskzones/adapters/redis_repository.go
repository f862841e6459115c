package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"logisafe/internal/core/cache"
	"logisafe/internal/features/riskzones/domain"
)

const zonesCacheKey = "risk_zones"

// RedisZoneRepository implements ports.ZoneRepository on the cache port,
// storing the whole collection as one JSON document.
type RedisZoneRepository struct {
	cache cache.Cache
}

// NewRedisZoneRepository creates a new RedisZoneRepository.
func NewRedisZoneRepository(c cache.Cache) *RedisZoneRepository {
	return &RedisZoneRepository{
		cache: c,
	}
}

// List returns the stored zones, or an empty slice when none exist yet.
func (r *RedisZoneRepository) List(ctx context.Context) ([]domain.RiskZone, error) {
	data, err := r.cache.Get(ctx, zonesCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return []domain.RiskZone{}, nil
		}
		return nil, fmt.Errorf("failed to get risk zones from cache: %w", err)
	}

	var zones []domain.RiskZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk zones: %w", err)
	}

	return zones, nil
}

// Append loads the collection, adds the zone and stores it back.
// The service serializes writers, so load-append-store is race-free here.
func (r *RedisZoneRepository) Append(ctx context.Context, zone domain.RiskZone) error {
	zones, err := r.List(ctx)
	if err != nil {
		return err
	}

	zones = append(zones, zone)

	data, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal risk zones: %w", err)
	}

	if err := r.cache.Set(ctx, zonesCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save risk zones to cache: %w", err)
	}

	return nil
}
