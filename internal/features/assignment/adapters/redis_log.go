package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"logisafe/internal/core/cache"
	"logisafe/internal/features/assignment/domain"
)

const assignmentsCacheKey = "driver_assignments"

// RedisRecordLog implements ports.RecordLog on the cache port,
// storing the whole log as one JSON document.
type RedisRecordLog struct {
	cache cache.Cache
}

// NewRedisRecordLog creates a new RedisRecordLog.
func NewRedisRecordLog(c cache.Cache) *RedisRecordLog {
	return &RedisRecordLog{
		cache: c,
	}
}

// List returns the stored records, or an empty slice when none exist yet.
func (r *RedisRecordLog) List(ctx context.Context) ([]domain.AssignmentRecord, error) {
	data, err := r.cache.Get(ctx, assignmentsCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return []domain.AssignmentRecord{}, nil
		}
		return nil, fmt.Errorf("failed to get assignment log from cache: %w", err)
	}

	var records []domain.AssignmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignment log: %w", err)
	}

	return records, nil
}

// Append adds a record to the log.
func (r *RedisRecordLog) Append(ctx context.Context, record domain.AssignmentRecord) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment log: %w", err)
	}

	if err := r.cache.Set(ctx, assignmentsCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save assignment log to cache: %w", err)
	}

	return nil
}
