package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
// Repositories treat a miss as an empty collection.
var ErrKeyNotFound = errors.New("key not found")

// Cache defines the key/value store operations used by the feature repositories.
// This is a port that can be implemented by different providers (Redis, in-memory, etc.).
// Orders, assignment records and risk zones are persisted as JSON documents
// through this interface; durability is best-effort.
type Cache interface {
	// Get retrieves a value from the store by key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the store by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
