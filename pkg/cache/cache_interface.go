package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Implementations can be swapped (Redis, in-memory) without touching
// the services that consume it.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// Returns (found, error): on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL. Overwriting an existing
	// key is atomic: readers see either the old value or the new one.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// TTL reports the remaining lifetime of a key.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
