// Package cache provides idempotency key storage for mutating HTTP
// endpoints. Recompute and shopping list requests carry an
// Idempotency-Key header; replays within the TTL are rejected.
package cache

import (
	"context"
	"time"
)

// IdempotencyStore tracks which request keys have already been processed
type IdempotencyStore interface {
	// MarkProcessed records a key with a TTL. Returns true if the key was
	// newly marked, false if a live entry already existed.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed reports whether a live entry exists for the key
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the store
	Close() error
}
