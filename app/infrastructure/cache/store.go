package cache

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable is returned by every Store operation that failed
// because the backing store could not be reached (or was never configured).
// Raw transport errors never escape this package; callers match on this
// sentinel and apply their own degradation policy.
var ErrStoreUnavailable = errors.New("store unavailable")

// Store is the typed key-value client shared by the rate limiter, the
// distributed lock and the gateway. All coordination state lives behind it,
// so the gateway itself carries no cross-request in-process state.
type Store interface {
	// Get retrieves a value. The second return is false when the key is
	// absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with an expiration time.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// FlushAll removes every key in the store.
	FlushAll(ctx context.Context) error

	// SetIfAbsent atomically creates the key with a TTL. It returns true
	// iff this call created the entry.
	SetIfAbsent(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)

	// Increment atomically increments a counter. When this call creates
	// the key, the TTL is attached in the same atomic step so the window
	// anchors to the first write.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// HealthCheck verifies store connectivity.
	HealthCheck(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
