package cache

import (
	"context"
	"time"
)

// NoopStore stands in when no store is configured. Every operation reports
// ErrStoreUnavailable so each caller falls back to its fail-open policy:
// the limiter allows, the lock acquires after a fixed delay, cache reads
// behave as misses.
type NoopStore struct{}

// NewNoopStore creates the unconfigured-store fallback.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (n *NoopStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, ErrStoreUnavailable
}

func (n *NoopStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return ErrStoreUnavailable
}

func (n *NoopStore) Delete(ctx context.Context, key string) error {
	return ErrStoreUnavailable
}

func (n *NoopStore) FlushAll(ctx context.Context) error {
	return ErrStoreUnavailable
}

func (n *NoopStore) SetIfAbsent(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	return false, ErrStoreUnavailable
}

func (n *NoopStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return 0, ErrStoreUnavailable
}

func (n *NoopStore) HealthCheck(ctx context.Context) error {
	return ErrStoreUnavailable
}

func (n *NoopStore) Close() error {
	return nil
}
