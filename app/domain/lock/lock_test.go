package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestAcquireIsExclusiveUntilTTL(t *testing.T) {
	clock := newFakeClock()
	store := cache.NewMemoryStore()
	store.SetNowFunc(clock.Now)
	locker := NewLocker(store)
	ctx := context.Background()

	assert.True(t, locker.Acquire(ctx, "lock:profile:foo", 10*time.Second))
	assert.False(t, locker.Acquire(ctx, "lock:profile:foo", 10*time.Second), "held lock must not be re-acquired")

	clock.Advance(11 * time.Second)
	assert.True(t, locker.Acquire(ctx, "lock:profile:foo", 10*time.Second), "expired lock must be acquirable")
}

func TestReleaseFreesTheLock(t *testing.T) {
	store := cache.NewMemoryStore()
	locker := NewLocker(store)
	ctx := context.Background()

	assert.True(t, locker.Acquire(ctx, "lock:profile:foo", 10*time.Second))
	locker.Release(ctx, "lock:profile:foo")
	assert.True(t, locker.Acquire(ctx, "lock:profile:foo", 10*time.Second))
}

func TestLocksAreIndependentPerKey(t *testing.T) {
	store := cache.NewMemoryStore()
	locker := NewLocker(store)
	ctx := context.Background()

	assert.True(t, locker.Acquire(ctx, "lock:profile:foo", 10*time.Second))
	assert.True(t, locker.Acquire(ctx, "lock:profile:bar", 10*time.Second))
}

func TestAcquireFailsOpenWithDelayWhenStoreUnavailable(t *testing.T) {
	locker := NewLocker(cache.NewNoopStore())
	ctx := context.Background()

	start := time.Now()
	acquired := locker.Acquire(ctx, "lock:profile:foo", 10*time.Second)
	elapsed := time.Since(start)

	assert.True(t, acquired, "unavailable store must not deadlock callers")
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
}
