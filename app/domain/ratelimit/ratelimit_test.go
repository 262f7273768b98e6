package ratelimit

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

func TestAllowFixedWindow(t *testing.T) {
	clock := newFakeClock()
	store := cache.NewMemoryStore()
	store.SetNowFunc(clock.Now)
	limiter := NewLimiter(store)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.Allow(ctx, "1.2.3.4", 10, 60*time.Second), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow(ctx, "1.2.3.4", 10, 60*time.Second), "11th request must be denied")

	// window anchors to the first request, not the last
	clock.Advance(61 * time.Second)
	assert.True(t, limiter.Allow(ctx, "1.2.3.4", 10, 60*time.Second), "new window must allow again")
}

func TestAllowPerIdentifier(t *testing.T) {
	store := cache.NewMemoryStore()
	limiter := NewLimiter(store)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "1.2.3.4", 1, 60*time.Second))
	assert.False(t, limiter.Allow(ctx, "1.2.3.4", 1, 60*time.Second))
	assert.True(t, limiter.Allow(ctx, "5.6.7.8", 1, 60*time.Second))
}

func TestAllowFailsOpenWhenStoreUnavailable(t *testing.T) {
	limiter := NewLimiter(cache.NewNoopStore())
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		assert.True(t, limiter.Allow(ctx, "1.2.3.4", 10, 60*time.Second))
	}
}
