package ratelimit

import (
	"context"
	"time"

	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/utils/logger"
)

const (
	// DefaultLimit and DefaultWindow are the per-client quota applied to
	// cache-missing lookups.
	DefaultLimit  = int64(10)
	DefaultWindow = 60 * time.Second
)

// Limiter enforces a fixed-window quota per identifier on top of the
// store's atomic increment. The window anchors to the first request in it
// and resets after exactly the window duration, regardless of later
// traffic.
type Limiter struct {
	store cache.Store
}

func NewLimiter(store cache.Store) *Limiter {
	return &Limiter{store: store}
}

// Allow charges one request against the identifier's window and reports
// whether it fits the limit. When the store is unavailable the limiter
// fails open: quota correctness is secondary to availability, and an infra
// outage must never lock out legitimate users.
func (l *Limiter) Allow(ctx context.Context, identifier string, limit int64, window time.Duration) bool {
	count, err := l.store.Increment(ctx, cache.RateLimitKey(identifier), window)
	if err != nil {
		logger.GetLogger().Warnf("rate limiter failing open for %s: %v", identifier, err)
		return true
	}
	return count <= limit
}
