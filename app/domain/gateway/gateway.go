package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gramgate.io/profile-api-gateway/app/domain/lock"
	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/app/domain/ratelimit"
	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/utils/logger"
)

var (
	// ErrInvalidIdentifier means the identifier was empty after
	// normalization.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrBusy means lock acquisition was exhausted. The request is
	// rejected instead of queued so worst-case latency stays bounded.
	ErrBusy = errors.New("busy refreshing profile, retry shortly")

	// ErrRateLimited means the client spent its quota for the window.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Config carries the gateway's timing and quota knobs.
type Config struct {
	LockTTL        time.Duration
	LockRetryDelay time.Duration
	LockRetries    int
	RateLimit      int64
	RateWindow     time.Duration
	CacheTTL       time.Duration
}

// DefaultConfig sizes the lock TTL (10s) well above the upstream budget
// (5s), bounds lock polling to ~2s and caches profiles for a day.
func DefaultConfig() Config {
	return Config{
		LockTTL:        10 * time.Second,
		LockRetryDelay: 200 * time.Millisecond,
		LockRetries:    10,
		RateLimit:      ratelimit.DefaultLimit,
		RateWindow:     ratelimit.DefaultWindow,
		CacheTTL:       cache.ProfileTTL,
	}
}

// Gateway is the cache-aside front for the profile resolver. All
// coordination state (cache, lock, counters) lives in the shared store, so
// any number of gateway processes can run side by side.
type Gateway struct {
	store    cache.Store
	locker   *lock.Locker
	limiter  *ratelimit.Limiter
	resolver profile.Resolver
	cfg      Config
}

func NewGateway(store cache.Store, locker *lock.Locker, limiter *ratelimit.Limiter, resolver profile.Resolver) *Gateway {
	return NewGatewayWithConfig(store, locker, limiter, resolver, DefaultConfig())
}

func NewGatewayWithConfig(store cache.Store, locker *lock.Locker, limiter *ratelimit.Limiter, resolver profile.Resolver, cfg Config) *Gateway {
	return &Gateway{
		store:    store,
		locker:   locker,
		limiter:  limiter,
		resolver: resolver,
		cfg:      cfg,
	}
}

// Lookup serves a profile for a free-form identifier. Cache hits return
// immediately and are never rate limited; on a miss at most one caller per
// lock epoch reaches the resolver, the rest coalesce onto the populated
// entry or are rejected with ErrBusy once polling is exhausted.
func (g *Gateway) Lookup(ctx context.Context, rawIdentifier string, clientID string) (*profile.Profile, error) {
	username := profile.NormalizeIdentifier(rawIdentifier)
	if username == "" {
		return nil, ErrInvalidIdentifier
	}

	cacheKey := cache.ProfileKey(username)
	if cached, ok := g.cachedProfile(ctx, cacheKey); ok {
		return cached, nil
	}

	lockKey := cache.ProfileLockKey(username)
	acquired := g.locker.Acquire(ctx, lockKey, g.cfg.LockTTL)
	for attempt := 0; !acquired && attempt < g.cfg.LockRetries; attempt++ {
		// the holder may have populated the cache while we waited
		if cached, ok := g.cachedProfile(ctx, cacheKey); ok {
			return cached, nil
		}
		select {
		case <-time.After(g.cfg.LockRetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		acquired = g.locker.Acquire(ctx, lockKey, g.cfg.LockTTL)
	}
	if !acquired {
		return nil, ErrBusy
	}
	// release must survive request cancellation, and it covers every exit
	// below: cached hit, quota denial, resolver failure, success
	defer g.locker.Release(context.WithoutCancel(ctx), lockKey)

	if cached, ok := g.cachedProfile(ctx, cacheKey); ok {
		return cached, nil
	}

	// only true misses spend quota; hits above were free
	if !g.limiter.Allow(ctx, clientID, g.cfg.RateLimit, g.cfg.RateWindow) {
		return nil, ErrRateLimited
	}

	resolved, err := g.resolver.Resolve(ctx, username)
	if err != nil {
		// a failed lookup is never cached; the next caller retries fully
		return nil, err
	}

	g.writeCache(ctx, cacheKey, resolved)
	return resolved, nil
}

// Invalidate drops one cached profile.
func (g *Gateway) Invalidate(ctx context.Context, rawIdentifier string) error {
	username := profile.NormalizeIdentifier(rawIdentifier)
	if username == "" {
		return ErrInvalidIdentifier
	}
	return g.store.Delete(ctx, cache.ProfileKey(username))
}

// InvalidateAll flushes the whole store. Rate-limit counters go with it;
// acceptable for a trusted, low-volume operational control.
func (g *Gateway) InvalidateAll(ctx context.Context) error {
	return g.store.FlushAll(ctx)
}

// ForceRefresh resolves upstream directly, bypassing the lock and the
// quota, and overwrites the cache entry with a fresh TTL. Privileged
// callers only.
func (g *Gateway) ForceRefresh(ctx context.Context, rawIdentifier string) (*profile.Profile, error) {
	username := profile.NormalizeIdentifier(rawIdentifier)
	if username == "" {
		return nil, ErrInvalidIdentifier
	}

	resolved, err := g.resolver.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}

	g.writeCache(ctx, cache.ProfileKey(username), resolved)
	return resolved, nil
}

func (g *Gateway) cachedProfile(ctx context.Context, cacheKey string) (*profile.Profile, bool) {
	raw, found, err := g.store.Get(ctx, cacheKey)
	if err != nil {
		// unavailable store degrades to a miss
		return nil, false
	}
	if !found {
		return nil, false
	}

	var cached profile.Profile
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		logger.GetLogger().Errorf("corrupt cache entry at %s: %v", cacheKey, err)
		return nil, false
	}
	return &cached, true
}

func (g *Gateway) writeCache(ctx context.Context, cacheKey string, resolved *profile.Profile) {
	raw, err := json.Marshal(resolved)
	if err != nil {
		logger.GetLogger().Errorf("failed to marshal profile for %s: %v", cacheKey, err)
		return
	}
	if err := g.store.Set(ctx, cacheKey, string(raw), g.cfg.CacheTTL); err != nil {
		// serving the resolved value matters more than caching it
		logger.GetLogger().Warnf("failed to cache profile at %s: %v", cacheKey, err)
	}
}
