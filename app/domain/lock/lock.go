package lock

import (
	"context"
	"time"

	"gramgate.io/profile-api-gateway/app/infrastructure/cache"
	"gramgate.io/profile-api-gateway/app/utils/logger"
)

// failOpenDelay is slept before reporting a lock acquired when the store is
// unreachable. The delay keeps an unlucky burst from turning into an
// immediate stampede while still letting every caller proceed.
const failOpenDelay = 100 * time.Millisecond

// Locker provides per-key mutual exclusion on top of the store's atomic
// set-if-absent. A lock auto-expires with its TTL, so a crashed holder
// self-heals without cleanup.
type Locker struct {
	store cache.Store
}

func NewLocker(store cache.Store) *Locker {
	return &Locker{store: store}
}

// Acquire attempts to take the lock for ttl. True means the caller owns the
// lock until it releases or the TTL elapses. When the store is unavailable
// it waits failOpenDelay and reports acquired: a window of duplicate
// upstream calls is accepted over deadlocking the system.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) bool {
	created, err := l.store.SetIfAbsent(ctx, key, "1", ttl)
	if err != nil {
		logger.GetLogger().Warnf("lock %s failing open: %v", key, err)
		select {
		case <-time.After(failOpenDelay):
		case <-ctx.Done():
		}
		return true
	}
	return created
}

// Release drops the lock unconditionally. The delete is not
// ownership-checked; callers must size the TTL well above the critical
// section so a slow holder cannot outlive it. A token compare-and-delete
// would close that gap if stricter semantics are ever needed.
func (l *Locker) Release(ctx context.Context, key string) {
	if err := l.store.Delete(ctx, key); err != nil {
		logger.GetLogger().Warnf("lock %s release failed: %v", key, err)
	}
}
