package cache

import "time"

const (
	ProfileKeyPrefix   = "profile:"
	LockKeyPrefix      = "lock:"
	RateLimitKeyPrefix = "ratelimit:"

	// ProfileTTL is how long a resolved profile stays cached.
	ProfileTTL = 24 * time.Hour
)

// ProfileKey addresses the cached profile for a normalized username.
func ProfileKey(username string) string {
	return ProfileKeyPrefix + username
}

// ProfileLockKey addresses the refill lock for a cached profile.
func ProfileLockKey(username string) string {
	return LockKeyPrefix + ProfileKey(username)
}

// RateLimitKey addresses the fixed-window counter for a client identifier.
func RateLimitKey(identifier string) string {
	return RateLimitKeyPrefix + identifier
}
