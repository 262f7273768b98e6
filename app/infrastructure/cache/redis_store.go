package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gramgate.io/profile-api-gateway/app/utils/logger"
	"gramgate.io/profile-api-gateway/config/environment_variables"
)

// opTimeout bounds every store round-trip. No operation may block a request
// longer than this.
const opTimeout = 2 * time.Second

// incrementScript bundles INCR with a first-write PEXPIRE so the counter
// window anchors atomically to the request that created it.
var incrementScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisStore implements Store on a Redis connection.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store from the environment.
func NewRedisStore() *RedisStore {
	redisURL := environment_variables.EnvironmentVariables.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.GetLogger().Errorf("failed to parse Redis URL: %v", err)
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if environment_variables.EnvironmentVariables.REDIS_PASSWORD != "" {
		opts.Password = environment_variables.EnvironmentVariables.REDIS_PASSWORD
	}
	if environment_variables.EnvironmentVariables.REDIS_DB != "" {
		if db, err := strconv.Atoi(environment_variables.EnvironmentVariables.REDIS_DB); err == nil {
			opts.DB = db
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().Errorf("failed to connect to Redis: %v", err)
	} else {
		logger.GetLogger().Info("Successfully connected to Redis")
	}

	return &RedisStore{
		client: client,
	}
}

func (r *RedisStore) unavailable(op string, err error) error {
	logger.GetLogger().Errorf("redis %s failed: %v", op, err)
	return ErrStoreUnavailable
}

// Get retrieves a value from Redis.
func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, r.unavailable("get", err)
	}
	return val, true, nil
}

// Set stores a value in Redis with an expiration time.
func (r *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return r.unavailable("set", err)
	}
	return nil
}

// Delete removes a key from Redis.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return r.unavailable("delete", err)
	}
	return nil
}

// FlushAll removes every key from the current database.
func (r *RedisStore) FlushAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.FlushDB(ctx).Err(); err != nil {
		return r.unavailable("flushall", err)
	}
	return nil
}

// SetIfAbsent issues SET NX with a TTL.
func (r *RedisStore) SetIfAbsent(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	created, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, r.unavailable("setnx", err)
	}
	return created, nil
}

// Increment runs the INCR+PEXPIRE script.
func (r *RedisStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := incrementScript.Run(ctx, r.client, []string{key}, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, r.unavailable("increment", err)
	}
	return count, nil
}

// HealthCheck verifies Redis connectivity.
func (r *RedisStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return r.unavailable("ping", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
