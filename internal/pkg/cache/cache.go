package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/pleromasprings/core-api/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// SetupCache initializes the Redis connection used for content-list caching
// and the public rate limiter. The API works without it; cache calls then
// return errors that callers treat as a miss.
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
		DB:   0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warnf("could not connect to cache: %v", err)
	}
}

// Available reports whether the cache answers pings. Callers that need a
// working Redis (the shared rate limiter store) check this and fall back to
// process-local behavior when it is down.
func Available() bool {
	_, err := GetClient().Ping(ctx).Result()
	return err == nil
}

// GetClient returns the Redis client instance.
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Set stores a value with the given expiration.
func Set(key string, value interface{}, expiration time.Duration) error {
	return GetClient().Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key.
func Get(key string) (string, error) {
	return GetClient().Get(ctx, key).Result()
}

// Delete removes keys matching the given pattern, used to invalidate list
// caches after admin writes.
func DeletePattern(pattern string) error {
	rdb := GetClient()
	keys, err := rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// Delete removes a value by key.
func Delete(key string) error {
	return GetClient().Del(ctx, key).Err()
}
