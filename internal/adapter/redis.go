package adapter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache defines the interface for cache operations to enable mocking.
// A miss returns ErrCacheMiss; callers fall through to the origin.
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Get returns the cached value for key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes keys from the cache
	Delete(ctx context.Context, keys ...string) error

	// Ping checks if the cache is reachable
	Ping(ctx context.Context) error

	// Close closes the connection
	Close() error
}

// ErrCacheMiss is returned by Get when the key is absent
var ErrCacheMiss = redis.Nil

// RealRedisCache wraps the actual redis client
type RealRedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new redis-backed cache
func NewRedisCache(addr, password string, db int) Cache {
	return &RealRedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RealRedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return r.client.Get(ctx, key).Bytes()
}

func (r *RealRedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RealRedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RealRedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RealRedisCache) Close() error {
	return r.client.Close()
}
