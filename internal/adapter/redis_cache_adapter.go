package adapter

import (
	"context"
	"errors"
	"time"

	"quizgen/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCacheAdapter implements domain.CacheService using a Redis client.
type RedisCacheAdapter struct {
	client redis.Cmdable
}

// NewRedisCacheAdapter creates a new RedisCacheAdapter.
func NewRedisCacheAdapter(client redis.Cmdable) domain.CacheService {
	return &RedisCacheAdapter{client: client}
}

// Get retrieves a value, mapping an absent key to domain.ErrCacheMiss.
func (a *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := a.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// Set stores a value with the given TTL.
func (a *RedisCacheAdapter) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return a.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key. Deleting an absent key is not an error.
func (a *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

var _ domain.CacheService = (*RedisCacheAdapter)(nil)
