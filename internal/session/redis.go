package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// RedisStore keeps the cart id under a single key with no TTL; the slot
// lives until an order is confirmed or the backend rejects the cart.
type RedisStore struct {
	client *redis.Client
}

func (r *RedisStore) Get(ctx context.Context) (string, error) {
	id, err := r.client.Get(ctx, redisKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoCartID
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	if id == "" {
		return "", ErrNoCartID
	}
	return id, nil
}

func (r *RedisStore) Set(ctx context.Context, id string) error {
	if err := r.client.Set(ctx, redisKey(), id, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, redisKey()).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func redisKey() string {
	return fmt.Sprintf("storefront:%s", storageKey)
}
