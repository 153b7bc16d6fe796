package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists session state in Redis. Values are stored without a
// TTL, the session owns their lifecycle.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func redisKey(key string) string {
	return fmt.Sprintf("techstore:%s", key)
}
