package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreconfig "github.com/m3rciful/cardsbot/core/config"
)

type redisStorage struct {
	client *redis.Client
	prefix string
}

// ConnectRedis creates a Redis client from config and verifies connectivity.
func ConnectRedis(cfg coreconfig.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewRedisStorage wraps a Redis client as a conversation state Storage.
// Keys are namespaced with the given prefix.
func NewRedisStorage(client *redis.Client, prefix string) Storage {
	if prefix == "" {
		prefix = "cardsbot:state:"
	}
	return &redisStorage{client: client, prefix: prefix}
}

func (r *redisStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis read %q: %w", key, err)
	}
	return data, nil
}

func (r *redisStorage) Write(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis write %q: %w", key, err)
	}
	return nil
}

func (r *redisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}
