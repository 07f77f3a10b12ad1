// Package redis is a shared result cache for deployments that run more than
// one server.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gzhole/labelshield/internal/scoring"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "labelshield:result:"

// Cache implements service.ResultCache on Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to addr and checks the connection. A ttl of zero or less
// stores entries without expiry.
func New(ctx context.Context, addr string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		MaxRetries: 3,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func Key(key string) string {
	return KeyPrefix + key
}

func (c *Cache) Get(ctx context.Context, key string) (*scoring.Result, bool, error) {
	data, err := c.client.Get(ctx, Key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	var result scoring.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}
	return &result, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, result *scoring.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, Key(key), data, ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
