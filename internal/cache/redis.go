package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avialab/aircatalog/config"
	"github.com/avialab/aircatalog/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores airline list snapshots as JSON. A miss is (nil, nil),
// the same convention the repositories use for absence.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

// NewRedisCacheWithClient is used by tests to point the cache at miniredis.
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetAirlines(ctx context.Context, activeOnly bool) ([]domain.Airline, error) {
	data, err := c.client.Get(ctx, airlinesKey(activeOnly)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airlines []domain.Airline
	if err := json.Unmarshal(data, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

func (c *RedisCache) SetAirlines(ctx context.Context, activeOnly bool, airlines []domain.Airline) error {
	payload, err := json.Marshal(airlines)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airlinesKey(activeOnly), payload, c.ttl).Err()
}

// Invalidate drops both list snapshots. Called after every successful write.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, airlinesKey(false), airlinesKey(true)).Err()
}

func airlinesKey(activeOnly bool) string {
	if activeOnly {
		return "cache:airlines:active"
	}
	return "cache:airlines:all"
}
