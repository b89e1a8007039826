package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/demobistro/ordering/internal/config"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/redis/go-redis/v9"
)

const categoriesKey = "menu:categories"

type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(cfg config.RedisConfig) (interfaces.MenuCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &MenuCache{client: client, ttl: cfg.TTL()}, nil
}

// GetCategories returns the cached payload, or (nil, nil) on a miss.
func (c *MenuCache) GetCategories(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, categoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *MenuCache) SetCategories(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, categoriesKey, payload, c.ttl).Err()
}
