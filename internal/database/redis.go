package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"meeting-service/internal/config"
)

// NewRedis connects to Redis from the configured URL. Redis backs only the
// best-effort preview cache, so a missing URL or failed connection returns
// nil instead of an error and the service runs without caching.
func NewRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
