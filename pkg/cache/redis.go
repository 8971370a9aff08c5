package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/shopping-advisor/pkg/logger"
)

// Config holds Redis connection settings
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedisClient connects to Redis and verifies the connection.
// The client is returned even when the ping fails so callers can decide
// whether to run without a cache.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return client, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	logger.Logger.Info().
		Str("redis_addr", cfg.Addr).
		Msg("Connected to Redis")
	return client, nil
}
