package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Patoch87/DunsHierarchyV2/pkg/config"
)

// NewRedisClient creates a Redis client for the company lookup cache.
// Returns nil if Redis is not configured (host is empty); the cache
// gateway treats a nil client as an always-empty store.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
