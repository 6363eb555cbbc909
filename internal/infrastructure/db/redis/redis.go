// Package redis provides the Redis client backing the ingestion task store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the task-state Redis instance.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the startup ping and every command round trip.
	// Zero or negative falls back to defaultTimeout.
	Timeout time.Duration
}

// Connect dials Redis and verifies the instance is reachable, so a
// misconfigured address fails at startup rather than on the first
// ingestion trigger.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
