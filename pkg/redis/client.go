// Package redis owns the process-wide Redis client used by the rate limiter.
// Redis is optional: when it is not configured or not reachable, Client
// returns nil and callers fall back to in-memory state.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotConfigured = errors.New("redis: REDIS_URL not configured")

var (
	mu     sync.RWMutex
	client *redis.Client
)

// Config holds Redis connection configuration
type Config struct {
	URL      string // redis://host:port/db, or rediss:// for TLS
	Password string // overrides the password embedded in URL
}

func (c Config) options() (*redis.Options, error) {
	if c.URL == "" {
		return nil, ErrNotConfigured
	}
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	if c.Password != "" {
		opts.Password = c.Password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	return opts, nil
}

// Initialize connects and pings. On failure the package keeps no client.
func Initialize(ctx context.Context, cfg Config) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	c := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("redis: connection failed: %w", err)
	}

	mu.Lock()
	client = c
	mu.Unlock()
	return nil
}

// Use installs an existing client, for tests and alternative wiring.
func Use(c *redis.Client) {
	mu.Lock()
	client = c
	mu.Unlock()
}

// Client returns the shared client, or nil when Redis is unavailable.
func Client() *redis.Client {
	mu.RLock()
	defer mu.RUnlock()
	return client
}

// Close closes the Redis connection gracefully.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

// HealthCheck pings the shared client.
func HealthCheck(ctx context.Context) error {
	c := Client()
	if c == nil {
		return errors.New("redis: client not initialized")
	}
	return c.Ping(ctx).Err()
}
