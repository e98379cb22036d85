// Package redis builds go-redis clients from configuration.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration.
type Config struct {
	Address  string
	Password string
	DB       int
}

// ErrEmptyAddress is returned when the Redis address is not configured.
var ErrEmptyAddress = errors.New("redis address is required")

// ConnectionTimeout bounds the connection check performed by NewClient.
const ConnectionTimeout = 5 * time.Second

// NewClient creates a Redis client and pings it once.
//
// Unlike a strict constructor, a failed ping still returns the client
// together with the error: go-redis dials lazily, so callers that can run
// without the cache keep the client and let later commands reconnect.
func NewClient(cfg Config) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, ErrEmptyAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return client, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
