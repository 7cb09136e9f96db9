// Package cache holds the optional redis client used by the rate limiter.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

// NewClient connects to redis. An empty address returns nil, which disables
// every redis-backed feature; callers treat a nil client as "off".
func NewClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		logger.Info().Msg("Redis address not configured, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable at startup, continuing anyway")
	} else {
		logger.Info().Str("addr", addr).Msg("Connected to redis")
	}
	return client
}
