package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kidsclub_backend/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// RedisYearStatusCache shares fiscal year statuses between instances.
// Redis failures are logged and reported as misses so callers fall back to the database.
type RedisYearStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisYearStatusCache wraps an existing client.
func NewRedisYearStatusCache(client *redis.Client, ttl time.Duration) *RedisYearStatusCache {
	return &RedisYearStatusCache{client: client, ttl: ttl}
}

var _ portsrepo.YearStatusCache = (*RedisYearStatusCache)(nil)

// ConnectRedis opens a client and verifies it with a PING.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// YearStatusKey is the redis key holding the status of year.
func YearStatusKey(year int) string {
	return fmt.Sprintf("fiscal_year:%d:status", year)
}

func (c *RedisYearStatusCache) Get(ctx context.Context, year int) (domain.FiscalYearStatus, bool) {
	val, err := c.client.Get(ctx, YearStatusKey(year)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			middleware.GetLoggerFromCtx(ctx).Warn("Redis GET failed, reading fiscal year from database",
				slog.Int("year", year), slog.String("error", err.Error()))
		}
		return "", false
	}
	status := domain.FiscalYearStatus(val)
	if status != domain.FiscalYearOpen && status != domain.FiscalYearClosed {
		return "", false
	}
	return status, true
}

func (c *RedisYearStatusCache) Set(ctx context.Context, year int, status domain.FiscalYearStatus) {
	if err := c.client.Set(ctx, YearStatusKey(year), string(status), c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Redis SET failed", slog.Int("year", year), slog.String("error", err.Error()))
	}
}

func (c *RedisYearStatusCache) Invalidate(ctx context.Context, year int) {
	if err := c.client.Del(ctx, YearStatusKey(year)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Redis DEL failed, fiscal year status may be stale until TTL",
			slog.Int("year", year), slog.String("error", err.Error()))
	}
}
