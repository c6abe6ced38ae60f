// Package bootstrap builds the service graph shared by the HTTP server and the admin CLI.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/cache"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/core/services"
	"github.com/SscSPs/kidsclub_backend/internal/platform/config"
	"github.com/SscSPs/kidsclub_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/kidsclub_backend/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App owns the long-lived resources of a process.
type App struct {
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Services *portssvc.ServiceContainer
}

// New connects to the database, picks the fiscal status cache and wires every service.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	app := &App{Pool: pool}
	statusCache := app.yearStatusCache(ctx, cfg, logger)

	repos := pgsql.NewRepositoryProvider(pool)
	app.Services = services.NewServiceContainer(cfg, repos, statusCache)
	return app, nil
}

// yearStatusCache uses Redis when configured and reachable, the in-process cache otherwise.
func (a *App) yearStatusCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) portsrepo.YearStatusCache {
	if cfg.RedisAddr == "" {
		logger.Info("Using in-memory fiscal year cache", slog.Duration("ttl", cfg.FiscalCacheTTL))
		return cache.NewMemoryYearStatusCache(cfg.FiscalCacheTTL)
	}
	client, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory fiscal year cache", slog.String("error", err.Error()))
		return cache.NewMemoryYearStatusCache(cfg.FiscalCacheTTL)
	}
	a.Redis = client
	logger.Info("Using Redis fiscal year cache", slog.String("addr", cfg.RedisAddr))
	return cache.NewRedisYearStatusCache(client, cfg.FiscalCacheTTL)
}

// Close releases the pool and the Redis client.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Error closing Redis client", slog.String("error", err.Error()))
		}
	}
	database.ClosePgxPool(a.Pool)
}
