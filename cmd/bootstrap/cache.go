package bootstrap

import (
	"context"
	"log/slog"

	"collective-lifecycle/internal/infra/cache"
	"collective-lifecycle/internal/pkg/config"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			func(client *redis.Client, cfg config.Config) *cache.IdempotencyGuard {
				return cache.NewIdempotencyGuard(client, cfg.Redis.IdempotencyTTL)
			},
			fx.As(new(shared.IdempotencyGuard)),
		),
	),
)

// NewRedis does not fail the boot when Redis is down; bookings then run unguarded.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, idempotency guard degraded", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
