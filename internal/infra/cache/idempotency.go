package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collective-lifecycle/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// pendingMarker is stored while the guarded request is running. It can never be a result.
const pendingMarker = "\x00pending"

const defaultIdempotencyTTL = 24 * time.Hour

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// IdempotencyGuard implements shared.IdempotencyGuard on Redis.
type IdempotencyGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyGuard(client *redis.Client, ttl time.Duration) *IdempotencyGuard {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyGuard{client: client, ttl: ttl}
}

func (g *IdempotencyGuard) Reserve(ctx context.Context, scope, key string) (string, bool, error) {
	k := idempotencyKey(scope, key)

	// a completed key may expire between SETNX and GET, hence the second round
	for range 2 {
		ok, err := g.client.SetNX(ctx, k, pendingMarker, g.ttl).Result()
		if err != nil {
			return "", false, fmt.Errorf("redis setnx failed: %w", err)
		}
		if ok {
			return "", true, nil
		}

		stored, err := g.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("redis get failed: %w", err)
		}
		if stored == pendingMarker {
			return "", false, nil
		}
		return stored, false, nil
	}
	return "", false, nil
}

// Complete replaces the pending marker with result. A key that expired meanwhile is left absent.
func (g *IdempotencyGuard) Complete(ctx context.Context, scope, key, result string) error {
	if err := g.client.SetXX(ctx, idempotencyKey(scope, key), result, g.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (g *IdempotencyGuard) Release(ctx context.Context, scope, key string) error {
	if err := g.client.Del(ctx, idempotencyKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func idempotencyKey(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
