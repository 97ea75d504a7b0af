//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestGuard(t *testing.T) (*IdempotencyGuard, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewIdempotencyGuard(client, time.Hour), mr
}

func TestReserve_FirstCallReserves(t *testing.T) {
	guard, mr := setupTestGuard(t)

	result, reserved, err := guard.Reserve(context.Background(), "book-stock:u1", "k1")

	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Empty(t, result)
	assert.True(t, mr.Exists(idempotencyKey("book-stock:u1", "k1")))
	assert.Equal(t, time.Hour, mr.TTL(idempotencyKey("book-stock:u1", "k1")))
}

func TestReserve_InFlightKeyIsNotReserved(t *testing.T) {
	guard, _ := setupTestGuard(t)
	ctx := context.Background()

	_, _, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)

	result, reserved, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Empty(t, result)
}

func TestReserve_CompletedKeyReplaysResult(t *testing.T) {
	guard, _ := setupTestGuard(t)
	ctx := context.Background()

	_, _, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)
	require.NoError(t, guard.Complete(ctx, "s", "k1", "booking-42"))

	result, reserved, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, "booking-42", result)
}

func TestReserve_ScopesAreIndependent(t *testing.T) {
	guard, _ := setupTestGuard(t)
	ctx := context.Background()

	_, first, err := guard.Reserve(ctx, "book-stock:a", "same")
	require.NoError(t, err)
	_, second, err := guard.Reserve(ctx, "book-stock:b", "same")
	require.NoError(t, err)

	assert.True(t, first)
	assert.True(t, second)
}

func TestRelease_AllowsRetry(t *testing.T) {
	guard, _ := setupTestGuard(t)
	ctx := context.Background()

	_, _, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)
	require.NoError(t, guard.Release(ctx, "s", "k1"))

	_, reserved, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestComplete_ExpiredKeyStaysAbsent(t *testing.T) {
	guard, mr := setupTestGuard(t)
	ctx := context.Background()

	_, _, err := guard.Reserve(ctx, "s", "k1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)

	require.NoError(t, guard.Complete(ctx, "s", "k1", "booking-42"))
	assert.False(t, mr.Exists(idempotencyKey("s", "k1")))
}

func TestReserve_RedisDown(t *testing.T) {
	guard, mr := setupTestGuard(t)
	mr.Close()

	_, reserved, err := guard.Reserve(context.Background(), "s", "k1")

	assert.Error(t, err)
	assert.False(t, reserved)
}
