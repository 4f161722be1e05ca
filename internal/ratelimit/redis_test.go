package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisLimiter_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewRedisLimiter(nil, Config{Requests: 1, Window: time.Second}, nil)
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() { _ = client.Close() })
	_, err = NewRedisLimiter(client, Config{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRedisLimiter_Allow(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping redis rate limiter test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	limiter, err := NewRedisLimiter(client, Config{Requests: 2, Window: time.Minute}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = limiter.Close() })

	key := "test-" + uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), limiter.prefix+key) })

	d, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, err = limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, err = limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)
}
