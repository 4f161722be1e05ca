package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter for the current window and
// reports the count together with the milliseconds left in the window.
var fixedWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

// RedisLimiter counts requests per key in fixed windows stored in Redis, so
// the limit holds across every server instance.
type RedisLimiter struct {
	client redis.UniversalClient
	cfg    Config
	prefix string
	logger *slog.Logger
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter builds a RedisLimiter over client. Keys are stored under
// "apiary:ratelimit:".
func NewRedisLimiter(client redis.UniversalClient, cfg Config, logger *slog.Logger) (*RedisLimiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("ratelimit: redis client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLimiter{
		client: client,
		cfg:    cfg,
		prefix: "apiary:ratelimit:",
		logger: logger.With(slog.String("component", "rate_limiter"), slog.String("backend", "redis")),
	}, nil
}

// Allow counts one request for key in the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, l.cfg.Window.Milliseconds()).Result()
	if err != nil {
		l.logger.WarnContext(ctx, "rate limit script failed", slog.String("error", err.Error()))
		return Decision{}, fmt.Errorf("ratelimit: redis script: %w", err)
	}
	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return Decision{}, fmt.Errorf("ratelimit: unexpected redis script result: %v", res)
	}
	count, _ := vals[0].(int64)
	ttl, _ := vals[1].(int64)
	if ttl < 0 {
		ttl = l.cfg.Window.Milliseconds()
	}

	if count > int64(l.cfg.Requests) {
		return Decision{Allowed: false, RetryAfter: time.Duration(ttl) * time.Millisecond}, nil
	}
	return Decision{Allowed: true, Remaining: l.cfg.Requests - int(count)}, nil
}

// Close releases the Redis connection pool.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
