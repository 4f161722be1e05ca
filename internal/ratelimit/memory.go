package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// MemoryLimiter keeps a token bucket per key. Each bucket holds Requests
// tokens and refills evenly over Window. Buckets idle for longer than the
// idle TTL are evicted by a background loop until Stop is called.
type MemoryLimiter struct {
	cfg     Config
	idleTTL time.Duration
	now     func() time.Time
	logger  *slog.Logger

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stop     chan struct{}
	stopOnce sync.Once
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter builds a MemoryLimiter and starts its cleanup loop.
// A non-positive cleanupInterval disables the loop.
func NewMemoryLimiter(cfg Config, cleanupInterval, idleTTL time.Duration, logger *slog.Logger) (*MemoryLimiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	m := &MemoryLimiter{
		cfg:     cfg,
		idleTTL: idleTTL,
		now:     time.Now,
		logger:  logger.With(slog.String("component", "rate_limiter"), slog.String("backend", "memory")),
		clients: make(map[string]*clientLimiter),
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go m.cleanupLoop(cleanupInterval)
	}
	return m, nil
}

// Allow takes one token from the bucket for key.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[key]
	if !ok {
		every := m.cfg.Window / time.Duration(m.cfg.Requests)
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Every(every), m.cfg.Requests)}
		m.clients[key] = c
	}
	c.lastAccess = now

	res := c.limiter.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}
	return Decision{Allowed: true, Remaining: int(c.limiter.TokensAt(now))}, nil
}

// Len reports how many keys currently hold a bucket.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (m *MemoryLimiter) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *MemoryLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := m.evictIdle(); n > 0 {
				m.logger.Debug("evicted idle rate limiters", slog.Int("count", n))
			}
		case <-m.stop:
			return
		}
	}
}

// evictIdle drops buckets not used within the idle TTL and returns how many
// were removed.
func (m *MemoryLimiter) evictIdle() int {
	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, c := range m.clients {
		if c.lastAccess.Before(cutoff) {
			delete(m.clients, key)
			removed++
		}
	}
	return removed
}
