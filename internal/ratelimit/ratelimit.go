package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidConfig is returned when a limiter is built with a non-positive
// request count or window.
var ErrInvalidConfig = errors.New("ratelimit: requests and window must be positive")

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed bool
	// Remaining is how many further requests the key may make now.
	Remaining int
	// RetryAfter is how long a rejected key must wait. Zero when allowed.
	RetryAfter time.Duration
}

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Config holds the limits shared by both backends.
type Config struct {
	Requests int
	Window   time.Duration
}

func (c Config) validate() error {
	if c.Requests <= 0 || c.Window <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
