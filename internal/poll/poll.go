// Package poll implements adaptive polling with backoff and jitter.
package poll

import (
	"context"
	"math/rand"
	"time"
)

const (
	DefaultInterval    = 2 * time.Second
	DefaultMaxInterval = 30 * time.Second
	DefaultMultiplier  = 1.5
	DefaultJitter      = 0.3
)

// Config shapes one polling loop.
type Config struct {
	// Interval is the delay before the first re-check.
	Interval time.Duration
	// MaxInterval caps the backoff growth.
	MaxInterval time.Duration
	// Multiplier grows the interval after every poll.
	Multiplier float64
	// Jitter adds up to this fraction of random extra delay to each
	// wait, preventing synchronized polling across clients.
	Jitter float64
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = DefaultMaxInterval
	}
	if c.Multiplier <= 1 {
		c.Multiplier = DefaultMultiplier
	}
	if c.Jitter < 0 {
		c.Jitter = DefaultJitter
	}
	return c
}

// Run calls fn immediately and then on a growing interval until fn
// reports done or fails, or the context ends. It returns nil once done,
// the context error on cancellation, and fn's error otherwise.
func Run(ctx context.Context, cfg Config, fn func(context.Context) (bool, error)) error {
	cfg = cfg.withDefaults()
	interval := cfg.Interval

	for {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(jittered(interval, cfg.Jitter)):
		}

		interval = nextInterval(interval, cfg)
	}
}

// nextInterval grows the interval by the configured multiplier, capped
// at MaxInterval.
func nextInterval(current time.Duration, cfg Config) time.Duration {
	next := time.Duration(float64(current) * cfg.Multiplier)
	if next > cfg.MaxInterval {
		next = cfg.MaxInterval
	}
	return next
}

// jittered adds random jitter to prevent thundering herd.
func jittered(d time.Duration, factor float64) time.Duration {
	if factor <= 0 {
		return d
	}
	return d + time.Duration(rand.Float64()*factor*float64(d))
}
