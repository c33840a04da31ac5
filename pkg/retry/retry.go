// Package retry provides adaptive rate limiting and retry with exponential
// backoff for REST clients. The limiter speeds up while requests succeed and
// backs off when the server signals overload.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces requests adaptively: the rate climbs on success and is
// halved on overload. Safe for concurrent use.
type Limiter struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	min       rate.Limit
	max       rate.Limit
	lastError time.Time
}

// NewLimiter creates a Limiter starting at initial requests per second,
// bounded by min and max.
func NewLimiter(initial, min, max rate.Limit) *Limiter {
	if initial < min {
		initial = min
	}
	return &Limiter{
		limiter: rate.NewLimiter(initial, maxInt(1, int(initial))),
		min:     min,
		max:     max,
	}
}

// Wait blocks until a request may proceed or the context is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Success nudges the rate up after a request went through.
func (l *Limiter) Success() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if time.Since(l.lastError) > 10*time.Second {
		l.set(l.limiter.Limit() + 1)
	}
}

// BackOff halves the rate after a failure that looks like overload.
func (l *Limiter) BackOff() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastError = time.Now()
	l.set(l.limiter.Limit() / 2)
}

func (l *Limiter) set(limit rate.Limit) {
	if limit > l.max {
		limit = l.max
	}
	if limit < l.min {
		limit = l.min
	}
	if limit != l.limiter.Limit() {
		l.limiter.SetLimit(limit)
		l.limiter.SetBurst(maxInt(1, int(limit)))
	}
}

// StatusError carries an HTTP status code so Do can tell overload and server
// trouble apart from permanent failures.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// retryable reports whether the error is worth another attempt: transport
// errors, 429 and 5xx are; other statuses are permanent.
func retryable(err error) bool {
	se, ok := err.(*StatusError)
	if !ok {
		return true
	}
	return se.Code == http.StatusTooManyRequests || se.Code >= 500
}

// Config tunes Do.
type Config struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Jitter       bool
}

// DefaultConfig returns the settings used by Do.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2,
		Jitter:       true,
	}
}

// Do runs fn with the default config, pacing attempts through lim.
func Do(ctx context.Context, lim *Limiter, fn func() error) error {
	return DoWithConfig(ctx, lim, fn, DefaultConfig())
}

// DoWithConfig runs fn until it succeeds, returns a permanent error, the
// context ends, or cfg.MaxAttempts is exhausted. Retries wait with
// exponential backoff; overload errors additionally shrink the limiter.
func DoWithConfig(ctx context.Context, lim *Limiter, fn func() error, cfg Config) error {
	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			if lim != nil {
				lim.Success()
			}
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
		if lim != nil {
			lim.BackOff()
		}

		wait := delay
		if cfg.Jitter && delay > 0 {
			wait += time.Duration(rand.Int63n(int64(delay/4) + 1))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("max attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
