// Package retry provides retry logic with exponential backoff for operations.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrInvalidAttempts is returned when Config.MaxAttempts is not positive.
var ErrInvalidAttempts = errors.New("MaxAttempts must be greater than 0")

// NotifyFunc is called before waiting for the next attempt.
type NotifyFunc func(attempt int, err error, delay time.Duration)

// Config holds retry strategy configuration.
type Config struct {
	// MaxAttempts is the maximum number of attempts, the first one included.
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration
	// Multiplier is the exponential backoff multiplier.
	Multiplier float64
	// RetryableErrors lists substrings of retryable error messages.
	// If empty, every error is retryable.
	RetryableErrors []string
	// Notify, if set, observes every failed attempt that will be retried.
	Notify NotifyFunc
}

// DefaultConfig returns default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     5,
		InitialDelay:    time.Second,
		MaxDelay:        30 * time.Second,
		Multiplier:      2.0,
		RetryableErrors: []string{},
	}
}

// PostgresConfig returns retry configuration tuned for PostgreSQL connection setup.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryableErrors = PostgresRetryableErrors()
	return cfg
}

// PostgresRetryableErrors returns error fragments that signal a transient PostgreSQL outage.
func PostgresRetryableErrors() []string {
	return []string{
		"connection refused",
		"connection reset",
		"connection timed out",
		"i/o timeout",
		"server closed the connection",
		"too many connections",
		"the database system is starting up",
		"no connection could be made",
		"network is unreachable",
		"dial tcp",
	}
}

// Do executes fn until it succeeds, fails with a non-retryable error or attempts run out.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is Do for functions that produce a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T

	if cfg.MaxAttempts <= 0 {
		return zero, ErrInvalidAttempts
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryable(err, cfg) || attempt == cfg.MaxAttempts-1 {
			break
		}

		delay := withJitter(backoff(attempt, cfg))
		if cfg.Notify != nil {
			cfg.Notify(attempt+1, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether err matches the retryable patterns of cfg.
func IsRetryable(err error, cfg Config) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryableErrors) == 0 {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range cfg.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// backoff returns InitialDelay * Multiplier^attempt capped at MaxDelay.
func backoff(attempt int, cfg Config) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}

// withJitter spreads delay by ±10%.
func withJitter(delay time.Duration) time.Duration {
	//nolint:gosec // jitter has no security requirement
	jitter := float64(delay) * 0.1 * (rand.Float64()*2 - 1)
	return delay + time.Duration(jitter)
}
