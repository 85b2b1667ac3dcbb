package llmclient

import (
	"context"
	"math"
	"time"
)

// RetryConfig controls exponential backoff for retryable request failures.
type RetryConfig struct {
	MaxRetries      int           // retry attempts after the initial call
	InitialInterval time.Duration // first backoff delay
	MaxInterval     time.Duration // ceiling for any single delay
	Multiplier      float64       // growth factor between delays
	MaxElapsedTime  time.Duration // total budget including sleeps
	OnRetry         func(err error, attempt int, delay time.Duration)
}

// DefaultRetryConfig returns the stock policy: five retries starting at one
// second, doubling up to a minute, within a five minute budget.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      5,
		InitialInterval: time.Second,
		MaxInterval:     60 * time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  5 * time.Minute,
	}
}

// Delay computes the backoff delay for attempt n (0-indexed).
func (c RetryConfig) Delay(attempt int) time.Duration {
	d := float64(c.InitialInterval) * math.Pow(c.Multiplier, float64(attempt))
	if max := float64(c.MaxInterval); d > max {
		d = max
	}
	return time.Duration(d)
}

// Retry runs fn until it succeeds, the error is not retryable, the retry
// count is exhausted, or the elapsed-time budget would be exceeded by the
// next sleep. Context cancellation is honored while waiting.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	result, err := fn(ctx)
	if err == nil {
		return result, nil
	}

	for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
		if !IsRetryable(err) {
			return zero, err
		}

		delay := cfg.Delay(attempt)
		if cfg.MaxElapsedTime > 0 && time.Since(start)+delay > cfg.MaxElapsedTime {
			return zero, err
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(err, attempt+1, delay)
		}

		select {
		case <-ctx.Done():
			return zero, &ChatError{LLMError{Message: "request cancelled during retry", Cause: ctx.Err()}}
		case <-time.After(delay):
		}

		result, err = fn(ctx)
		if err == nil {
			return result, nil
		}
	}

	return zero, err
}
