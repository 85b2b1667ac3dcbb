package llmclient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
		MaxElapsedTime:  time.Second,
	}
}

func TestRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastRetryConfig(3), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestRetryRetriesRetryableErrors(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastRetryConfig(3), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &RateLimitError{LLMError{Message: "throttled"}}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetryConfig(2), func(ctx context.Context) (int, error) {
		calls++
		return 0, &ServerError{LLMError{Message: "boom"}}
	})

	require.Error(t, err)
	// Initial call plus two retries.
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetryConfig(5), func(ctx context.Context) (int, error) {
		calls++
		return 0, &ChatError{LLMError{Message: "bad request"}}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryHonorsElapsedTimeBudget(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries:      10,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  60 * time.Millisecond,
	}

	calls := 0
	start := time.Now()
	_, err := Retry(context.Background(), cfg, func(ctx context.Context) (int, error) {
		calls++
		return 0, &ServerError{LLMError{Message: "boom"}}
	})

	require.Error(t, err)
	// First retry sleeps 50ms, the second would push past 60ms total.
	assert.LessOrEqual(t, calls, 2)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastRetryConfig(3)
	cfg.InitialInterval = 10 * time.Second
	cfg.MaxInterval = 10 * time.Second
	cfg.MaxElapsedTime = time.Minute

	done := make(chan error, 1)
	go func() {
		_, err := Retry(ctx, cfg, func(ctx context.Context) (int, error) {
			return 0, &ServerError{LLMError{Message: "boom"}}
		})
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("retry did not observe cancellation")
	}
}

func TestRetryOnRetryHook(t *testing.T) {
	var attempts []int
	var delays []time.Duration

	cfg := fastRetryConfig(3)
	cfg.OnRetry = func(err error, attempt int, delay time.Duration) {
		attempts = append(attempts, attempt)
		delays = append(delays, delay)
	}

	_, err := Retry(context.Background(), cfg, func(ctx context.Context) (int, error) {
		return 0, &RateLimitError{LLMError{Message: "throttled"}}
	})

	require.Error(t, err)
	assert.Equal(t, []int{1, 2, 3}, attempts)
	require.Len(t, delays, 3)
	// Delays grow geometrically until the cap.
	assert.Equal(t, time.Millisecond, delays[0])
	assert.Equal(t, 2*time.Millisecond, delays[1])
	assert.Equal(t, 4*time.Millisecond, delays[2])
}

func TestDelaySequence(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, time.Second, cfg.Delay(0))
	assert.Equal(t, 2*time.Second, cfg.Delay(1))
	assert.Equal(t, 4*time.Second, cfg.Delay(2))
	assert.Equal(t, 8*time.Second, cfg.Delay(3))
	// Capped at the maximum interval.
	assert.Equal(t, 60*time.Second, cfg.Delay(6))
	assert.Equal(t, 60*time.Second, cfg.Delay(20))
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.InitialInterval)
	assert.Equal(t, 60*time.Second, cfg.MaxInterval)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.Equal(t, 5*time.Minute, cfg.MaxElapsedTime)
}
