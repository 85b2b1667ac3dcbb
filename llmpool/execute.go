package llmpool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docweave/docweave/llmclient"
)

// Execute runs a structured request through the pool. Failover and
// combination pools walk members until one succeeds, marking each failed
// member so later selections route around it; a distribute pool makes a
// single attempt because its job is spreading load, not availability.
func Execute[T any](ctx context.Context, p *Pool, systemPrompt, userPrompt string) (T, error) {
	var zero T

	attempts := p.Len()
	if p.Behavior() == BehaviorDistribute {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		m := p.Select()
		result, err := llmclient.StructuredWithRetry[T](ctx, m.Client(), systemPrompt, userPrompt)
		if err == nil {
			m.ClearFailure()
			return result, nil
		}

		m.MarkFailure()
		lastErr = err
		slog.Warn("pool request failed",
			"model", m.Client().Model(), "attempt", i+1, "of", attempts, "error", err)

		if ctx.Err() != nil {
			break
		}
	}
	return zero, fmt.Errorf("all pool clients failed: %w", lastErr)
}

// ExecuteSimple runs a plain-text request through the pool with the same
// attempt semantics as Execute.
func ExecuteSimple(ctx context.Context, p *Pool, systemPrompt, userPrompt string) (string, error) {
	attempts := p.Len()
	if p.Behavior() == BehaviorDistribute {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		m := p.Select()
		text, err := m.Client().SimpleWithRetry(ctx, systemPrompt, userPrompt)
		if err == nil {
			m.ClearFailure()
			return text, nil
		}

		m.MarkFailure()
		lastErr = err
		slog.Warn("pool request failed",
			"model", m.Client().Model(), "attempt", i+1, "of", attempts, "error", err)

		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("all pool clients failed: %w", lastErr)
}
