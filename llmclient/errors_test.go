package llmclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorStringClassification(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantRate  bool
		wantSrv   bool
		retryable bool
	}{
		{"status 429", "HTTP 429 returned", true, false, true},
		{"rate limit phrase", "Rate Limit hit for org", true, false, true},
		{"too many requests", "too many requests, slow down", true, false, true},
		{"quota", "monthly quota exceeded", true, false, true},
		{"rpm", "exceeded 20 requests per minute", true, false, true},
		{"rph", "exceeded 100 requests per hour", true, false, true},
		{"status 500", "got 500 from upstream", false, true, true},
		{"status 503", "503 please retry", false, true, true},
		{"internal server error", "Internal Server Error", false, true, true},
		{"bad gateway", "502 Bad Gateway", false, true, true},
		{"service unavailable", "Service Unavailable", false, true, true},
		{"gateway timeout", "gateway timeout after 30s", false, true, true},
		{"plain failure", "connection reset by peer", false, false, false},
		{"auth failure", "401 unauthorized", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromErrorString(tt.message)
			require.Error(t, err)

			var rate *RateLimitError
			var srv *ServerError
			assert.Equal(t, tt.wantRate, errors.As(err, &rate))
			assert.Equal(t, tt.wantSrv, errors.As(err, &srv))
			assert.Equal(t, tt.retryable, IsRetryable(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRateLimitWinsOverServerMarkers(t *testing.T) {
	// A message matching both families classifies as rate limited.
	err := FromErrorString("429 too many requests from 503 backend")
	var rate *RateLimitError
	assert.True(t, errors.As(err, &rate))
}

func TestClassificationIsCaseInsensitive(t *testing.T) {
	err := FromErrorString("QUOTA EXCEEDED")
	var rate *RateLimitError
	assert.True(t, errors.As(err, &rate))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(&RateLimitError{LLMError{Message: "x"}}))
	assert.True(t, IsRetryable(&ServerError{LLMError{Message: "x"}}))
	assert.False(t, IsRetryable(&ChatError{LLMError{Message: "x"}}))
	assert.False(t, IsRetryable(&ParseError{LLMError{Message: "x"}}))
	assert.False(t, IsRetryable(&BuildError{LLMError{Message: "x"}}))
	assert.False(t, IsRetryable(&ConfigurationError{LLMError{Message: "x"}}))
	assert.False(t, IsRetryable(errors.New("arbitrary")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ServerError{LLMError{Message: "upstream", Cause: cause}}
	assert.ErrorIs(t, err, cause)
}
