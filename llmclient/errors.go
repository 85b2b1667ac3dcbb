package llmclient

import (
	"fmt"
	"strings"
)

// LLMError is the base error type for everything in this package.
type LLMError struct {
	Message string
	Cause   error
}

func (e *LLMError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LLMError) Unwrap() error {
	return e.Cause
}

// BuildError means the backend handle could not be constructed.
type BuildError struct{ LLMError }

// ChatError is the catch-all for request failures that are neither rate
// limiting nor server-side faults.
type ChatError struct{ LLMError }

// ParseError means the response text could not be decoded into the
// requested type.
type ParseError struct{ LLMError }

// RateLimitError covers 429-style throttling responses.
type RateLimitError struct{ LLMError }

// ServerError covers 5xx-style backend faults.
type ServerError struct{ LLMError }

// ConfigurationError covers missing credentials, unknown models and other
// setup mistakes.
type ConfigurationError struct{ LLMError }

func (e *BuildError) Error() string         { return "build error: " + e.LLMError.Error() }
func (e *ChatError) Error() string          { return "chat error: " + e.LLMError.Error() }
func (e *ParseError) Error() string         { return "response parsing error: " + e.LLMError.Error() }
func (e *RateLimitError) Error() string     { return "rate limit exceeded: " + e.LLMError.Error() }
func (e *ServerError) Error() string        { return "server error: " + e.LLMError.Error() }
func (e *ConfigurationError) Error() string { return "configuration error: " + e.LLMError.Error() }

var rateLimitMarkers = []string{
	"429",
	"rate limit",
	"too many requests",
	"quota exceeded",
	"requests per minute",
	"requests per hour",
}

var serverErrorMarkers = []string{
	"500",
	"501",
	"502",
	"503",
	"504",
	"internal server error",
	"bad gateway",
	"service unavailable",
	"gateway timeout",
	"http status server error",
}

// FromErrorString classifies a backend error message by substring matching
// against its lowercased form. Rate limiting markers win over server error
// markers; anything unrecognized becomes a ChatError.
func FromErrorString(message string) error {
	lower := strings.ToLower(message)

	for _, marker := range rateLimitMarkers {
		if strings.Contains(lower, marker) {
			return &RateLimitError{LLMError{Message: message}}
		}
	}
	for _, marker := range serverErrorMarkers {
		if strings.Contains(lower, marker) {
			return &ServerError{LLMError{Message: message}}
		}
	}
	return &ChatError{LLMError{Message: message}}
}

// IsRetryable reports whether a request that failed with err is worth
// repeating. Only throttling and server-side faults qualify.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case *RateLimitError, *ServerError:
		return true
	default:
		return false
	}
}
