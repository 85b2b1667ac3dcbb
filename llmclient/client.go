package llmclient

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"os"
)

// Prompt is one fully resolved request to a backend.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Transport sends a prompt to a backend and returns the generated text.
// Implementations classify their failures with FromErrorString so the
// retry machinery can distinguish throttling from hard errors.
type Transport interface {
	Send(ctx context.Context, p Prompt) (string, error)
}

// Client is an immutable handle on one model with one credential. The
// identity returned by ID is derived from the model and credential only,
// so two clients configured identically are interchangeable.
type Client struct {
	model          string
	provider       string
	apiKey         string
	maxTokens      int
	temperature    float64
	promptOverride string
	retry          *RetryConfig
	transport      Transport
	logger         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the credential explicitly instead of reading it from the
// provider's environment variable.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithMaxTokens overrides the default completion budget.
func WithMaxTokens(n int) Option {
	return func(c *Client) { c.maxTokens = n }
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

// WithRetryConfig sets the retry policy used by the WithRetry variants.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = &cfg }
}

// WithPromptOverride replaces the caller-supplied system prompt on every
// request.
func WithPromptOverride(prompt string) Option {
	return func(c *Client) { c.promptOverride = prompt }
}

// WithTransport swaps the backend transport. Mostly useful in tests.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a client for a catalog model. When no API key option is
// given the provider's environment variable is consulted; a missing
// credential is a ConfigurationError.
func NewClient(model string, opts ...Option) (*Client, error) {
	info := LookupModel(model)
	if info == nil {
		return nil, &ConfigurationError{LLMError{Message: "unknown model: " + model}}
	}

	c := &Client{
		model:       model,
		provider:    info.Provider,
		maxTokens:   1500,
		temperature: 0.5,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		envVar := ProviderEnvVar(c.provider)
		c.apiKey = os.Getenv(envVar)
		if c.apiKey == "" {
			return nil, &ConfigurationError{LLMError{
				Message: fmt.Sprintf("missing credential for model %s: set %s or configure an API key", model, envVar),
			}}
		}
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.transport == nil {
		c.transport = newGollmTransport(c.provider, c.model, c.apiKey, c.maxTokens, c.temperature)
	}
	return c, nil
}

// ID returns the client identity, a hash over model and credential.
func (c *Client) ID() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.model))
	h.Write([]byte{0})
	h.Write([]byte(c.apiKey))
	return h.Sum64()
}

// Model returns the configured model ID.
func (c *Client) Model() string { return c.model }

// Provider returns the backend provider name.
func (c *Client) Provider() string { return c.provider }

func (c *Client) retryConfig() RetryConfig {
	if c.retry != nil {
		return *c.retry
	}
	return DefaultRetryConfig()
}

func (c *Client) systemPrompt(requested string) string {
	if c.promptOverride != "" {
		return c.promptOverride
	}
	return requested
}
