package llmclient

import "context"

// RequestBuilder configures one request fluently before execution.
type RequestBuilder struct {
	client      *Client
	system      string
	content     string
	maxTokens   int
	temperature float64
	hasTemp     bool
}

// Request starts a builder bound to this client.
func (c *Client) Request() *RequestBuilder {
	return &RequestBuilder{client: c}
}

// System sets the system prompt.
func (b *RequestBuilder) System(prompt string) *RequestBuilder {
	b.system = prompt
	return b
}

// Content sets the user content.
func (b *RequestBuilder) Content(content string) *RequestBuilder {
	b.content = content
	return b
}

// MaxTokens overrides the client's completion budget for this request.
func (b *RequestBuilder) MaxTokens(n int) *RequestBuilder {
	b.maxTokens = n
	return b
}

// Temperature overrides the client's temperature for this request.
func (b *RequestBuilder) Temperature(t float64) *RequestBuilder {
	b.temperature = t
	b.hasTemp = true
	return b
}

func (b *RequestBuilder) prompt() Prompt {
	p := Prompt{
		System:      b.client.systemPrompt(b.system),
		User:        b.content,
		MaxTokens:   b.client.maxTokens,
		Temperature: b.client.temperature,
	}
	if b.maxTokens > 0 {
		p.MaxTokens = b.maxTokens
	}
	if b.hasTemp {
		p.Temperature = b.temperature
	}
	return p
}

// ExecuteSimple sends the request and returns the raw response text.
func (b *RequestBuilder) ExecuteSimple(ctx context.Context) (string, error) {
	text, err := b.client.transport.Send(ctx, b.prompt())
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", &ParseError{LLMError{Message: "empty response"}}
	}
	return text, nil
}

// ExecuteStructured sends the request and decodes the response into T.
// It is a package function because Go methods cannot introduce type
// parameters.
func ExecuteStructured[T any](ctx context.Context, b *RequestBuilder) (T, error) {
	return Structured[T](ctx, b.client, b.system, b.content)
}

// ExecuteStructuredWithRetry is ExecuteStructured under the client's retry
// policy.
func ExecuteStructuredWithRetry[T any](ctx context.Context, b *RequestBuilder) (T, error) {
	return StructuredWithRetry[T](ctx, b.client, b.system, b.content)
}
