package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docweave/docweave/simpleschema"
)

const schemaInstructions = `%s
CRITICAL INSTRUCTIONS:
- You MUST respond with ONLY a valid JSON object
- NO explanatory text before or after the JSON
- NO markdown code blocks or formatting
- NO comments or additional content
- The JSON must exactly match this schema:
` + "```json\n%s\n```" + `
Any response that is not pure JSON will be rejected.`

// Structured sends one request and decodes the response into T. The schema
// for T is reduced with simpleschema and appended to the system prompt,
// except for Google backends which take the schema natively and reject
// prompts that restate it.
func Structured[T any](ctx context.Context, c *Client, systemPrompt, userPrompt string) (T, error) {
	var zero T

	schema, err := simpleschema.For[T]()
	if err != nil {
		return zero, &BuildError{LLMError{Message: "reducing schema for " + simpleschema.NameFor[T](), Cause: err}}
	}
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return zero, &BuildError{LLMError{Message: "serializing schema", Cause: err}}
	}

	prompt := c.systemPrompt(systemPrompt)
	if c.provider != "google" {
		prompt = fmt.Sprintf(schemaInstructions, prompt, schemaJSON)
	}

	requestID := uuid.New().String()
	c.logger.Debug("structured request",
		"request_id", requestID,
		"model", c.model,
		"schema", simpleschema.NameFor[T]())

	text, err := c.transport.Send(ctx, Prompt{
		System:      prompt,
		User:        userPrompt,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		c.logger.Warn("structured request failed",
			"request_id", requestID, "model", c.model, "error", err)
		return zero, err
	}
	if text == "" {
		return zero, &ParseError{LLMError{Message: "empty response"}}
	}

	return TryParse[T](text)
}

// StructuredWithRetry is Structured wrapped in the client's retry policy.
func StructuredWithRetry[T any](ctx context.Context, c *Client, systemPrompt, userPrompt string) (T, error) {
	cfg := c.retryConfig()
	if cfg.OnRetry == nil {
		cfg.OnRetry = func(err error, attempt int, delay time.Duration) {
			c.logger.Warn("retrying after failure",
				"model", c.model, "attempt", attempt, "delay", delay, "error", err)
		}
	}
	return Retry(ctx, cfg, func(ctx context.Context) (T, error) {
		return Structured[T](ctx, c, systemPrompt, userPrompt)
	})
}

// Simple sends one request and returns the raw response text.
func (c *Client) Simple(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text, err := c.transport.Send(ctx, Prompt{
		System:      c.systemPrompt(systemPrompt),
		User:        userPrompt,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", &ParseError{LLMError{Message: "empty response"}}
	}
	return text, nil
}

// SimpleWithRetry is Simple wrapped in the client's retry policy.
func (c *Client) SimpleWithRetry(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := c.retryConfig()
	return Retry(ctx, cfg, func(ctx context.Context) (string, error) {
		return c.Simple(ctx, systemPrompt, userPrompt)
	})
}
