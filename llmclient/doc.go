// Package llmclient provides a resilient client for text-generation
// backends: a typed error taxonomy with message-based classification,
// exponential-backoff retry, multi-strategy JSON extraction from free-form
// responses, and schema-guided structured output.
//
// # Basic usage
//
//	client, err := llmclient.NewClient("claude-3-5-haiku-latest")
//	if err != nil {
//		return err
//	}
//
//	type Verdict struct {
//		Pass   bool   `json:"pass"`
//		Reason string `json:"reason"`
//	}
//
//	v, err := llmclient.StructuredWithRetry[Verdict](ctx, client,
//		"Judge the submission.", submission)
//
// Credentials come from an explicit WithAPIKey option or from the
// provider's environment variable (OPENAI_API_KEY, ANTHROPIC_API_KEY, and
// so on). The Transport interface isolates the wire protocol; the default
// implementation is backed by gollm and can be replaced in tests.
//
// # Errors and retries
//
// Backend failures are classified by message content into RateLimitError,
// ServerError or ChatError. Only the first two are retryable; Retry applies
// exponential backoff bounded by both a retry count and an elapsed-time
// budget.
package llmclient
