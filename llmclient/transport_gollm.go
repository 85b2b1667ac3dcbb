package llmclient

import (
	"context"
	"sync"

	"github.com/teilomillet/gollm"
)

// GollmTransport is the default Transport, backed by one gollm.LLM handle.
// The handle is built lazily on first use so that client construction never
// touches the network.
type GollmTransport struct {
	provider    string
	model       string
	apiKey      string
	maxTokens   int
	temperature float64

	once sync.Once
	llm  gollm.LLM
	err  error

	// Guards the handle's mutable option state across Sends.
	mu sync.Mutex
}

func newGollmTransport(provider, model, apiKey string, maxTokens int, temperature float64) *GollmTransport {
	return &GollmTransport{
		provider:    provider,
		model:       model,
		apiKey:      apiKey,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (t *GollmTransport) build() (gollm.LLM, error) {
	t.once.Do(func() {
		opts := []gollm.ConfigOption{
			gollm.SetProvider(t.provider),
			gollm.SetModel(t.model),
			gollm.SetMaxTokens(t.maxTokens),
			gollm.SetTemperature(t.temperature),
			gollm.SetMaxRetries(0), // retries are handled above the transport
			gollm.SetLogLevel(gollm.LogLevelWarn),
		}
		if t.apiKey != "" {
			opts = append(opts, gollm.SetAPIKey(t.apiKey))
		}
		t.llm, t.err = gollm.NewLLM(opts...)
		if t.err != nil {
			t.err = &BuildError{LLMError{Message: "creating backend handle for " + t.provider, Cause: t.err}}
		}
	})
	return t.llm, t.err
}

// Send delivers one prompt and returns the generated text. Backend errors
// are classified by message content.
func (t *GollmTransport) Send(ctx context.Context, p Prompt) (string, error) {
	llm, err := t.build()
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Option state lives on the shared handle, so every request sets its
	// own values rather than inheriting the previous request's.
	maxTokens := t.maxTokens
	if p.MaxTokens > 0 {
		maxTokens = p.MaxTokens
	}
	llm.SetOption("max_tokens", maxTokens)
	llm.SetOption("temperature", p.Temperature)

	promptOpts := []gollm.PromptOption{}
	if p.System != "" {
		promptOpts = append(promptOpts, gollm.WithSystemPrompt(p.System, gollm.CacheTypeEphemeral))
	}

	text, err := llm.Generate(ctx, gollm.NewPrompt(p.User, promptOpts...))
	if err != nil {
		return "", FromErrorString(err.Error())
	}
	return text, nil
}
