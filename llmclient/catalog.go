package llmclient

// ModelInfo describes a known model in the catalog.
type ModelInfo struct {
	ID               string `json:"id"`
	Provider         string `json:"provider"`
	StructuredOutput bool   `json:"structured_output"`
	Reasoning        bool   `json:"reasoning"`
}

// providerEnvVars maps a provider to the environment variable consulted
// when no API key is configured.
var providerEnvVars = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"google":    "GOOGLE_API_KEY",
	"deepseek":  "DEEPSEEK_KEY",
	"xai":       "XAI_API_KEY",
	"groq":      "GROQ_API_KEY",
	"ollama":    "OLLAMA_API_KEY",
}

// Models is the built-in model catalog.
var Models = []ModelInfo{
	// OpenAI
	{ID: "gpt-4o", Provider: "openai", StructuredOutput: true},
	{ID: "gpt-4o-mini", Provider: "openai", StructuredOutput: true},
	{ID: "gpt-4.1", Provider: "openai", StructuredOutput: true},
	{ID: "gpt-4.1-mini", Provider: "openai", StructuredOutput: true},
	{ID: "gpt-4.1-nano", Provider: "openai"},
	{ID: "o3", Provider: "openai", StructuredOutput: true, Reasoning: true},
	{ID: "o3-mini", Provider: "openai", StructuredOutput: true, Reasoning: true},
	{ID: "o4-mini", Provider: "openai", StructuredOutput: true, Reasoning: true},
	{ID: "gpt-4-turbo", Provider: "openai"},
	{ID: "gpt-3.5-turbo", Provider: "openai"},

	// Anthropic
	{ID: "claude-3-5-sonnet-latest", Provider: "anthropic", StructuredOutput: true},
	{ID: "claude-3-5-haiku-latest", Provider: "anthropic", StructuredOutput: true},
	{ID: "claude-3-opus-20240229", Provider: "anthropic", StructuredOutput: true},
	{ID: "claude-3-7-sonnet-latest", Provider: "anthropic", StructuredOutput: true, Reasoning: true},
	{ID: "claude-sonnet-4-20250514", Provider: "anthropic", StructuredOutput: true, Reasoning: true},
	{ID: "claude-opus-4-20250514", Provider: "anthropic", StructuredOutput: true, Reasoning: true},

	// Google
	{ID: "gemini-1.5-pro", Provider: "google", StructuredOutput: true},
	{ID: "gemini-1.5-flash", Provider: "google", StructuredOutput: true},
	{ID: "gemini-1.5-flash-8b", Provider: "google"},
	{ID: "gemini-2.0-flash", Provider: "google", StructuredOutput: true},
	{ID: "gemini-2.5-pro-preview-05-06", Provider: "google", StructuredOutput: true, Reasoning: true},
	{ID: "gemini-2.5-flash-preview-05-20", Provider: "google", StructuredOutput: true, Reasoning: true},

	// DeepSeek
	{ID: "deepseek-reasoner", Provider: "deepseek", StructuredOutput: true, Reasoning: true},
	{ID: "deepseek-chat", Provider: "deepseek", StructuredOutput: true},
	{ID: "deepseek-coder", Provider: "deepseek", StructuredOutput: true},

	// xAI
	{ID: "grok-3", Provider: "xai", StructuredOutput: true},
	{ID: "grok-3-mini", Provider: "xai", StructuredOutput: true},
	{ID: "grok-3-reasoning", Provider: "xai", Reasoning: true},
	{ID: "grok-3-mini-reasoning", Provider: "xai", Reasoning: true},
	{ID: "grok-2", Provider: "xai", StructuredOutput: true},

	// Groq
	{ID: "llama-3.3-70b-versatile", Provider: "groq", StructuredOutput: true},
	{ID: "llama-3.1-8b-instant", Provider: "groq"},
	{ID: "mixtral-8x7b-32768", Provider: "groq"},

	// Ollama (local)
	{ID: "llama3.3", Provider: "ollama"},
	{ID: "llama3.2", Provider: "ollama"},
	{ID: "codellama", Provider: "ollama"},
	{ID: "mistral", Provider: "ollama"},
	{ID: "mistral:7b", Provider: "ollama"},
	{ID: "gemma2", Provider: "ollama"},
	{ID: "qwen2.5", Provider: "ollama"},
	{ID: "phi3", Provider: "ollama"},
}

// LookupModel returns the catalog entry for a model ID, or nil if unknown.
func LookupModel(id string) *ModelInfo {
	for i := range Models {
		if Models[i].ID == id {
			return &Models[i]
		}
	}
	return nil
}

// ProviderEnvVar returns the credential environment variable for a
// provider, or "" if the provider is unknown.
func ProviderEnvVar(provider string) string {
	return providerEnvVars[provider]
}

// ListModels returns the catalog entries for one provider, or the whole
// catalog when provider is empty.
func ListModels(provider string) []ModelInfo {
	if provider == "" {
		out := make([]ModelInfo, len(Models))
		copy(out, Models)
		return out
	}
	var out []ModelInfo
	for _, m := range Models {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}
