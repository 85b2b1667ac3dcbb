package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/docweave/docweave/llmclient"
	"github.com/docweave/docweave/llmpool"
)

// envPrefix namespaces environment overrides, e.g.
// DOCWEAVE_RETRY_MAX_RETRIES=3.
const envPrefix = "DOCWEAVE"

// Settings is the application configuration: which models to pool, how to
// route between them, and how aggressively to retry.
type Settings struct {
	Behavior string          `mapstructure:"behavior" yaml:"behavior" json:"behavior"`
	Retry    RetrySettings   `mapstructure:"retry" yaml:"retry" json:"retry"`
	Models   []ModelSettings `mapstructure:"models" yaml:"models" json:"models"`
}

// RetrySettings mirrors llmclient.RetryConfig in configuration-friendly
// units.
type RetrySettings struct {
	MaxRetries        int     `mapstructure:"max_retries" yaml:"max_retries" json:"max_retries"`
	InitialIntervalMs int     `mapstructure:"initial_interval_ms" yaml:"initial_interval_ms" json:"initial_interval_ms"`
	MaxIntervalS      int     `mapstructure:"max_interval_s" yaml:"max_interval_s" json:"max_interval_s"`
	Multiplier        float64 `mapstructure:"multiplier" yaml:"multiplier" json:"multiplier"`
	MaxElapsedTimeS   int     `mapstructure:"max_elapsed_time_s" yaml:"max_elapsed_time_s" json:"max_elapsed_time_s"`
}

// ModelSettings configures one pooled client.
type ModelSettings struct {
	Model          string  `mapstructure:"model" yaml:"model" json:"model"`
	Priority       int     `mapstructure:"priority" yaml:"priority" json:"priority"`
	APIKey         string  `mapstructure:"api_key" yaml:"api_key,omitempty" json:"api_key,omitempty"`
	MaxTokens      int     `mapstructure:"max_tokens" yaml:"max_tokens" json:"max_tokens"`
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature" json:"temperature"`
	PromptOverride string  `mapstructure:"prompt_override" yaml:"prompt_override,omitempty" json:"prompt_override,omitempty"`
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		Behavior: llmpool.BehaviorFailover.String(),
		Retry: RetrySettings{
			MaxRetries:        5,
			InitialIntervalMs: 5000,
			MaxIntervalS:      60,
			Multiplier:        2.0,
			MaxElapsedTimeS:   300,
		},
	}
}

// DefaultModel returns the settings applied to a model entry that only
// names its model.
func DefaultModel(model string) ModelSettings {
	return ModelSettings{
		Model:       model,
		Priority:    1,
		MaxTokens:   1500,
		Temperature: 0.5,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("behavior", def.Behavior)
	v.SetDefault("retry.max_retries", def.Retry.MaxRetries)
	v.SetDefault("retry.initial_interval_ms", def.Retry.InitialIntervalMs)
	v.SetDefault("retry.max_interval_s", def.Retry.MaxIntervalS)
	v.SetDefault("retry.multiplier", def.Retry.Multiplier)
	v.SetDefault("retry.max_elapsed_time_s", def.Retry.MaxElapsedTimeS)
	return v
}

func unmarshal(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	raw := v.Get("models")
	for i := range s.Models {
		m := &s.Models[i]
		keys := modelKeys(raw, i)
		if _, ok := keys["priority"]; !ok {
			m.Priority = 1
		}
		if _, ok := keys["max_tokens"]; !ok {
			m.MaxTokens = 1500
		}
		if _, ok := keys["temperature"]; !ok {
			m.Temperature = 0.5
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// modelKeys returns the raw keys of the i-th model entry so that defaults
// apply only to absent fields, never to explicit zero values.
func modelKeys(raw any, i int) map[string]any {
	list, ok := raw.([]any)
	if !ok || i >= len(list) {
		return nil
	}
	m, _ := list[i].(map[string]any)
	return m
}

// Load reads settings from a YAML, JSON or TOML file, layered under
// environment overrides.
func Load(path string) (*Settings, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return unmarshal(v)
}

// FromEnv builds settings from defaults and environment overrides alone.
func FromEnv() (*Settings, error) {
	return unmarshal(newViper())
}

// Validate checks cross-field constraints that decoding cannot.
func (s *Settings) Validate() error {
	if _, err := llmpool.ParseBehavior(s.Behavior); err != nil {
		return err
	}
	for _, m := range s.Models {
		if m.Model == "" {
			return fmt.Errorf("model entry with empty model name")
		}
		if llmclient.LookupModel(m.Model) == nil {
			return fmt.Errorf("unknown model %q", m.Model)
		}
	}
	return nil
}

// RetryConfig converts the configured retry policy to the client's
// native form.
func (s *Settings) RetryConfig() llmclient.RetryConfig {
	return llmclient.RetryConfig{
		MaxRetries:      s.Retry.MaxRetries,
		InitialInterval: time.Duration(s.Retry.InitialIntervalMs) * time.Millisecond,
		MaxInterval:     time.Duration(s.Retry.MaxIntervalS) * time.Second,
		Multiplier:      s.Retry.Multiplier,
		MaxElapsedTime:  time.Duration(s.Retry.MaxElapsedTimeS) * time.Second,
	}
}

// BuildPool constructs clients for every configured model and assembles
// them into a pool.
func (s *Settings) BuildPool() (*llmpool.Pool, error) {
	behavior, err := llmpool.ParseBehavior(s.Behavior)
	if err != nil {
		return nil, err
	}

	retry := s.RetryConfig()
	b := llmpool.NewBuilder().WithBehavior(behavior)
	for _, m := range s.Models {
		opts := []llmclient.Option{
			llmclient.WithMaxTokens(m.MaxTokens),
			llmclient.WithTemperature(m.Temperature),
			llmclient.WithRetryConfig(retry),
		}
		if m.APIKey != "" {
			opts = append(opts, llmclient.WithAPIKey(m.APIKey))
		}
		if m.PromptOverride != "" {
			opts = append(opts, llmclient.WithPromptOverride(m.PromptOverride))
		}
		client, err := llmclient.NewClient(m.Model, opts...)
		if err != nil {
			return nil, fmt.Errorf("configuring model %s: %w", m.Model, err)
		}
		b.AddClient(client, m.Priority)
	}
	return b.Build()
}

// WriteDefault writes the default configuration to w in the given format,
// either "yaml" or "json".
func WriteDefault(w io.Writer, format string) error {
	def := Default()
	def.Models = []ModelSettings{DefaultModel("gpt-4o-mini")}

	switch format {
	case "yaml":
		return yaml.NewEncoder(w).Encode(def)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(def)
	}
	return fmt.Errorf("unknown settings format %q", format)
}
