// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "proposal-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RelayConfig holds settings for the CORS relay client.
type RelayConfig struct {
	HTTPConfig `yaml:",inline"`
}

// SearchConfig holds settings for the Google Scholar reference aggregation stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the SerpAPI key used for Google Scholar queries.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Language is the interface language parameter (default "id").
	Language string `json:"language" yaml:"language"`

	// YearFrom and YearTo bound the publication year filter (default 2020-2024).
	YearFrom int `json:"year_from" yaml:"year_from"`
	YearTo   int `json:"year_to" yaml:"year_to"`

	// ResultsPerQuery is the result window requested per search query (default 5).
	ResultsPerQuery int `json:"results_per_query" yaml:"results_per_query"`

	// MaxReferences caps the aggregated reference list (default 20).
	MaxReferences int `json:"max_references" yaml:"max_references"`

	// QueryDelay is the pause between consecutive queries. Queries run
	// sequentially on purpose; the delay keeps SerpAPI and the public
	// relays from throttling us (default 300ms).
	QueryDelay time.Duration `json:"query_delay" yaml:"query_delay"`

	// RetryDelay is the wait before the single bounded retry that runs
	// when every query failed (default 2s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// ProviderConfig holds settings for the LLM provider dispatch stage.
type ProviderConfig struct {
	HTTPConfig `yaml:",inline"`

	// Name selects the provider variant: gemini, groq, claude, or openrouter.
	Name string `json:"name" yaml:"name"`

	// Credentials maps a provider name to its API key. The gemini entry
	// may hold several keys, one per line.
	Credentials map[string]string `json:"credentials,omitempty" yaml:"credentials,omitempty"`

	// Model overrides the variant's default model identifier when non-empty.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// MaxTokens overrides the variant's default output budget when positive.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`

	// Referer is sent as the HTTP-Referer header to OpenRouter.
	Referer string `json:"referer,omitempty" yaml:"referer,omitempty"`
}

// StoreConfig holds settings for the durable draft/history store.
type StoreConfig struct {
	// Path is the SQLite database file (default "proposal-engine.db").
	Path string `json:"path" yaml:"path"`

	// AutosaveDelay is the quiet period before a coalesced draft write (default 1s).
	AutosaveDelay time.Duration `json:"autosave_delay" yaml:"autosave_delay"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Relay    RelayConfig    `json:"relay" yaml:"relay"`
	Search   SearchConfig   `json:"search" yaml:"search"`
	Provider ProviderConfig `json:"provider" yaml:"provider"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}

// DefaultPipelineConfig returns the stock configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Relay: RelayConfig{
			HTTPConfig: HTTPConfig{Timeout: 10 * time.Second, UserAgent: "proposal-engine/0.1"},
		},
		Search: SearchConfig{
			HTTPConfig:      HTTPConfig{Timeout: 10 * time.Second, UserAgent: "proposal-engine/0.1"},
			Language:        "id",
			YearFrom:        2020,
			YearTo:          2024,
			ResultsPerQuery: 5,
			MaxReferences:   20,
			QueryDelay:      300 * time.Millisecond,
			RetryDelay:      2 * time.Second,
		},
		Provider: ProviderConfig{
			HTTPConfig: HTTPConfig{Timeout: 120 * time.Second, UserAgent: "proposal-engine/0.1"},
			Name:       "openrouter",
		},
		Store: StoreConfig{
			Path:          "proposal-engine.db",
			AutosaveDelay: time.Second,
		},
	}
}
