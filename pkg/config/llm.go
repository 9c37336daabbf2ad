package config

import (
	"fmt"
	"time"
)

// LLM provider names.
const (
	LLMProviderHosted   = "hosted"
	LLMProviderDisabled = "disabled"
)

// LLMConfig configures the LLM and embedding clients.
type LLMConfig struct {
	// Provider selects the LLM backend (LLM_PROVIDER): hosted | disabled.
	Provider string

	// Model is the default model identifier (HOSTED_LLM_MODEL).
	Model string

	// APIKey authenticates against the hosted provider (HOSTED_LLM_API_KEY).
	APIKey string

	// BaseURL overrides the provider endpoint (HOSTED_LLM_BASE_URL),
	// empty for the provider default.
	BaseURL string

	// EmbeddingModel names the embedding model (EMBEDDING_MODEL).
	EmbeddingModel string

	// EmbeddingDimensions is the fixed vector width (EMBEDDING_DIMENSIONS).
	// Must match the vector(N) columns.
	EmbeddingDimensions int

	// RequestTimeout applies per LLM/embedding HTTP call.
	RequestTimeout time.Duration
}

// LoadLLMConfig reads LLM configuration from the environment.
func LoadLLMConfig() (*LLMConfig, error) {
	cfg := &LLMConfig{
		Provider:            envString("LLM_PROVIDER", LLMProviderDisabled),
		Model:               envString("HOSTED_LLM_MODEL", "gpt-4o-mini"),
		APIKey:              envString("HOSTED_LLM_API_KEY", ""),
		BaseURL:             envString("HOSTED_LLM_BASE_URL", ""),
		EmbeddingModel:      envString("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDimensions: envInt("EMBEDDING_DIMENSIONS", 1536),
		RequestTimeout:      envDuration("LLM_REQUEST_TIMEOUT", 120*time.Second),
	}

	switch cfg.Provider {
	case LLMProviderHosted, LLMProviderDisabled:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}
	if cfg.Provider == LLMProviderHosted && cfg.APIKey == "" {
		return nil, fmt.Errorf("HOSTED_LLM_API_KEY is required when LLM_PROVIDER=hosted")
	}
	return cfg, nil
}
