// Package config holds typed runtime configuration loaded from the
// environment. Call Load once at startup (after godotenv) and pass the
// resulting Config down; components never read os.Getenv themselves.
package config

// Config is the umbrella configuration object returned by Load.
type Config struct {
	Queue     *QueueConfig
	Retriever *RetrieverConfig
	Evidence  *EvidenceConfig
	Draft     *DraftConfig
	LLM       *LLMConfig
}

// Load assembles the full configuration from environment variables,
// falling back to built-in defaults for anything unset.
func Load() (*Config, error) {
	llm, err := LoadLLMConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		Queue:     LoadQueueConfig(),
		Retriever: LoadRetrieverConfig(),
		Evidence:  LoadEvidenceConfig(),
		Draft:     LoadDraftConfig(),
		LLM:       llm,
	}, nil
}
