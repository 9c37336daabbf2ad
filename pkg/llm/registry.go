package llm

import (
	"fmt"
	"sync"

	"github.com/inquiro-ai/inquiro/pkg/config"
)

// ClientRegistry hands out clients keyed by (provider, model) so runs with
// per-run overrides share connections with the defaults.
type ClientRegistry struct {
	cfg config.LLMConfig

	mu      sync.Mutex
	clients map[string]Client
}

// NewClientRegistry creates a registry over the configured default provider.
func NewClientRegistry(cfg config.LLMConfig) *ClientRegistry {
	return &ClientRegistry{
		cfg:     cfg,
		clients: make(map[string]Client),
	}
}

// Resolve returns a client for the provider/model pair; empty values fall
// back to the configured defaults.
func (r *ClientRegistry) Resolve(provider, model string) (Client, error) {
	if provider == "" {
		provider = r.cfg.Provider
	}
	if model == "" {
		model = r.cfg.Model
	}

	key := provider + "/" + model

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[key]; ok {
		return c, nil
	}

	var (
		c   Client
		err error
	)
	switch provider {
	case ProviderHosted:
		c, err = NewHostedClient(r.cfg, model)
	case ProviderDisabled:
		c = NewDisabledClient()
	default:
		err = fmt.Errorf("unknown llm provider %q", provider)
	}
	if err != nil {
		return nil, err
	}

	r.clients[key] = c
	return c, nil
}
