// Package embedding provides the text-embedding client used by ingestion and
// retrieval.
package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/inquiro-ai/inquiro/pkg/config"
)

// Client embeds batches of texts. Implementations carry their own per-call
// timeout on top of ctx.
type Client interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	ModelName() string
	Dimensions() int
}

// OpenAIClient calls an OpenAI-compatible embeddings endpoint.
type OpenAIClient struct {
	api  *openai.Client
	cfg  config.LLMConfig
	name string
}

// NewOpenAIClient builds an embedding client from the LLM config.
func NewOpenAIClient(cfg config.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding client requires an API key")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		api:  openai.NewClientWithConfig(clientCfg),
		cfg:  cfg,
		name: cfg.EmbeddingModel,
	}, nil
}

// ModelName returns the embedding model identifier persisted alongside
// vectors, so cache hits never mix models.
func (c *OpenAIClient) ModelName() string { return c.name }

// Dimensions returns the configured vector width.
func (c *OpenAIClient) Dimensions() int { return c.cfg.EmbeddingDimensions }

// EmbedTexts embeds a batch in one request, preserving input order.
func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(callCtx, openai.EmbeddingRequest{
		Model:      openai.EmbeddingModel(c.name),
		Input:      texts,
		Dimensions: c.cfg.EmbeddingDimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response size mismatch: got %d, want %d", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
