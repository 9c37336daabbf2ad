package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/inquiro-ai/inquiro/pkg/config"
)

// HostedClient talks to an OpenAI-compatible completion endpoint.
type HostedClient struct {
	api   *openai.Client
	model string
	cfg   config.LLMConfig
}

// NewHostedClient builds a client from config; model overrides the
// configured default when non-empty (per-run model selection).
func NewHostedClient(cfg config.LLMConfig, model string) (*HostedClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("hosted llm provider requires an API key")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if model == "" {
		model = cfg.Model
	}
	return &HostedClient{
		api:   openai.NewClientWithConfig(clientCfg),
		model: model,
		cfg:   cfg,
	}, nil
}

// Model returns the model name used for completions.
func (c *HostedClient) Model() string { return c.model }

// Generate performs one chat completion.
func (c *HostedClient) Generate(ctx context.Context, req Request) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	completion := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		completion.MaxTokens = req.MaxTokens
	}
	if req.ForceJSON {
		completion.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(callCtx, completion)
	if err != nil {
		status := 0
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.HTTPStatusCode
		}
		return nil, &Error{Provider: ProviderHosted, Model: c.model, StatusCode: status, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &Error{Provider: ProviderHosted, Model: c.model, Err: fmt.Errorf("empty choices")}
	}

	return &Response{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
