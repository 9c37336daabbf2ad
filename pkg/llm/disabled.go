package llm

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled provider. Deployments without LLM
// credentials fail fast at the first stage that needs a completion.
var ErrDisabled = errors.New("llm provider is disabled")

// DisabledClient rejects every call.
type DisabledClient struct{}

// NewDisabledClient creates a client for the "disabled" provider.
func NewDisabledClient() *DisabledClient { return &DisabledClient{} }

// Model returns the placeholder model name.
func (c *DisabledClient) Model() string { return "disabled" }

// Generate always fails with ErrDisabled.
func (c *DisabledClient) Generate(_ context.Context, _ Request) (*Response, error) {
	return nil, &Error{Provider: ProviderDisabled, Model: "disabled", Err: ErrDisabled}
}
