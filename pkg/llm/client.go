// Package llm provides the chat-completion client used by pipeline stages.
package llm

import (
	"context"
	"fmt"
)

// Provider names.
const (
	ProviderHosted   = "hosted"
	ProviderDisabled = "disabled"
)

// Request is one completion call.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
	// ForceJSON asks the provider for a JSON-object response. Validators
	// still treat the output as untrusted.
	ForceJSON bool
}

// Response is the completion result with token accounting.
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// Client is the narrow contract stages call. Implementations carry their own
// per-call timeout on top of ctx.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Model() string
}

// Error wraps a provider failure with enough context for stage error events.
type Error struct {
	Provider   string
	Model      string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm %s/%s: status %d: %v", e.Provider, e.Model, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm %s/%s: %v", e.Provider, e.Model, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
