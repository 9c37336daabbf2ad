// Package connector provides academic source connectors (OpenAlex, arXiv).
package connector

import (
	"context"
	"net/http"
	"time"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

// SearchOptions bounds one connector query.
type SearchOptions struct {
	MaxResults int
	YearFrom   int
	YearTo     int
}

// Connector searches one external academic source.
type Connector interface {
	Name() string
	Search(ctx context.Context, query string, opts SearchOptions) ([]models.Source, error)
}

// defaultHTTPTimeout applies when the caller passes no client.
const defaultHTTPTimeout = 15 * time.Second

func httpClientOrDefault(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
