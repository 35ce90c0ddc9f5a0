package llm

import (
	"context"
	"errors"
)

// Request describes a single chat completion call.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Client abstracts LLM providers. The reply is free text; callers own any
// structure they expect to find in it.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is the client used when no provider is configured, as in
// dev environments without an API key. Every call fails with ErrNotConfigured.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}
