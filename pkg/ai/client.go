package ai

import (
	"context"
	"time"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/registry"
	"github.com/cloudposse/fngen/pkg/ai/types"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/schema"
)

// Client is the completion client used by the generator.
type Client = registry.Client

// NewClient creates the client for provider, falling back to
// settings.ai.default_provider when provider is empty.
func NewClient(ctx context.Context, config *schema.Configuration, provider string) (Client, error) {
	name := provider
	if name == "" {
		name = config.Settings.AI.DefaultProvider
	}
	if name == "" {
		return nil, errUtils.Build(errUtils.ErrAIProviderNotSet).
			WithHint("Pass --provider or set settings.ai.default_provider in fngen.yaml").
			Err()
	}

	factory, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	client, err := factory(ctx, config)
	if err != nil {
		return nil, err
	}

	log.Debug("Created AI client", "provider", name, "model", client.GetModel(), "max_tokens", client.GetMaxTokens())

	if config.Settings.AI.TimeoutSeconds > 0 {
		return WithTimeout(client, time.Duration(config.Settings.AI.TimeoutSeconds)*time.Second), nil
	}
	return client, nil
}

// timeoutClient bounds every completion call with a deadline.
type timeoutClient struct {
	Client
	timeout time.Duration
}

// WithTimeout wraps client so each request is cancelled after timeout.
func WithTimeout(client Client, timeout time.Duration) Client {
	return &timeoutClient{Client: client, timeout: timeout}
}

func (c *timeoutClient) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.Client.SendMessageWithHistory(ctx, messages)
}
