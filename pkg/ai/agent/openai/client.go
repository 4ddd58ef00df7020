package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/agent/base/openaicompat"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	// ProviderName is the name of this provider for configuration lookup.
	ProviderName = "openai"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 1024
	// DefaultModel is the default OpenAI model.
	DefaultModel = "gpt-4o-mini"
	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "OPENAI_API_KEY"
)

// Client sends conversations to the OpenAI Chat Completions API.
type Client struct {
	client *openai.Client
	config *base.Config
}

// NewClient creates a new OpenAI client from fngen configuration.
func NewClient(config *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(config, ProviderName, base.ProviderDefaults{
		Model:     DefaultModel,
		APIKeyEnv: DefaultAPIKeyEnv,
		MaxTokens: DefaultMaxTokens,
	})

	apiKey, err := base.RequireAPIKey(ProviderName, cfg.APIKeyEnv)
	if err != nil {
		return nil, err
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return newClient(cfg, opts...), nil
}

func newClient(cfg *base.Config, opts ...option.RequestOption) *Client {
	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		config: cfg,
	}
}

// SendMessageWithHistory sends messages with full conversation history.
func (c *Client) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	return openaicompat.SendChat(ctx, c.client, ProviderName, c.config.Model, c.config.MaxTokens, messages)
}

// GetModel returns the configured model name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}
