package grok

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
	ProviderName = "grok"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 4096
	// DefaultModel is the default Grok model.
	DefaultModel = "grok-3"
	// DefaultAPIKeyEnv is the environment variable holding the xAI API key.
	DefaultAPIKeyEnv = "XAI_API_KEY"
	// DefaultBaseURL is the xAI API endpoint.
	DefaultBaseURL = "https://api.x.ai/v1"
)

// Client sends conversations to the xAI Grok API.
// Grok is OpenAI-compatible, so we use the OpenAI SDK with a custom base URL.
type Client struct {
	client *openai.Client
	config *base.Config
}

// NewClient creates a new Grok client from fngen configuration.
func NewClient(config *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(config, ProviderName, base.ProviderDefaults{
		Model:     DefaultModel,
		APIKeyEnv: DefaultAPIKeyEnv,
		MaxTokens: DefaultMaxTokens,
		BaseURL:   DefaultBaseURL,
	})

	apiKey, err := base.RequireAPIKey(ProviderName, cfg.APIKeyEnv)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(cfg.BaseURL),
	)

	return &Client{
		client: &client,
		config: cfg,
	}, nil
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

// GetBaseURL returns the configured base URL.
func (c *Client) GetBaseURL() string {
	return c.config.BaseURL
}
