package azureopenai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/agent/base/openaicompat"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	// ProviderName is the name of this provider for configuration lookup.
	ProviderName = "azureopenai"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 4096
	// DefaultModel is the default Azure OpenAI deployment name.
	DefaultModel = "gpt-4o"
	// DefaultAPIKeyEnv is the default environment variable for the Azure OpenAI API key.
	DefaultAPIKeyEnv = "AZURE_OPENAI_API_KEY"
	// DefaultAPIVersion is the default Azure OpenAI API version.
	DefaultAPIVersion = "2024-10-21"
)

// Client sends conversations to an Azure OpenAI deployment.
type Client struct {
	client *openai.Client
	config *base.Config
}

// NewClient creates a new Azure OpenAI client from fngen configuration.
// base_url is the resource endpoint, e.g. https://<resource>.openai.azure.com.
func NewClient(config *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(config, ProviderName, base.ProviderDefaults{
		Model:      DefaultModel,
		APIKeyEnv:  DefaultAPIKeyEnv,
		MaxTokens:  DefaultMaxTokens,
		APIVersion: DefaultAPIVersion,
	})

	if cfg.BaseURL == "" {
		return nil, errUtils.Build(errUtils.ErrAIBaseURLRequired).
			WithHint("Set settings.ai.providers.azureopenai.base_url to https://<resource>.openai.azure.com").
			WithContext("provider", ProviderName).
			Err()
	}

	apiKey, err := base.RequireAPIKey(ProviderName, cfg.APIKeyEnv)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(
		azure.WithEndpoint(cfg.BaseURL, cfg.APIVersion),
		azure.WithAPIKey(apiKey),
	)

	return &Client{
		client: &client,
		config: cfg,
	}, nil
}

// SendMessageWithHistory sends messages with full conversation history.
// The model name is the Azure deployment name.
func (c *Client) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	return openaicompat.SendChat(ctx, c.client, ProviderName, c.config.Model, c.config.MaxTokens, messages)
}

// GetModel returns the configured deployment name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}

// GetAPIVersion returns the configured API version.
func (c *Client) GetAPIVersion() string {
	return c.config.APIVersion
}
