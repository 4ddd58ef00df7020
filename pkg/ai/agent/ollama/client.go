package ollama

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
	ProviderName = "ollama"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 4096
	// DefaultModel is the default Ollama model.
	DefaultModel = "llama3.3:70b"
	// DefaultBaseURL is the default Ollama API endpoint.
	DefaultBaseURL = "http://localhost:11434/v1"
	// DefaultAPIKeyEnv is the environment variable for the API key (optional for local Ollama).
	DefaultAPIKeyEnv = "OLLAMA_API_KEY"

	// localAPIKey is sent when no key is configured; local Ollama ignores it.
	localAPIKey = "ollama"
)

// Client sends conversations to an Ollama server through its OpenAI-compatible API.
type Client struct {
	client *openai.Client
	config *base.Config
}

// NewClient creates a new Ollama client from fngen configuration.
func NewClient(config *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(config, ProviderName, base.ProviderDefaults{
		Model:     DefaultModel,
		APIKeyEnv: DefaultAPIKeyEnv,
		MaxTokens: DefaultMaxTokens,
		BaseURL:   DefaultBaseURL,
	})

	apiKey := base.GetAPIKey(cfg.APIKeyEnv)
	if apiKey == "" {
		apiKey = localAPIKey
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
