// Package litellm talks to a LiteLLM proxy, which fronts many model vendors
// behind one OpenAI-compatible endpoint. Model names use LiteLLM's
// "<vendor>/<model>" form, e.g. "openai/gpt-4o-mini".
package litellm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	// ProviderName is the name of this provider for configuration lookup.
	ProviderName = "litellm"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 1024
	// DefaultModel is the default model routed through the proxy.
	DefaultModel = "openai/gpt-4o-mini"
	// DefaultBaseURL is the default LiteLLM proxy endpoint.
	DefaultBaseURL = "http://localhost:4000"
	// DefaultAPIKeyEnv is the environment variable holding the proxy key (optional).
	DefaultAPIKeyEnv = "LITELLM_API_KEY"
)

// Client sends conversations to a LiteLLM proxy.
type Client struct {
	client *openai.Client
	config *base.Config
}

// NewClient creates a new LiteLLM client from fngen configuration.
func NewClient(config *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(config, ProviderName, base.ProviderDefaults{
		Model:     DefaultModel,
		APIKeyEnv: DefaultAPIKeyEnv,
		MaxTokens: DefaultMaxTokens,
		BaseURL:   DefaultBaseURL,
	})

	clientConfig := openai.DefaultConfig(base.GetAPIKey(cfg.APIKeyEnv))
	clientConfig.BaseURL = cfg.BaseURL

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// SendMessageWithHistory sends messages with full conversation history.
func (c *Client) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:     c.config.Model,
		Messages:  convertMessages(messages),
		MaxTokens: c.config.MaxTokens,
	}

	response, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", errUtils.Build(errUtils.ErrAISendMessage).
			WithCause(err).
			WithContext("provider", ProviderName).
			WithContext("model", c.config.Model).
			WithContext("messages_count", len(messages)).
			Err()
	}

	if len(response.Choices) == 0 {
		return "", errUtils.ErrAINoResponseChoices
	}

	return response.Choices[0].Message.Content, nil
}

func convertMessages(messages []types.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		switch msg.Role {
		case types.RoleSystem:
			role = openai.ChatMessageRoleSystem
		case types.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		result = append(result, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	return result
}

// GetModel returns the configured model name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}

// GetBaseURL returns the configured proxy URL.
func (c *Client) GetBaseURL() string {
	return c.config.BaseURL
}
