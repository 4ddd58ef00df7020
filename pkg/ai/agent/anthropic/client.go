package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	// ProviderName is the name of this provider for configuration lookup.
	ProviderName = "anthropic"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 4096
	// DefaultModel is the default Anthropic model.
	DefaultModel = "claude-sonnet-4-20250514"
	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "ANTHROPIC_API_KEY"
)

// SimpleClient sends conversations to the Anthropic Messages API.
type SimpleClient struct {
	client *anthropic.Client
	config *base.Config
}

// NewSimpleClient creates a new Anthropic client from fngen configuration.
func NewSimpleClient(config *schema.Configuration) (*SimpleClient, error) {
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

	return newSimpleClient(cfg, opts...), nil
}

func newSimpleClient(cfg *base.Config, opts ...option.RequestOption) *SimpleClient {
	client := anthropic.NewClient(opts...)
	return &SimpleClient{
		client: &client,
		config: cfg,
	}
}

// SendMessageWithHistory sends messages with full conversation history.
// System messages are moved into the request's system field.
func (c *SimpleClient) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	system, turns := base.SplitSystemMessages(messages)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages:  convertMessagesToAnthropicFormat(turns),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	response, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", errUtils.Build(errUtils.ErrAISendMessage).
			WithCause(err).
			WithContext("provider", ProviderName).
			WithContext("model", c.config.Model).
			WithContext("messages_count", len(messages)).
			Err()
	}

	// Use indexing to avoid copying large structs.
	var text strings.Builder
	for i := range response.Content {
		if response.Content[i].Type == "text" {
			text.WriteString(response.Content[i].Text)
		}
	}

	if text.Len() == 0 {
		return "", errUtils.ErrAINoResponseContent
	}

	return text.String(), nil
}

func convertMessagesToAnthropicFormat(messages []types.Message) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == types.RoleAssistant {
			result = append(result, anthropic.NewAssistantMessage(block))
		} else {
			result = append(result, anthropic.NewUserMessage(block))
		}
	}
	return result
}

// GetModel returns the configured model name.
func (c *SimpleClient) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *SimpleClient) GetMaxTokens() int {
	return c.config.MaxTokens
}
