package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	// ProviderName is the name of this provider for configuration lookup.
	ProviderName = "gemini"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 8192
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"
	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
)

// Client sends conversations to the Google Gemini API.
type Client struct {
	client *genai.Client
	config *base.Config
}

// NewClient creates a new Gemini client from fngen configuration.
func NewClient(ctx context.Context, config *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(config, ProviderName, base.ProviderDefaults{
		Model:     DefaultModel,
		APIKeyEnv: DefaultAPIKeyEnv,
		MaxTokens: DefaultMaxTokens,
	})

	apiKey, err := base.RequireAPIKey(ProviderName, cfg.APIKeyEnv)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrAIClientCreate).
			WithCause(err).
			WithContext("provider", ProviderName).
			Err()
	}

	return &Client{
		client: client,
		config: cfg,
	}, nil
}

// SendMessageWithHistory sends messages with full conversation history.
// System messages become the system instruction; assistant turns use the "model" role.
func (c *Client) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	system, turns := base.SplitSystemMessages(messages)

	generateConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.config.MaxTokens),
	}
	if system != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	response, err := c.client.Models.GenerateContent(ctx, c.config.Model, convertMessagesToGeminiFormat(turns), generateConfig)
	if err != nil {
		return "", errUtils.Build(errUtils.ErrAISendMessage).
			WithCause(err).
			WithContext("provider", ProviderName).
			WithContext("model", c.config.Model).
			WithContext("messages_count", len(messages)).
			Err()
	}

	return extractText(response)
}

func convertMessagesToGeminiFormat(messages []types.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == types.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return contents
}

// extractText concatenates the text parts of the first candidate.
func extractText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", errUtils.ErrAINoResponseCandidates
	}

	candidate := response.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errUtils.ErrAINoResponseContent
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	if text.Len() == 0 {
		return "", errUtils.ErrAINoResponseContent
	}

	return text.String(), nil
}

// GetModel returns the configured model name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}
