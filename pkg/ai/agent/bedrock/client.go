package bedrock

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/types"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/schema"
)

const (
	// ProviderName is the name of this provider for configuration lookup.
	ProviderName = "bedrock"
	// DefaultMaxTokens is the default maximum number of tokens in AI responses.
	DefaultMaxTokens = 4096
	// DefaultModel is the default Bedrock model.
	DefaultModel = "anthropic.claude-3-5-sonnet-20241022-v2:0"
	// DefaultRegion is the default AWS region for Bedrock.
	DefaultRegion = "us-east-1"

	anthropicVersion = "bedrock-2023-05-31"
)

// Client sends conversations to Anthropic models hosted on AWS Bedrock.
// Credentials come from the standard AWS credential chain.
type Client struct {
	client *bedrockruntime.Client
	config *base.Config
}

// NewClient creates a new AWS Bedrock client from fngen configuration.
func NewClient(ctx context.Context, fngenConfig *schema.Configuration) (*Client, error) {
	cfg := base.ExtractConfig(fngenConfig, ProviderName, base.ProviderDefaults{
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		Region:    DefaultRegion,
	})

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrAIClientCreate).
			WithCause(err).
			WithHint("Check your AWS credentials (AWS_PROFILE, AWS_ACCESS_KEY_ID) and region").
			WithContext("provider", ProviderName).
			WithContext("region", cfg.Region).
			Err()
	}

	client := &Client{
		client: bedrockruntime.NewFromConfig(awsCfg),
		config: cfg,
	}
	log.Debug("Created Bedrock client", "model", client.GetModel(), "region", client.GetRegion())

	return client, nil
}

type requestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type requestBody struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []requestMessage `json:"messages"`
}

type responseBody struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// SendMessageWithHistory sends messages with full conversation history.
func (c *Client) SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error) {
	body, err := buildRequestBody(messages, c.config.MaxTokens)
	if err != nil {
		return "", err
	}

	response, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.config.Model),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", errUtils.Build(errUtils.ErrAISendMessage).
			WithCause(err).
			WithContext("provider", ProviderName).
			WithContext("model", c.config.Model).
			WithContext("region", c.config.Region).
			Err()
	}

	return parseResponseBody(response.Body)
}

func buildRequestBody(messages []types.Message, maxTokens int) ([]byte, error) {
	system, turns := base.SplitSystemMessages(messages)

	request := requestBody{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		System:           system,
		Messages:         make([]requestMessage, 0, len(turns)),
	}
	for _, msg := range turns {
		request.Messages = append(request.Messages, requestMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}

	return json.Marshal(request)
}

func parseResponseBody(body []byte) (string, error) {
	var response responseBody
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errUtils.Build(errUtils.ErrAINoResponseContent).
			WithCause(err).
			WithContext("provider", ProviderName).
			Err()
	}

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

// GetModel returns the configured model name.
func (c *Client) GetModel() string {
	return c.config.Model
}

// GetMaxTokens returns the configured max tokens.
func (c *Client) GetMaxTokens() int {
	return c.config.MaxTokens
}

// GetRegion returns the configured AWS region.
func (c *Client) GetRegion() string {
	return c.config.Region
}
