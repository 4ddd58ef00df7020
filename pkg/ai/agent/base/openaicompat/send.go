package openaicompat

import (
	"context"

	"github.com/openai/openai-go"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/types"
)

// SendChat runs one chat completion against an OpenAI-compatible endpoint.
func SendChat(
	ctx context.Context,
	client *openai.Client,
	provider string,
	model string,
	maxTokens int,
	messages []types.Message,
) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages:  ConvertMessagesToOpenAIFormat(messages),
		Model:     model,
		MaxTokens: openai.Int(int64(maxTokens)),
	}

	response, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", errUtils.Build(errUtils.ErrAISendMessage).
			WithCause(err).
			WithContext("provider", provider).
			WithContext("model", model).
			WithContext("messages_count", len(messages)).
			Err()
	}

	return ExtractContent(response)
}
