// Package openaicompat holds helpers shared by the providers built on the
// OpenAI Go SDK (OpenAI, Azure OpenAI, Grok, Ollama).
package openaicompat

import (
	"github.com/openai/openai-go"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/types"
)

// ConvertMessagesToOpenAIFormat converts conversation messages to OpenAI chat message params.
func ConvertMessagesToOpenAIFormat(messages []types.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case types.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case types.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}

	return result
}

// ExtractContent returns the text of the first choice.
func ExtractContent(response *openai.ChatCompletion) (string, error) {
	if response == nil || len(response.Choices) == 0 {
		return "", errUtils.ErrAINoResponseChoices
	}
	return response.Choices[0].Message.Content, nil
}
