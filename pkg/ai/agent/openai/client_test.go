package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/agent/base"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnv, "test-key")

	client, err := NewClient(&schema.Configuration{})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", client.GetModel())
	assert.Equal(t, 1024, client.GetMaxTokens())
}

func TestNewClient_ProviderOverrides(t *testing.T) {
	t.Setenv("CUSTOM_OPENAI_KEY", "test-key")

	client, err := NewClient(&schema.Configuration{
		Settings: schema.Settings{
			AI: schema.AISettings{
				Providers: map[string]*schema.AIProviderConfig{
					"openai": {Model: "gpt-4.1", ApiKeyEnv: "CUSTOM_OPENAI_KEY", MaxTokens: 2048},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1", client.GetModel())
	assert.Equal(t, 2048, client.GetMaxTokens())
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnv, "")

	client, err := NewClient(&schema.Configuration{})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, errUtils.ErrAIAPIKeyNotFound)
}

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestSendMessageWithHistory(t *testing.T) {
	var received chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "` + "```python\\ndef f():\\n    pass\\n```" + `"}}]
		}`))
	}))
	defer server.Close()

	client := newClient(&base.Config{Model: "gpt-4o-mini", MaxTokens: 1024},
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL+"/"),
		option.WithMaxRetries(0),
	)

	response, err := client.SendMessageWithHistory(context.Background(), []types.Message{
		types.NewSystemMessage("You are an expert Python programmer."),
		types.NewUserMessage("Write a Python function that does nothing."),
	})
	require.NoError(t, err)

	assert.Equal(t, "```python\ndef f():\n    pass\n```", response)
	assert.Equal(t, "gpt-4o-mini", received.Model)
	assert.Equal(t, 1024, received.MaxTokens)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "user", received.Messages[1].Role)
	assert.Equal(t, "Write a Python function that does nothing.", received.Messages[1].Content)
}

func TestSendMessageWithHistory_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad request", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client := newClient(&base.Config{Model: "gpt-4o-mini", MaxTokens: 1024},
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL+"/"),
		option.WithMaxRetries(0),
	)

	_, err := client.SendMessageWithHistory(context.Background(), []types.Message{types.NewUserMessage("hi")})
	assert.ErrorIs(t, err, errUtils.ErrAISendMessage)
}

func TestSendMessageWithHistory_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "created": 1, "model": "gpt-4o-mini", "choices": []}`))
	}))
	defer server.Close()

	client := newClient(&base.Config{Model: "gpt-4o-mini", MaxTokens: 1024},
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL+"/"),
		option.WithMaxRetries(0),
	)

	_, err := client.SendMessageWithHistory(context.Background(), []types.Message{types.NewUserMessage("hi")})
	assert.ErrorIs(t, err, errUtils.ErrAINoResponseChoices)
}
