package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/schema"
)

func TestExtractConfig_DefaultConfiguration(t *testing.T) {
	config := ExtractConfig(&schema.Configuration{}, "test", ProviderDefaults{
		Model:     "test-model",
		APIKeyEnv: "TEST_API_KEY",
		MaxTokens: 4096,
	})

	assert.Equal(t, "test-model", config.Model)
	assert.Equal(t, "TEST_API_KEY", config.APIKeyEnv)
	assert.Equal(t, 4096, config.MaxTokens)
	assert.Empty(t, config.BaseURL)
}

func TestExtractConfig_NilConfiguration(t *testing.T) {
	config := ExtractConfig(nil, "test", ProviderDefaults{Model: "m", MaxTokens: 1})

	assert.Equal(t, &Config{Model: "m", MaxTokens: 1}, config)
}

func TestExtractConfig_ProviderSpecificOverrides(t *testing.T) {
	fngenConfig := &schema.Configuration{
		Settings: schema.Settings{
			AI: schema.AISettings{
				Providers: map[string]*schema.AIProviderConfig{
					"test": {
						Model:      "custom-model",
						ApiKeyEnv:  "CUSTOM_API_KEY",
						MaxTokens:  8192,
						BaseURL:    "https://custom.api.example.com",
						APIVersion: "2025-01-01",
						Region:     "eu-west-1",
					},
				},
			},
		},
	}

	config := ExtractConfig(fngenConfig, "test", ProviderDefaults{
		Model:     "default-model",
		APIKeyEnv: "DEFAULT_API_KEY",
		MaxTokens: 4096,
	})

	assert.Equal(t, &Config{
		Model:      "custom-model",
		APIKeyEnv:  "CUSTOM_API_KEY",
		MaxTokens:  8192,
		BaseURL:    "https://custom.api.example.com",
		APIVersion: "2025-01-01",
		Region:     "eu-west-1",
	}, config)
}

func TestExtractConfig_TableDriven(t *testing.T) {
	defaults := ProviderDefaults{
		Model:     "default-model",
		APIKeyEnv: "DEFAULT_API_KEY",
		MaxTokens: 4096,
		BaseURL:   "https://default.api.example.com",
	}

	tests := []struct {
		name      string
		providers map[string]*schema.AIProviderConfig
		expected  *Config
	}{
		{
			name:      "nil providers",
			providers: nil,
			expected:  &Config{Model: "default-model", APIKeyEnv: "DEFAULT_API_KEY", MaxTokens: 4096, BaseURL: "https://default.api.example.com"},
		},
		{
			name:      "other provider configured",
			providers: map[string]*schema.AIProviderConfig{"other": {Model: "other-model"}},
			expected:  &Config{Model: "default-model", APIKeyEnv: "DEFAULT_API_KEY", MaxTokens: 4096, BaseURL: "https://default.api.example.com"},
		},
		{
			name:      "nil provider entry",
			providers: map[string]*schema.AIProviderConfig{"test": nil},
			expected:  &Config{Model: "default-model", APIKeyEnv: "DEFAULT_API_KEY", MaxTokens: 4096, BaseURL: "https://default.api.example.com"},
		},
		{
			name:      "partial override",
			providers: map[string]*schema.AIProviderConfig{"test": {Model: "partial-model"}},
			expected:  &Config{Model: "partial-model", APIKeyEnv: "DEFAULT_API_KEY", MaxTokens: 4096, BaseURL: "https://default.api.example.com"},
		},
		{
			name:      "zero max tokens keeps default",
			providers: map[string]*schema.AIProviderConfig{"test": {MaxTokens: 0}},
			expected:  &Config{Model: "default-model", APIKeyEnv: "DEFAULT_API_KEY", MaxTokens: 4096, BaseURL: "https://default.api.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fngenConfig := &schema.Configuration{
				Settings: schema.Settings{AI: schema.AISettings{Providers: tt.providers}},
			}
			assert.Equal(t, tt.expected, ExtractConfig(fngenConfig, "test", defaults))
		})
	}
}

func TestGetAPIKey_FromEnvironment(t *testing.T) {
	t.Setenv("FNGEN_TEST_API_KEY", "  secret-key \n")
	assert.Equal(t, "secret-key", GetAPIKey("FNGEN_TEST_API_KEY"))
}

func TestGetAPIKey_NotSet(t *testing.T) {
	assert.Empty(t, GetAPIKey("FNGEN_TEST_KEY_THAT_IS_NOT_SET"))
	assert.Empty(t, GetAPIKey(""))
}

func TestRequireAPIKey(t *testing.T) {
	t.Setenv("FNGEN_TEST_REQUIRED_KEY", "value")

	key, err := RequireAPIKey("test", "FNGEN_TEST_REQUIRED_KEY")
	require.NoError(t, err)
	assert.Equal(t, "value", key)
}

func TestRequireAPIKey_Missing(t *testing.T) {
	_, err := RequireAPIKey("test", "FNGEN_TEST_MISSING_KEY")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrAIAPIKeyNotFound)
	assert.Contains(t, err.Error(), "FNGEN_TEST_MISSING_KEY")
}
