package base

import (
	"fmt"
	"os"
	"strings"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/schema"
)

// Config holds the resolved settings shared by every provider.
type Config struct {
	Model      string
	APIKeyEnv  string
	MaxTokens  int
	BaseURL    string
	APIVersion string
	Region     string
}

// ProviderDefaults are the values a provider uses when fngen.yaml leaves a field unset.
type ProviderDefaults struct {
	Model      string
	APIKeyEnv  string
	MaxTokens  int
	BaseURL    string
	APIVersion string
	Region     string
}

// ExtractConfig merges settings.ai.providers.<providerName> over the provider defaults.
func ExtractConfig(config *schema.Configuration, providerName string, defaults ProviderDefaults) *Config {
	result := &Config{
		Model:      defaults.Model,
		APIKeyEnv:  defaults.APIKeyEnv,
		MaxTokens:  defaults.MaxTokens,
		BaseURL:    defaults.BaseURL,
		APIVersion: defaults.APIVersion,
		Region:     defaults.Region,
	}

	if config == nil {
		return result
	}

	providerConfig := config.Settings.AI.Provider(providerName)
	if providerConfig == nil {
		return result
	}

	if providerConfig.Model != "" {
		result.Model = providerConfig.Model
	}
	if providerConfig.ApiKeyEnv != "" {
		result.APIKeyEnv = providerConfig.ApiKeyEnv
	}
	if providerConfig.MaxTokens > 0 {
		result.MaxTokens = providerConfig.MaxTokens
	}
	if providerConfig.BaseURL != "" {
		result.BaseURL = providerConfig.BaseURL
	}
	if providerConfig.APIVersion != "" {
		result.APIVersion = providerConfig.APIVersion
	}
	if providerConfig.Region != "" {
		result.Region = providerConfig.Region
	}

	return result
}

// GetAPIKey reads the API key from the named environment variable.
func GetAPIKey(envVar string) string {
	if envVar == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(envVar))
}

// RequireAPIKey is GetAPIKey for providers that cannot run without a key.
func RequireAPIKey(providerName, envVar string) (string, error) {
	apiKey := GetAPIKey(envVar)
	if apiKey == "" {
		return "", errUtils.Build(fmt.Errorf("%w: %s", errUtils.ErrAIAPIKeyNotFound, envVar)).
			WithHintf("Export %s or set settings.ai.providers.%s.api_key_env in fngen.yaml", envVar, providerName).
			WithContext("provider", providerName).
			WithContext("env", envVar).
			Err()
	}
	return apiKey, nil
}
