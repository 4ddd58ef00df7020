package schema

// AISettings contains configuration for the completion providers.
type AISettings struct {
	DefaultProvider string                       `yaml:"default_provider,omitempty" json:"default_provider,omitempty" mapstructure:"default_provider"`
	Providers       map[string]*AIProviderConfig `yaml:"providers,omitempty" json:"providers,omitempty" mapstructure:"providers"`                   // Per-provider configurations
	TimeoutSeconds  int                          `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty" mapstructure:"timeout_seconds"` // Per-request timeout (0 = provider default)
}

// AIProviderConfig contains configuration for a specific AI provider.
type AIProviderConfig struct {
	Model      string `yaml:"model,omitempty" json:"model,omitempty" mapstructure:"model"`
	ApiKeyEnv  string `yaml:"api_key_env,omitempty" json:"api_key_env,omitempty" mapstructure:"api_key_env"`
	MaxTokens  int    `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty" mapstructure:"max_tokens"`
	BaseURL    string `yaml:"base_url,omitempty" json:"base_url,omitempty" mapstructure:"base_url"`          // For Ollama, LiteLLM, Azure or custom endpoints
	APIVersion string `yaml:"api_version,omitempty" json:"api_version,omitempty" mapstructure:"api_version"` // Azure OpenAI only
	Region     string `yaml:"region,omitempty" json:"region,omitempty" mapstructure:"region"`                // Bedrock only
}

// Provider returns the configuration for the named provider, or nil.
func (s *AISettings) Provider(name string) *AIProviderConfig {
	if s == nil || s.Providers == nil {
		return nil
	}
	return s.Providers[name]
}
