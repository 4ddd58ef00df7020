package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/fngen/errors"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/schema"
)

var configExtensions = []string{".yaml", ".yml"}

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	FlagLogsLevel: "logs.level",
	FlagLogsFile:  "logs.file",
	FlagLanguage:  "settings.generator.language",
	FlagOutputDir: "settings.generator.output_dir",
	FlagVerbose:   "settings.generator.verbose",
	FlagProvider:  "settings.ai.default_provider",
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigPath is an explicit config file or directory (--config).
	ConfigPath string
	// Flags, when set, override file and environment values for the keys in flagKeys.
	Flags *pflag.FlagSet
}

// LoadConfig builds the configuration from the following sources, lowest priority first:
// built-in defaults
// $XDG_CONFIG_HOME/fngen/fngen.yaml
// fngen.yaml in the current directory
// FNGEN_CLI_CONFIG_PATH, then --config
// FNGEN_* environment variables
// command-line flags.
func LoadConfig(opts LoadOptions) (*schema.Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readXDGConfig(v); err != nil {
		return nil, err
	}
	if err := readWorkDirConfig(v); err != nil {
		return nil, err
	}
	if err := readExplicitConfig(v, os.Getenv(ConfigPathEnvVar)); err != nil {
		return nil, err
	}
	if err := readExplicitConfig(v, opts.ConfigPath); err != nil {
		return nil, err
	}

	if err := bindFlags(v, opts.Flags); err != nil {
		return nil, err
	}

	var config schema.Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, errUtils.Build(errUtils.ErrParseConfig).
			WithCause(err).
			WithContext("file", v.ConfigFileUsed()).
			Err()
	}

	config.CliConfigPath = v.ConfigFileUsed()
	if config.CliConfigPath == "" {
		log.Debug("'fngen.yaml' was not found, using the default configuration", "paths", "XDG config dir, current dir, ENV vars")
	} else if abs, err := filepath.Abs(config.CliConfigPath); err == nil {
		config.CliConfigPath = abs
	}

	return &config, nil
}

// setDefaultConfiguration sets the defaults that reproduce the stock behavior:
// OpenAI, Python, files saved in the current directory.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", DefaultLogFile)
	v.SetDefault("logs.level", DefaultLogLevel)
	v.SetDefault("settings.ai.default_provider", DefaultProvider)
	v.SetDefault("settings.ai.timeout_seconds", 0)
	v.SetDefault("settings.generator.language", DefaultLanguage)
	v.SetDefault("settings.generator.output_dir", DefaultOutputDir)
	v.SetDefault("settings.generator.filename_suffix", DefaultSuffix)
	v.SetDefault("settings.generator.max_name_length", DefaultMaxNameLength)
	v.SetDefault("settings.generator.verbose", false)
	v.SetDefault("errors.format.color", "auto")
	v.SetDefault("errors.format.verbose", false)
	v.SetDefault("errors.sentry.enabled", false)
}

// readXDGConfig loads config from the user's XDG config dir.
func readXDGConfig(v *viper.Viper) error {
	return mergeOptionalConfig(v, filepath.Join(xdg.ConfigHome, AppName))
}

// readWorkDirConfig loads config from the current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).WithCause(err).Err()
	}
	return mergeOptionalConfig(v, wd)
}

// readExplicitConfig loads a config path given by the user. Unlike the search
// locations, a missing explicit file is an error.
func readExplicitConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithHintf("Check that %s exists or remove --config", path).
			WithContext("path", path).
			Err()
	}

	file := path
	if info.IsDir() {
		if file = findConfigFile(path); file == "" {
			return errUtils.Build(errUtils.ErrReadConfig).
				WithHintf("Create %s/%s.yaml", path, CliConfigFileName).
				WithContext("path", path).
				Err()
		}
	}
	return mergeConfigFile(v, file)
}

// mergeOptionalConfig merges fngen.yaml from dir when it exists.
func mergeOptionalConfig(v *viper.Viper, dir string) error {
	file := findConfigFile(dir)
	if file == "" {
		return nil
	}
	return mergeConfigFile(v, file)
}

// findConfigFile returns the first fngen config file in dir, or "".
func findConfigFile(dir string) string {
	for _, ext := range configExtensions {
		candidate := filepath.Join(dir, CliConfigFileName+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// mergeConfigFile merges a single config file over the values loaded so far.
func mergeConfigFile(v *viper.Viper, file string) error {
	v.SetConfigFile(file)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Build(errUtils.ErrReadConfig).
			WithCause(err).
			WithContext("path", file).
			Err()
	}
	log.Debug("Loaded config", "file", file)
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errUtils.Build(errUtils.ErrParseConfig).
				WithCause(err).
				WithContext("flag", name).
				Err()
		}
	}
	return nil
}

// ApplyProviderOverrides sets model and max tokens for provider, creating the
// provider entry when needed. Zero values leave the configuration untouched.
func ApplyProviderOverrides(config *schema.Configuration, provider, model string, maxTokens int) {
	if provider == "" || (model == "" && maxTokens <= 0) {
		return
	}

	if config.Settings.AI.Providers == nil {
		config.Settings.AI.Providers = map[string]*schema.AIProviderConfig{}
	}
	providerConfig := config.Settings.AI.Providers[provider]
	if providerConfig == nil {
		providerConfig = &schema.AIProviderConfig{}
		config.Settings.AI.Providers[provider] = providerConfig
	}

	if model != "" {
		providerConfig.Model = model
	}
	if maxTokens > 0 {
		providerConfig.MaxTokens = maxTokens
	}
}
