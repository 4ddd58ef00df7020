package config

const (
	// CliConfigFileName is the config file name without extension.
	CliConfigFileName = "fngen"
	// AppName names the XDG config subdirectory.
	AppName = "fngen"
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "FNGEN"
	// ConfigPathEnvVar points at an explicit config directory or file.
	ConfigPathEnvVar = "FNGEN_CLI_CONFIG_PATH"

	DefaultProvider      = "openai"
	DefaultLanguage      = "python"
	DefaultOutputDir     = "."
	DefaultSuffix        = "_complete"
	DefaultMaxNameLength = 40
	DefaultLogLevel      = "Info"
	DefaultLogFile       = "/dev/stderr"
)

// Flag names bound to configuration keys.
const (
	FlagLogsLevel = "logs-level"
	FlagLogsFile  = "logs-file"
	FlagLanguage  = "language"
	FlagOutputDir = "output-dir"
	FlagVerbose   = "verbose"
	FlagProvider  = "provider"
)
