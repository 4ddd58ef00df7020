package schema

// Configuration is the fully resolved fngen configuration: defaults, fngen.yaml,
// FNGEN_* environment variables and command-line flags, in increasing precedence.
type Configuration struct {
	BasePath string       `yaml:"base_path,omitempty" json:"base_path,omitempty" mapstructure:"base_path"`
	Logs     Logs         `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Settings Settings     `yaml:"settings,omitempty" json:"settings,omitempty" mapstructure:"settings"`
	Errors   ErrorsConfig `yaml:"errors,omitempty" json:"errors,omitempty" mapstructure:"errors"`

	// CliConfigPath is the config file that was actually loaded, empty when none was found.
	CliConfigPath string `yaml:"-" json:"cli_config_path,omitempty" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file,omitempty" json:"file,omitempty" mapstructure:"file"`
	Level string `yaml:"level,omitempty" json:"level,omitempty" mapstructure:"level"`
}

type Settings struct {
	AI        AISettings        `yaml:"ai,omitempty" json:"ai,omitempty" mapstructure:"ai"`
	Generator GeneratorSettings `yaml:"generator,omitempty" json:"generator,omitempty" mapstructure:"generator"`
}

// GeneratorSettings controls the implement/document/test run and the output file.
type GeneratorSettings struct {
	Language       string `yaml:"language,omitempty" json:"language,omitempty" mapstructure:"language"`
	OutputDir      string `yaml:"output_dir,omitempty" json:"output_dir,omitempty" mapstructure:"output_dir"`
	FilenameSuffix string `yaml:"filename_suffix,omitempty" json:"filename_suffix,omitempty" mapstructure:"filename_suffix"`
	MaxNameLength  int    `yaml:"max_name_length,omitempty" json:"max_name_length,omitempty" mapstructure:"max_name_length"`
	Verbose        bool   `yaml:"verbose,omitempty" json:"verbose,omitempty" mapstructure:"verbose"`
	SystemPrompt   string `yaml:"system_prompt,omitempty" json:"system_prompt,omitempty" mapstructure:"system_prompt"` // Overrides the built-in system prompt
}

type ErrorsConfig struct {
	Format ErrorFormat  `yaml:"format,omitempty" json:"format,omitempty" mapstructure:"format"`
	Sentry SentryConfig `yaml:"sentry,omitempty" json:"sentry,omitempty" mapstructure:"sentry"`
}

type ErrorFormat struct {
	Verbose bool   `yaml:"verbose,omitempty" json:"verbose,omitempty" mapstructure:"verbose"`
	Color   string `yaml:"color,omitempty" json:"color,omitempty" mapstructure:"color"` // auto, always, never
}

// SentryConfig contains optional error reporting configuration.
type SentryConfig struct {
	Enabled     bool              `yaml:"enabled,omitempty" json:"enabled,omitempty" mapstructure:"enabled"`
	DSN         string            `yaml:"dsn,omitempty" json:"dsn,omitempty" mapstructure:"dsn"`
	Environment string            `yaml:"environment,omitempty" json:"environment,omitempty" mapstructure:"environment"`
	Release     string            `yaml:"release,omitempty" json:"release,omitempty" mapstructure:"release"`
	SampleRate  float64           `yaml:"sample_rate,omitempty" json:"sample_rate,omitempty" mapstructure:"sample_rate"`
	Debug       bool              `yaml:"debug,omitempty" json:"debug,omitempty" mapstructure:"debug"`
	Tags        map[string]string `yaml:"tags,omitempty" json:"tags,omitempty" mapstructure:"tags"`
}
