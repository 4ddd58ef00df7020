package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/fngen/errors"
	cfg "github.com/cloudposse/fngen/pkg/config"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/schema"
)

var (
	// fngenConfig is loaded once per invocation in PersistentPreRunE.
	fngenConfig *schema.Configuration
	logCloser   io.Closer
)

// RootCmd generates a function when called with a description.
var RootCmd = &cobra.Command{
	Use:   "fngen [description...]",
	Short: "Generate a documented, tested function with a language model",
	Long: `fngen asks a language model for a function in three steps: a working
implementation, then documentation, then tests. Each step sees a cleaned-up
history of the previous ones. The final code is saved to a file named after
the description.`,
	Example: `  fngen calculates the factorial of a number
  fngen --language go --provider anthropic "parses an ISO 8601 duration"
  fngen --stdout --no-save "reverses a linked list" > reverse.py`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")
		cmd.SilenceUsage = !isHelpRequested
		cmd.SilenceErrors = !isHelpRequested

		return initConfig(cmd)
	},
	RunE: runGenerate,
}

// Execute runs the root command with ctx, which is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Cleanup flushes error reporting and closes the log file.
func Cleanup() {
	errUtils.CloseSentry()
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// ErrorFormatterConfig returns the formatter settings from the loaded configuration.
func ErrorFormatterConfig() errUtils.FormatterConfig {
	config := errUtils.DefaultFormatterConfig()
	if fngenConfig == nil {
		return config
	}

	config.Verbose = fngenConfig.Errors.Format.Verbose || log.Default().GetLevelString() == "trace"
	if fngenConfig.Errors.Format.Color != "" {
		config.Color = fngenConfig.Errors.Format.Color
	}
	return config
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to an fngen.yaml file or a directory containing one")
	RootCmd.PersistentFlags().String(cfg.FlagLogsLevel, cfg.DefaultLogLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	RootCmd.PersistentFlags().String(cfg.FlagLogsFile, cfg.DefaultLogFile, "The file to write logs to, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	RootCmd.PersistentFlags().String(cfg.FlagProvider, "", "Completion provider (see 'fngen providers'); defaults to settings.ai.default_provider")

	addGenerateFlags(RootCmd)
}

func initConfig(cmd *cobra.Command) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	config, err := cfg.LoadConfig(cfg.LoadOptions{ConfigPath: configPath, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	fngenConfig = config

	closer, err := log.Setup(config.Logs)
	if err != nil {
		return errUtils.Build(err).
			WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
			WithContext("logs_level", config.Logs.Level).
			WithContext("logs_file", config.Logs.File).
			Err()
	}
	logCloser = closer

	if err := errUtils.InitializeSentry(&config.Errors.Sentry); err != nil {
		log.Warn("Error reporting disabled", "error", err)
	}

	log.Debug("Configuration loaded", "file", config.CliConfigPath, "provider", config.Settings.AI.DefaultProvider,
		"language", config.Settings.Generator.Language)
	return nil
}
