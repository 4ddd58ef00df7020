package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai"
	cfg "github.com/cloudposse/fngen/pkg/config"
	"github.com/cloudposse/fngen/pkg/generator"
	log "github.com/cloudposse/fngen/pkg/logger"
	"github.com/cloudposse/fngen/pkg/output"
	"github.com/cloudposse/fngen/pkg/schema"
	"github.com/cloudposse/fngen/pkg/ui"
)

const (
	flagModel     = "model"
	flagMaxTokens = "max-tokens"
	flagNoSave    = "no-save"
	flagStdout    = "stdout"
)

// isInteractive reports whether the user can be prompted. Replaced in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// generateOptions are the flags that only affect a single run.
type generateOptions struct {
	model     string
	maxTokens int
	noSave    bool
	stdout    bool
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagModel, "", "Model to use; overrides the provider's configured model")
	cmd.Flags().Int(flagMaxTokens, 0, "Maximum tokens per response; overrides the provider's configured limit")
	cmd.Flags().String(cfg.FlagLanguage, "", "Target language: "+strings.Join(generator.LanguageNames(), ", "))
	cmd.Flags().String(cfg.FlagOutputDir, "", "Directory to save the generated file in")
	cmd.Flags().BoolP(cfg.FlagVerbose, "v", false, "Show full model responses and the final conversation")
	cmd.Flags().Bool(flagNoSave, false, "Do not save the generated code to a file")
	cmd.Flags().Bool(flagStdout, false, "Print the final code to stdout; progress goes to stderr")
}

func parseGenerateOptions(cmd *cobra.Command) (generateOptions, error) {
	var opts generateOptions
	var err error

	if opts.model, err = cmd.Flags().GetString(flagModel); err != nil {
		return opts, err
	}
	if opts.maxTokens, err = cmd.Flags().GetInt(flagMaxTokens); err != nil {
		return opts, err
	}
	if opts.noSave, err = cmd.Flags().GetBool(flagNoSave); err != nil {
		return opts, err
	}
	if opts.stdout, err = cmd.Flags().GetBool(flagStdout); err != nil {
		return opts, err
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := parseGenerateOptions(cmd)
	if err != nil {
		return err
	}

	settings := &fngenConfig.Settings.Generator
	lang, err := generator.LookupLanguage(settings.Language)
	if err != nil {
		return err
	}

	progress := cmd.OutOrStdout()
	if opts.stdout {
		progress = cmd.ErrOrStderr()
	}
	tty := isTerminal(progress)
	newReporter := func(model string) *ui.Reporter {
		return ui.NewReporter(progress, ui.ReporterOptions{
			Verbose:  settings.Verbose,
			Color:    useColor(fngenConfig.Errors.Format.Color, tty),
			TTY:      tty,
			Language: lang.Tag,
			Model:    model,
		})
	}

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		if !isInteractive() {
			return errUtils.Build(errUtils.ErrEmptyDescription).
				WithHint("Pass a description, e.g. fngen calculates the factorial of a number").
				Err()
		}

		newReporter("").Intro()
		description, settings.Verbose, err = promptForDescription(settings.Verbose)
		if err != nil {
			return err
		}
	}

	provider := fngenConfig.Settings.AI.DefaultProvider
	cfg.ApplyProviderOverrides(fngenConfig, provider, opts.model, opts.maxTokens)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := ai.NewClient(ctx, fngenConfig, provider)
	if err != nil {
		return err
	}

	reporter := newReporter(client.GetModel())
	reporter.Start(description)

	driver := generator.NewDriver(client, lang,
		generator.WithObserver(reporter),
		generator.WithSystemPrompt(settings.SystemPrompt),
	)

	result, err := driver.Generate(ctx, description)
	if err != nil {
		reporter.Abort()
		if result != nil {
			log.Debug("Generation stopped", "completed", result.Completed)
		}
		if ctx.Err() != nil {
			return errUtils.Build(errUtils.ErrInterrupted).
				WithCause(err).
				WithExitCode(errUtils.ExitCodeInterrupted).
				Err()
		}
		return err
	}

	saved := false
	if !opts.noSave {
		saved = save(reporter, settings, description, lang, result.Final())
	}
	reporter.Success(saved)

	if opts.stdout {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Final())
	}
	return nil
}

// save writes the final code. A failure is reported as a warning and does not fail the run.
func save(reporter *ui.Reporter, settings *schema.GeneratorSettings, description string, lang generator.Language, code string) bool {
	reporter.Saving()

	path, err := output.NewWriter(nil, settings).Save(description, lang.Extension, code)
	if err != nil {
		log.Warn("Could not save generated code", "error", err)
		reporter.SaveFailed(err)
		return false
	}

	reporter.Saved(path)
	return true
}

func promptForDescription(verbose bool) (string, bool, error) {
	var description string
	showFull := verbose

	fields := []huh.Field{
		huh.NewInput().
			Title("What kind of function would you like to create?").
			Description("Example: 'calculates the factorial of a number'\nExample: 'sorts a list of dictionaries by a specific key'").
			Placeholder("calculates the factorial of a number").
			Value(&description).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errUtils.ErrEmptyDescription
				}
				return nil
			}),
	}
	if !verbose {
		fields = append(fields, huh.NewConfirm().
			Title("Show full LLM responses?").
			Affirmative("Yes").
			Negative("No").
			Value(&showFull))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, errUtils.Build(errUtils.ErrUserAborted).WithExitCode(errUtils.ExitCodeInterrupted).Err()
		}
		return "", false, err
	}

	return strings.TrimSpace(description), showFull, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func useColor(mode string, tty bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return tty
	}
}
