package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/fngen/pkg/ai/registry"

	// Providers register themselves with the registry from init().
	_ "github.com/cloudposse/fngen/pkg/ai/agent/anthropic"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/azureopenai"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/bedrock"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/gemini"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/grok"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/litellm"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/ollama"
	_ "github.com/cloudposse/fngen/pkg/ai/agent/openai"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the available completion providers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		defaultProvider := fngenConfig.Settings.AI.DefaultProvider

		for _, name := range registry.List() {
			marker := " "
			suffix := ""
			if name == defaultProvider {
				marker = "*"
				suffix = " (default)"
			}
			line := fmt.Sprintf("%s %s%s", marker, name, suffix)
			if provider := fngenConfig.Settings.AI.Provider(name); provider != nil && provider.Model != "" {
				line += fmt.Sprintf("  model: %s", provider.Model)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
				return err
			}
		}

		if defaultProvider != "" && !registry.IsRegistered(defaultProvider) {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nWarning: default provider %q is not available\n", defaultProvider)
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(providersCmd)
}
