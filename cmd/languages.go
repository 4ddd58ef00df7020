package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/fngen/pkg/generator"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported target languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configured := fngenConfig.Settings.Generator.Language

		for _, name := range generator.LanguageNames() {
			lang, err := generator.LookupLanguage(name)
			if err != nil {
				return err
			}

			marker := " "
			if name == configured {
				marker = "*"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-11s %-4s %s\n", marker, lang.Name, lang.Extension, lang.TestFramework); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(languagesCmd)
}
