package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/fngen/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fngen version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "fngen %s\n", version.String())
		return err
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
