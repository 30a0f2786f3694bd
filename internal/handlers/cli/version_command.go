package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the 'version' subcommand.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version of dalia.",
		Long:  `Version prints the current semantic version of the dalia executable.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dalia version %s\n", version)
			return nil
		},
	}
}
