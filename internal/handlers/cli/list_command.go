package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/AntonioJCosta/dalia/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured directory aliases in a table.",
		Long:  `Parses the configuration file and displays every alias with the directory it changes into.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, aliasService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	aliasService ports.AliasService,
) error {
	aliases, err := aliasService.GenerateAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found in "+aliasService.ConfigPath()+"."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Configured Aliases (%d):", len(aliases))))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s", aliasService.ConfigPath())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Directory"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{ui.AliasNameColor(a.Name), ui.AliasPathColor(a.Path)})
	}
	table.Render()
	return nil
}
