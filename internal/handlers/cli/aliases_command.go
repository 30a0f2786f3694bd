package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dalia/internal/adapters/aliasrendering"
	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/spf13/cobra"
)

const aliasesLong = `Aliases generates shell aliases for each directory listed in DALIA_CONFIG_PATH/config.
The aliases are only for changing directories to the specified locations. No other types
of aliases are supported.

Each alias printed by this command is of the form ` + "`alias path='cd /some/path'`" + `.

The simplest way to generate an alias to a directory is to provide its absolute path on
disk. The alias is named after the lowercased last segment of the path. The name can be
customized by prepending the path with a name surrounded by square brackets (i.e. ` + "`[` and `]`" + `).
The casing of a custom name doesn't change.

A line starting with an asterisk surrounded by square brackets (i.e. ` + "`[*]`" + `) expands a
single directory into multiple aliases: one lowercase alias for each immediate child of
the directory that is itself a directory. Files are ignored.

Blank lines and surrounding whitespace are ignored. A leading ~ is kept in the alias and
expanded by your shell.`

const aliasesExample = `  Simple path
    /some/path => alias path='cd /some/path'

  Custom name
    [my-path]/some/path => alias my-path='cd /some/path'
    [MyPath]/some/path  => alias MyPath='cd /some/path'

  Directory expansion, when /some/path has contents one/, two/, file.txt and three/
    [*]/some/path =>
        alias one='cd /some/path/one'
        alias three='cd /some/path/three'
        alias two='cd /some/path/two'`

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "aliases",
		Short:   "Print shell aliases for each configured directory.",
		Long:    aliasesLong,
		Example: aliasesExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesCmd(cmd, args, aliasService)
		},
	}

	cmd.Flags().StringP("format", "f", aliasrendering.FormatShell, "Output format: shell, yaml or toml.")

	return cmd
}

// runAliasesCmd contains the core logic for the 'aliases' command.
func runAliasesCmd(
	cmd *cobra.Command,
	_ []string,
	aliasService ports.AliasService,
) error {
	format, _ := cmd.Flags().GetString("format")

	renderer, err := aliasrendering.NewRenderer(format)
	if err != nil {
		return err
	}

	aliases, err := aliasService.GenerateAliases()
	if err != nil {
		return err
	}

	if err := renderer.Render(cmd.OutOrStdout(), aliases); err != nil {
		return fmt.Errorf("could not print aliases: %w", err)
	}
	return nil
}
