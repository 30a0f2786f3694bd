package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dalia/internal/core/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const rootLong = `dalia generates shell aliases for changing into the directories listed in
its configuration file.

Environment:
    DALIA_CONFIG_PATH
        The directory where dalia looks for alias configurations; $HOME/.dalia by default.
        Put the alias configurations in a file named ` + "`config`" + ` there.

Load the aliases in your shell configuration file (e.g., ~/.bashrc, ~/.zshrc):
    eval "$(dalia aliases)"`

// NewRootCommand creates the dalia root command. log has its level raised to
// debug when --verbose is given.
func NewRootCommand(version string, aliasService ports.AliasService, log *logrus.Logger) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "dalia",
		Short:         "dalia generates shell aliases for your favorite directories.",
		Long:          rootLong,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && log != nil {
				log.SetLevel(logrus.DebugLevel)
			}
			if aliasService == nil && (cmd.Name() == "aliases" || cmd.Name() == "list") {
				return fmt.Errorf("alias service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}
	rootCmd.SetVersionTemplate("dalia version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log parsing and directory expansion details to stderr.")

	rootCmd.AddCommand(NewAliasesCommand(aliasService))
	rootCmd.AddCommand(NewListCommand(aliasService))
	rootCmd.AddCommand(NewVersionCommand(version))

	return rootCmd
}
