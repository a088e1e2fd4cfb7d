package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glaze/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glaze",
		Short:         "Glaze previews themed terminal components and manages theme packs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newTokensCmd(flags, log))
	cmd.AddCommand(newThemesCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
