package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glaze/internal/logger"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
	"github.com/alexisbeaulieu97/glaze/internal/tui/preview"
)

func newPreviewCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var themeName string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the component gallery for a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return fmt.Errorf("interactive preview requires a terminal")
				}
				source := preview.ThemeSource(func() (map[string]*theme.Theme, error) {
					return loadPackThemes(log)
				})
				program := tea.NewProgram(preview.NewModel(source), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}

			th, err := resolveTheme(themeName, log)
			if err != nil {
				return err
			}

			if flags.verbose {
				log.WithFields(map[string]any{"theme": theme.DisplayName(th)}).Debug("rendering gallery")
			}

			fmt.Fprintln(cmd.OutOrStdout(), preview.Gallery(th))
			return nil
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "Theme to preview (preset or pack theme)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive gallery")

	return cmd
}
