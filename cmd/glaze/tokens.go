package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glaze/internal/logger"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

var (
	tokenCategoryStyle = lipgloss.NewStyle().Bold(true)
	tokenNameStyle     = lipgloss.NewStyle().Width(14)
)

func newTokensCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the design tokens of a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolveTheme(themeName, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", theme.DisplayName(th), th.Appearance)
			printColorTokens(out, th.Colors)
			printIntTokens(out, "space", th.Space)
			printIntTokens(out, "radii", th.Radii)
			printStringTokens(out, "borders", th.Borders)
			printStringTokens(out, "shadows", th.Shadows)
			printTextTokens(out, th.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "Theme to inspect (preset or pack theme)")

	return cmd
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printColorTokens(out io.Writer, colors map[string]string) {
	if len(colors) == 0 {
		return
	}
	fmt.Fprintln(out, tokenCategoryStyle.Render("colors"))
	for _, name := range sortedKeys(colors) {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(colors[name])).Render("  ")
		fmt.Fprintf(out, "  %s %s %s\n", tokenNameStyle.Render(name), swatch, colors[name])
	}
	fmt.Fprintln(out)
}

func printIntTokens(out io.Writer, category string, tokens map[string]int) {
	if len(tokens) == 0 {
		return
	}
	fmt.Fprintln(out, tokenCategoryStyle.Render(category))
	for _, name := range sortedKeys(tokens) {
		fmt.Fprintf(out, "  %s %d\n", tokenNameStyle.Render(name), tokens[name])
	}
	fmt.Fprintln(out)
}

func printStringTokens(out io.Writer, category string, tokens map[string]string) {
	if len(tokens) == 0 {
		return
	}
	fmt.Fprintln(out, tokenCategoryStyle.Render(category))
	for _, name := range sortedKeys(tokens) {
		fmt.Fprintf(out, "  %s %s\n", tokenNameStyle.Render(name), tokens[name])
	}
	fmt.Fprintln(out)
}

func printTextTokens(out io.Writer, tokens map[string]theme.TextStyle) {
	if len(tokens) == 0 {
		return
	}
	fmt.Fprintln(out, tokenCategoryStyle.Render("text"))
	for _, name := range sortedKeys(tokens) {
		ts := tokens[name]
		var attrs []string
		if ts.Bold {
			attrs = append(attrs, "bold")
		}
		if ts.Italic {
			attrs = append(attrs, "italic")
		}
		if ts.Underline {
			attrs = append(attrs, "underline")
		}
		if ts.Faint {
			attrs = append(attrs, "faint")
		}
		if ts.Color != "" {
			attrs = append(attrs, ts.Color)
		}
		if len(attrs) == 0 {
			attrs = append(attrs, "plain")
		}
		fmt.Fprintf(out, "  %s %s\n", tokenNameStyle.Render(name), strings.Join(attrs, ", "))
	}
}
