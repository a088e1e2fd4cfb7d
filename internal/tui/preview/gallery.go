package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glaze/internal/components"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
	"github.com/alexisbeaulieu97/glaze/internal/variants"
	"github.com/alexisbeaulieu97/glaze/internal/variants/presets"
)

var (
	boxSchemes = []string{"primary", "success", "danger", "neutral"}
	boxSizes   = []string{"small", "medium", "large"}
	badgeTones = []string{"info", "success", "warning", "danger"}
	textScale  = []string{"heading", "subheading", "body", "caption", "code"}
)

// Gallery renders the static component gallery for a theme. The interactive
// model and the plain `glaze preview` output share it.
func Gallery(th *theme.Theme) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("boxes"))
	b.WriteString("\n")
	b.WriteString(boxRows(th))

	b.WriteString(sectionStyle.Render("badges"))
	b.WriteString("\n")
	b.WriteString(badgeRow(th))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("text"))
	b.WriteString("\n")
	b.WriteString(textColumn(th))

	return b.String()
}

func boxRows(th *theme.Theme) string {
	var rows []string
	for _, size := range boxSizes {
		var cells []string
		for _, scheme := range boxSchemes {
			box, err := components.NewBox(th, scheme, variants.Props{
				"colorScheme": scheme,
				"size":        size,
			})
			if err != nil {
				return errorStyle.Render(err.Error()) + "\n"
			}
			cells = append(cells, box.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n") + "\n"
}

func badgeRow(th *theme.Theme) string {
	var cells []string
	for _, tone := range badgeTones {
		badge, err := components.NewBadge(th, strings.ToUpper(tone), variants.Props{"tone": tone})
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		cells = append(cells, badge.View())
	}
	return strings.Join(cells, " ")
}

func textColumn(th *theme.Theme) string {
	var lines []string
	for _, variant := range textScale {
		text, err := components.NewText(th, variant, variants.Props{
			presets.TextVariantGroup: variant,
		})
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		lines = append(lines, text.View())
	}
	return strings.Join(lines, "\n") + "\n"
}
