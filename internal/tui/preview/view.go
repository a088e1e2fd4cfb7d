package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

// View renders the gallery.
func (m Model) View() string {
	if m.errMsg != "" && strings.HasPrefix(m.errMsg, "terminal too small") {
		return errorStyle.Render(m.errMsg)
	}

	th := m.Current()

	var b strings.Builder
	title := fmt.Sprintf("glaze gallery · theme %s (%d/%d)",
		theme.DisplayName(th), m.cursor+1, len(m.names))
	if m.loading {
		title = m.spinner.View() + " " + title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(Gallery(th))

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ theme · r reload packs · q quit"))
	return b.String()
}
