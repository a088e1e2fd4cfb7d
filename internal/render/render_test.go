package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/glaze/internal/variants"
)

func TestStyleScalarProperties(t *testing.T) {
	st := Style(variants.Style{
		"color":      "#60a5fa",
		"background": "#111827",
		"bold":       true,
		"paddingX":   2,
		"border":     "rounded",
	})

	assert.Equal(t, lipgloss.Color("#60a5fa"), st.GetForeground())
	assert.Equal(t, lipgloss.Color("#111827"), st.GetBackground())
	assert.True(t, st.GetBold())
	assert.Equal(t, 2, st.GetPaddingLeft())
	assert.Equal(t, 2, st.GetPaddingRight())
	assert.Equal(t, lipgloss.RoundedBorder(), st.GetBorderStyle())
}

func TestStyleResolvesVariableIndirection(t *testing.T) {
	vars := variants.MustVarSet("accent")

	st := Style(variants.Style{
		vars["accent"]: "#f87171",
		"color":        vars["accent"],
		"borderColor":  vars["accent"],
	})

	assert.Equal(t, lipgloss.Color("#f87171"), st.GetForeground())
	assert.Equal(t, lipgloss.Color("#f87171"), st.GetBorderTopForeground())
}

func TestStyleResolvesBindingsFromNestedBlocks(t *testing.T) {
	vars := variants.MustVarSet("bg")

	st := Style(variants.Style{
		"vars":       variants.Style{vars["bg"]: "#0b1120"},
		"background": vars["bg"],
	})

	assert.Equal(t, lipgloss.Color("#0b1120"), st.GetBackground())
}

func TestStyleUnboundVariableIsDropped(t *testing.T) {
	vars := variants.MustVarSet("accent")

	st := Style(variants.Style{"color": vars["accent"]})

	assert.Equal(t, lipgloss.NewStyle().GetForeground(), st.GetForeground())
}

func TestStyleIgnoresUnknownKeys(t *testing.T) {
	assert.NotPanics(t, func() {
		Style(variants.Style{"gridTemplateAreas": "header main", "padding": "wat"})
	})
}

func TestApplyForwardedAttributes(t *testing.T) {
	st := Apply(lipgloss.NewStyle(), variants.Props{
		"width": 40,
		"align": "center",
		"title": "ignored, not a primitive attribute",
	})

	assert.Equal(t, 40, st.GetWidth())
	assert.Equal(t, lipgloss.Center, st.GetAlign())
}
