// Package presets holds variant groups shared across component schemas, so
// a component family keeps one typographic scale instead of redefining it
// per schema. Presets are plain data: theme-bound like any other group,
// passed by value into each schema's variant table.
package presets

import (
	"github.com/alexisbeaulieu97/glaze/internal/theme"
	"github.com/alexisbeaulieu97/glaze/internal/variants"
)

// TextVariantGroup is the axis name components use for the shared
// typography scale.
const TextVariantGroup = "textVariant"

// EmphasisGroup is the axis name for the shared emphasis scale.
const EmphasisGroup = "emphasis"

// TextVariant builds the shared typography axis from the theme's text
// presets.
func TextVariant(tok *theme.Tokens) variants.Group {
	values := make(map[string]variants.Style, 5)
	for _, name := range []string{"heading", "subheading", "body", "caption", "code"} {
		values[name] = textStyle(tok.Text(name))
	}
	return variants.Group{Name: TextVariantGroup, Values: values}
}

// Emphasis builds the shared emphasis axis. It needs no theme tokens; the
// bindings are attribute-only.
func Emphasis() variants.Group {
	return variants.Group{
		Name: EmphasisGroup,
		Values: map[string]variants.Style{
			"none":   {},
			"strong": {"bold": true},
			"subtle": {"faint": true},
		},
	}
}

func textStyle(ts theme.TextStyle) variants.Style {
	style := variants.Style{}
	if ts.Bold {
		style["bold"] = true
	}
	if ts.Italic {
		style["italic"] = true
	}
	if ts.Underline {
		style["underline"] = true
	}
	if ts.Faint {
		style["faint"] = true
	}
	if ts.Color != "" {
		style["color"] = ts.Color
	}
	return style
}
