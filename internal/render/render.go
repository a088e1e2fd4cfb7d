// Package render is the host rendering primitive: it turns a resolved style
// description into a lipgloss style and applies forwarded attributes. It is
// the only place that knows lipgloss; the engine above it deals purely in
// style descriptions and property bags.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glaze/internal/variants"
)

const maxVarDepth = 8

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
}

// Style converts a style description into a lipgloss style. Variable
// bindings are resolved first: keys that are generated variable identifiers
// bind values, string values that are identifiers dereference them. Unknown
// property keys are ignored, keeping rendering total over whatever a
// resolver produced.
func Style(s variants.Style) lipgloss.Style {
	bindings := map[string]any{}
	collectBindings(s, bindings)

	st := lipgloss.NewStyle()
	for key, raw := range s {
		if variants.IsVar(key) {
			continue
		}
		st = applyProperty(st, key, resolve(raw, bindings))
	}
	return st
}

// Apply lays forwarded attributes (the pass-through half of a property bag)
// onto an already rendered style.
func Apply(st lipgloss.Style, attrs variants.Props) lipgloss.Style {
	for key, raw := range attrs {
		switch key {
		case "width", "height", "maxWidth", "align":
			st = applyProperty(st, key, raw)
		}
	}
	return st
}

func collectBindings(s variants.Style, into map[string]any) {
	for key, value := range s {
		if variants.IsVar(key) {
			into[key] = value
			continue
		}
		if block, ok := value.(variants.Style); ok {
			collectBindings(block, into)
		}
	}
}

func resolve(v any, bindings map[string]any) any {
	for depth := 0; depth < maxVarDepth; depth++ {
		ref, ok := v.(string)
		if !ok || !variants.IsVar(ref) {
			return v
		}
		bound, ok := bindings[ref]
		if !ok {
			return nil
		}
		v = bound
	}
	return nil
}

func applyProperty(st lipgloss.Style, key string, value any) lipgloss.Style {
	switch key {
	case "color":
		if c, ok := value.(string); ok && c != "" {
			st = st.Foreground(lipgloss.Color(c))
		}
	case "background":
		if c, ok := value.(string); ok && c != "" {
			st = st.Background(lipgloss.Color(c))
		}
	case "bold":
		if b, ok := value.(bool); ok {
			st = st.Bold(b)
		}
	case "italic":
		if b, ok := value.(bool); ok {
			st = st.Italic(b)
		}
	case "underline":
		if b, ok := value.(bool); ok {
			st = st.Underline(b)
		}
	case "faint":
		if b, ok := value.(bool); ok {
			st = st.Faint(b)
		}
	case "strikethrough":
		if b, ok := value.(bool); ok {
			st = st.Strikethrough(b)
		}
	case "padding":
		if n, ok := asInt(value); ok {
			st = st.Padding(n)
		}
	case "paddingX":
		if n, ok := asInt(value); ok {
			st = st.PaddingLeft(n).PaddingRight(n)
		}
	case "paddingY":
		if n, ok := asInt(value); ok {
			st = st.PaddingTop(n).PaddingBottom(n)
		}
	case "margin":
		if n, ok := asInt(value); ok {
			st = st.Margin(n)
		}
	case "marginX":
		if n, ok := asInt(value); ok {
			st = st.MarginLeft(n).MarginRight(n)
		}
	case "marginY":
		if n, ok := asInt(value); ok {
			st = st.MarginTop(n).MarginBottom(n)
		}
	case "border":
		if name, ok := value.(string); ok {
			if border, known := borders[name]; known {
				st = st.Border(border)
			}
		}
	case "borderColor":
		if c, ok := value.(string); ok && c != "" {
			st = st.BorderForeground(lipgloss.Color(c))
		}
	case "align":
		if a, ok := value.(string); ok {
			switch a {
			case "left":
				st = st.Align(lipgloss.Left)
			case "center":
				st = st.Align(lipgloss.Center)
			case "right":
				st = st.Align(lipgloss.Right)
			}
		}
	case "width":
		if n, ok := asInt(value); ok {
			st = st.Width(n)
		}
	case "maxWidth":
		if n, ok := asInt(value); ok {
			st = st.MaxWidth(n)
		}
	case "height":
		if n, ok := asInt(value); ok {
			st = st.Height(n)
		}
	}
	return st
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
