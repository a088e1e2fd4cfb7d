package theme

import "sort"

// Built-in presets. Each preset is constructed once at package init and
// shared by reference; callers must treat presets as read-only.
var presets = map[string]*Theme{
	"default": defaultTheme(),
	"dark":    darkTheme(),
	"light":   lightTheme(),
}

// Preset returns the built-in theme with the given name.
func Preset(name string) (*Theme, bool) {
	th, ok := presets[name]
	return th, ok
}

// PresetNames lists the built-in preset names in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the preset used when no theme is selected.
func Default() *Theme {
	return presets["default"]
}

func defaultSpace() map[string]int {
	return map[string]int{
		"none": 0,
		"xs":   1,
		"sm":   2,
		"md":   3,
		"lg":   4,
		"xl":   6,
	}
}

func defaultRadii() map[string]int {
	return map[string]int{
		"none": 0,
		"sm":   1,
		"md":   2,
		"lg":   3,
	}
}

func defaultBorders() map[string]string {
	return map[string]string{
		"default": "rounded",
		"focus":   "thick",
		"divider": "normal",
	}
}

func defaultText() map[string]TextStyle {
	return map[string]TextStyle{
		"heading":    {Bold: true},
		"subheading": {Bold: true, Faint: true},
		"body":       {},
		"caption":    {Faint: true, Italic: true},
		"code":       {Italic: true},
	}
}

func defaultTheme() *Theme {
	return &Theme{
		Name:       "default",
		Appearance: "dark",
		Colors: map[string]string{
			"primary":   "#60a5fa",
			"onPrimary": "#0b1120",
			"surface":   "#111827",
			"onSurface": "#f9fafb",
			"muted":     "#6b7280",
			"success":   "#4ade80",
			"onSuccess": "#022c22",
			"warning":   "#facc15",
			"onWarning": "#422006",
			"danger":    "#f87171",
			"onDanger":  "#450a0a",
			"info":      "#22d3ee",
			"onInfo":    "#04121a",
			"neutral":   "#94a3b8",
			"onNeutral": "#0f172a",
		},
		Space:   defaultSpace(),
		Radii:   defaultRadii(),
		Shadows: map[string]string{"low": "#00000033", "high": "#00000066"},
		Borders: defaultBorders(),
		Text:    defaultText(),
	}
}

func darkTheme() *Theme {
	th := defaultTheme()
	th.Name = "dark"
	th.Colors["surface"] = "#0b1120"
	th.Colors["onSurface"] = "#e5e7eb"
	th.Colors["muted"] = "#4b5563"
	return th
}

func lightTheme() *Theme {
	return &Theme{
		Name:       "light",
		Appearance: "light",
		Colors: map[string]string{
			"primary":   "#2563eb",
			"onPrimary": "#f8fafc",
			"surface":   "#f9fafb",
			"onSurface": "#111827",
			"muted":     "#9ca3af",
			"success":   "#16a34a",
			"onSuccess": "#f0fdf4",
			"warning":   "#ca8a04",
			"onWarning": "#fefce8",
			"danger":    "#dc2626",
			"onDanger":  "#fef2f2",
			"info":      "#0891b2",
			"onInfo":    "#ecfeff",
			"neutral":   "#64748b",
			"onNeutral": "#f1f5f9",
		},
		Space:   defaultSpace(),
		Radii:   defaultRadii(),
		Shadows: map[string]string{"low": "#0000001a", "high": "#00000040"},
		Borders: defaultBorders(),
		Text:    defaultText(),
	}
}
