// Package preview is the interactive gallery: it renders the component
// family across every variant axis under the active theme and lets the user
// cycle themes, including themes from installed packs.
package preview

import (
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

// ThemeSource loads the extra themes available beyond the built-in presets
// (theme packs, files). It runs off the UI goroutine.
type ThemeSource func() (map[string]*theme.Theme, error)

// Model is the gallery model.
type Model struct {
	source ThemeSource

	names  []string
	themes map[string]*theme.Theme
	cursor int

	loading bool
	spinner spinner.Model

	width  int
	height int

	errMsg string
}

// NewModel creates a gallery over the built-in presets plus whatever the
// source supplies on reload.
func NewModel(source ThemeSource) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		source:  source,
		themes:  make(map[string]*theme.Theme),
		spinner: s,
		loading: source != nil,
	}
	for _, name := range theme.PresetNames() {
		th, _ := theme.Preset(name)
		m.themes[name] = th
	}
	m.rebuildNames()
	return m
}

// Init starts the first theme-pack load.
func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, reloadThemesCmd(m.source))
}

// Current returns the active theme.
func (m Model) Current() *theme.Theme {
	if len(m.names) == 0 {
		return theme.Default()
	}
	return m.themes[m.names[m.cursor]]
}

func (m *Model) rebuildNames() {
	current := ""
	if len(m.names) > 0 {
		current = m.names[m.cursor]
	}

	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	m.names = names

	m.cursor = 0
	for i, name := range names {
		if name == current {
			m.cursor = i
			break
		}
	}
}
