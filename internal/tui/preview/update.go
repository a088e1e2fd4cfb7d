package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

const (
	minWidth  = 60
	minHeight = 16
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minWidth || m.height < minHeight {
			m.errMsg = fmt.Sprintf("terminal too small (%dx%d), need %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.errMsg != "" {
			m.errMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case themesReloadedMsg:
		m.loading = false
		m.errMsg = ""
		for name := range m.themes {
			if _, builtin := theme.Preset(name); !builtin {
				delete(m.themes, name)
			}
		}
		for name, th := range msg.Themes {
			m.themes[name] = th
		}
		m.rebuildNames()
		return m, nil

	case reloadFailedMsg:
		m.loading = false
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "right", "l", "tab":
		if len(m.names) > 0 {
			m.cursor = (m.cursor + 1) % len(m.names)
		}
		return m, nil

	case "left", "h", "shift+tab":
		if len(m.names) > 0 {
			m.cursor = (m.cursor - 1 + len(m.names)) % len(m.names)
		}
		return m, nil

	case "r":
		if m.source == nil || m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, reloadThemesCmd(m.source))
	}

	return m, nil
}
