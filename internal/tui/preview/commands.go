package preview

import tea "github.com/charmbracelet/bubbletea"

func reloadThemesCmd(source ThemeSource) tea.Cmd {
	return func() tea.Msg {
		themes, err := source()
		if err != nil {
			return reloadFailedMsg{Err: err}
		}
		return themesReloadedMsg{Themes: themes}
	}
}
