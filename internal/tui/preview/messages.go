package preview

import "github.com/alexisbeaulieu97/glaze/internal/theme"

// themesReloadedMsg carries freshly loaded pack themes.
type themesReloadedMsg struct {
	Themes map[string]*theme.Theme
}

// reloadFailedMsg reports a failed pack reload.
type reloadFailedMsg struct {
	Err error
}
