package main

import (
	"github.com/alexisbeaulieu97/glaze/internal/logger"
	"github.com/alexisbeaulieu97/glaze/internal/registry"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

// loadPackThemes collects every theme from every installed pack. A pack that
// fails to load is skipped with a warning so one broken pack cannot take
// down theme selection.
func loadPackThemes(log *logger.Logger) (map[string]*theme.Theme, error) {
	path, err := registry.DefaultRegistryPath()
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(path)
	if err != nil {
		return nil, err
	}

	themes := make(map[string]*theme.Theme)
	for _, pack := range reg.List() {
		packThemes, err := registry.Themes(pack)
		if err != nil {
			log.WithFields(map[string]any{"pack": pack.Name}).Error(err, "skipping broken theme pack")
			continue
		}
		for name, th := range packThemes {
			if _, dup := themes[name]; dup {
				log.WithFields(map[string]any{"pack": pack.Name, "theme": name}).Warn("duplicate theme name shadowed by earlier pack")
				continue
			}
			themes[name] = th
		}
	}

	return themes, nil
}

// resolveTheme picks the theme for a command: built-in presets first, then
// pack themes.
func resolveTheme(name string, log *logger.Logger) (*theme.Theme, error) {
	if name == "" {
		return theme.Default(), nil
	}
	if th, ok := theme.Preset(name); ok {
		return th, nil
	}

	packThemes, err := loadPackThemes(log)
	if err != nil {
		return nil, err
	}
	return theme.Lookup(name, packThemes)
}
