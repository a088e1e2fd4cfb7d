package registry

import "time"

// Pack is an installed theme pack: a git repository of theme YAML files
// cloned into the packs directory.
type Pack struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Ref         string    `json:"ref,omitempty"`
	Path        string    `json:"path"`
	InstalledAt time.Time `json:"installed_at"`
}

// RegistryFile is the on-disk registry format.
type RegistryFile struct {
	Version string `json:"version"`
	Packs   []Pack `json:"packs"`
}
