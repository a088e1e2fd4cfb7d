// Package registry tracks installed theme packs: a JSON file naming the
// packs plus a directory of git clones holding their theme files.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry manages theme-pack persistence.
type Registry struct {
	path  string
	mu    sync.RWMutex
	packs []Pack
}

const fileVersion = "1.0"

// New creates a Registry backed by the given file, loading any existing
// state from disk.
func New(path string) (*Registry, error) {
	r := &Registry{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}

	if err := r.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.packs = []Pack{}
	}

	return r, nil
}

func (r *Registry) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file RegistryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse registry: %w", err)
	}

	r.packs = file.Packs
	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := RegistryFile{Version: fileVersion, Packs: r.packs}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns the installed packs sorted by name.
func (r *Registry) List() []Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Pack, len(r.packs))
	copy(out, r.packs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get retrieves a pack by name.
func (r *Registry) Get(name string) (Pack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.packs {
		if p.Name == name {
			return p, true
		}
	}
	return Pack{}, false
}

// Add registers a pack. Duplicate names are rejected.
func (r *Registry) Add(pack Pack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.packs {
		if p.Name == pack.Name {
			return fmt.Errorf("pack already installed: %s", pack.Name)
		}
	}
	r.packs = append(r.packs, pack)
	return nil
}

// Remove deletes a pack entry by name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.packs {
		if p.Name == name {
			r.packs = append(r.packs[:i], r.packs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pack not found: %s", name)
}
