package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New(filepath.Join(t.TempDir(), "registry.json"))
	require.NoError(t, err)
	return r
}

func TestRegistryAddGetList(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Add(Pack{Name: "nordic", URL: "https://example.com/nordic.git"}))
	require.NoError(t, r.Add(Pack{Name: "amber", URL: "https://example.com/amber.git"}))

	pack, ok := r.Get("nordic")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/nordic.git", pack.URL)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "amber", list[0].Name, "list is sorted by name")
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Add(Pack{Name: "nordic"}))
	err := r.Add(Pack{Name: "nordic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already installed")
}

func TestRegistryRemove(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Add(Pack{Name: "nordic"}))
	require.NoError(t, r.Remove("nordic"))
	assert.Empty(t, r.List())

	require.Error(t, r.Remove("nordic"))
}

func TestRegistrySaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	r, err := New(path)
	require.NoError(t, err)
	require.NoError(t, r.Add(Pack{
		Name:        "nordic",
		URL:         "https://example.com/nordic.git",
		InstalledAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, r.Save())

	reloaded, err := New(path)
	require.NoError(t, err)

	pack, ok := reloaded.Get("nordic")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/nordic.git", pack.URL)
}

func TestRegistryNewWithCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path)
	require.Error(t, err)
}

func TestThemesLoadsPackDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nord.yaml"), []byte(`
name: nord
appearance: dark
colors:
  primary: "#88c0d0"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a theme"), 0o644))

	themes, err := Themes(Pack{Name: "nordic", Path: dir})
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "#88c0d0", themes["nord"].Colors["primary"])
}

func TestThemesRejectsDuplicateThemeNames(t *testing.T) {
	dir := t.TempDir()
	body := []byte("name: nord\nappearance: dark\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), body, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), body, 0o644))

	_, err := Themes(Pack{Name: "nordic", Path: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twice")
}

func TestThemesFailsOnInvalidThemeFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [oops"), 0o644))

	_, err := Themes(Pack{Name: "nordic", Path: dir})
	require.Error(t, err)
}
