package registry

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

// Installer clones and updates theme-pack repositories under a root
// directory.
type Installer struct {
	root string
}

// NewInstaller creates an Installer rooted at the packs directory.
func NewInstaller(root string) *Installer {
	return &Installer{root: root}
}

// Install clones a pack repository. The clone is shallow; theme packs are
// consumed at HEAD of the requested ref.
func (i *Installer) Install(ctx context.Context, name, url, ref string) (Pack, error) {
	dest := filepath.Join(i.root, name)

	if _, err := os.Stat(dest); err == nil {
		return Pack{}, fmt.Errorf("pack directory already exists: %s", dest)
	}

	opts := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		opts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dest, false, opts); err != nil {
		_ = os.RemoveAll(dest)
		return Pack{}, fmt.Errorf("failed to clone %s: %w", url, err)
	}

	return Pack{
		Name:        name,
		URL:         url,
		Ref:         ref,
		Path:        dest,
		InstalledAt: time.Now().UTC(),
	}, nil
}

// Update pulls the latest themes for an installed pack. An already
// up-to-date pack is not an error.
func (i *Installer) Update(ctx context.Context, pack Pack) error {
	repo, err := git.PlainOpen(pack.Path)
	if err != nil {
		return fmt.Errorf("failed to open pack %s: %w", pack.Name, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to access pack worktree: %w", err)
	}

	err = worktree.PullContext(ctx, &git.PullOptions{Depth: 1})
	if err != nil && !stderrors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to update pack %s: %w", pack.Name, err)
	}

	return nil
}

// Uninstall removes a pack's clone from disk.
func (i *Installer) Uninstall(pack Pack) error {
	if pack.Path == "" || !strings.HasPrefix(pack.Path, i.root) {
		return fmt.Errorf("refusing to remove path outside packs root: %s", pack.Path)
	}
	return os.RemoveAll(pack.Path)
}

// Themes loads every theme file in a pack, keyed by theme name. A pack file
// that fails to parse fails the whole pack; half-loaded packs would make
// theme lookup order-dependent.
func Themes(pack Pack) (map[string]*theme.Theme, error) {
	themes := make(map[string]*theme.Theme)

	err := filepath.WalkDir(pack.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		th, loadErr := theme.Load(path)
		if loadErr != nil {
			return loadErr
		}
		if _, dup := themes[th.Name]; dup {
			return fmt.Errorf("pack %s declares theme %q twice", pack.Name, th.Name)
		}
		themes[th.Name] = th
		return nil
	})
	if err != nil {
		return nil, err
	}

	return themes, nil
}

// DefaultRegistryPath returns the registry file location.
func DefaultRegistryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".glaze", "registry.json"), nil
}

// DefaultPacksRoot returns the directory pack clones live in.
func DefaultPacksRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".glaze", "packs"), nil
}
