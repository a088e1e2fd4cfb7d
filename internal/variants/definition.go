package variants

import (
	"sync"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

// Definition is a schema declared once per component (package-level,
// conceptually at module load) and bound lazily to whichever themes it is
// used with. The factory runs at most once per (definition, theme) pair;
// subsequent binds reuse the built resolver instead of rebuilding style
// objects on every resolution.
type Definition struct {
	factory Factory

	mu    sync.Mutex
	bound map[*theme.Theme]*Resolver
}

// Define declares a reusable schema.
func Define(factory Factory) *Definition {
	return &Definition{
		factory: factory,
		bound:   make(map[*theme.Theme]*Resolver),
	}
}

// Bind returns the resolver for a theme, building it on first use.
func (d *Definition) Bind(th *theme.Theme) (*Resolver, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.bound[th]; ok {
		return r, nil
	}

	r, err := New(th, d.factory)
	if err != nil {
		return nil, err
	}
	d.bound[th] = r
	return r, nil
}

// MustBind is Bind for call sites where the schema and theme are both
// compiled in and a failure is a programming error.
func (d *Definition) MustBind(th *theme.Theme) *Resolver {
	r, err := d.Bind(th)
	if err != nil {
		panic(err)
	}
	return r
}
