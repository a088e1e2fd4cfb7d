package theme

import (
	stderrors "errors"

	glazeerrors "github.com/alexisbeaulieu97/glaze/pkg/errors"
)

// TextStyle is a typography preset: the text-level attributes a text variant
// applies on top of whatever colours the component chose.
type TextStyle struct {
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
	Faint     bool   `yaml:"faint"`
	Color     string `yaml:"color,omitempty" validate:"omitempty,hexcolor"`
}

// Theme is the read-only table of design tokens a schema factory draws from.
// Once a resolver is bound to a Theme the same reference serves every
// resolution made through that resolver; nothing mutates a Theme after
// construction, so concurrent reads need no coordination.
type Theme struct {
	Name       string               `yaml:"name" validate:"required,token_name"`
	Appearance string               `yaml:"appearance" validate:"required,oneof=dark light"`
	Colors     map[string]string    `yaml:"colors" validate:"dive,keys,token_name,endkeys,hexcolor"`
	Space      map[string]int       `yaml:"space" validate:"dive,keys,token_name,endkeys,min=0"`
	Radii      map[string]int       `yaml:"radii" validate:"dive,keys,token_name,endkeys,min=0"`
	Shadows    map[string]string    `yaml:"shadows" validate:"dive,keys,token_name,endkeys,required"`
	Borders    map[string]string    `yaml:"borders" validate:"dive,keys,token_name,endkeys,oneof=none normal rounded thick double"`
	Text       map[string]TextStyle `yaml:"text" validate:"dive"`
}

// Tokens is the view a schema factory reads the theme through. Lookups for
// missing tokens return zero values and are recorded, so schema construction
// can reject a factory that referenced tokens the theme does not supply.
// A Tokens value is not safe for concurrent use; each factory invocation
// gets its own.
type Tokens struct {
	theme  *Theme
	missed []error
}

// NewTokens wraps a theme in a recording view.
func NewTokens(th *Theme) *Tokens {
	return &Tokens{theme: th}
}

// Theme returns the wrapped theme.
func (t *Tokens) Theme() *Theme {
	return t.theme
}

// Color returns the named colour token.
func (t *Tokens) Color(name string) string {
	v, ok := t.theme.Colors[name]
	if !ok {
		t.miss("colors", name)
	}
	return v
}

// Space returns the named spacing token.
func (t *Tokens) Space(name string) int {
	v, ok := t.theme.Space[name]
	if !ok {
		t.miss("space", name)
	}
	return v
}

// Radius returns the named radius token.
func (t *Tokens) Radius(name string) int {
	v, ok := t.theme.Radii[name]
	if !ok {
		t.miss("radii", name)
	}
	return v
}

// Shadow returns the named shadow token.
func (t *Tokens) Shadow(name string) string {
	v, ok := t.theme.Shadows[name]
	if !ok {
		t.miss("shadows", name)
	}
	return v
}

// Border returns the named border token.
func (t *Tokens) Border(name string) string {
	v, ok := t.theme.Borders[name]
	if !ok {
		t.miss("borders", name)
	}
	return v
}

// Text returns the named typography preset.
func (t *Tokens) Text(name string) TextStyle {
	v, ok := t.theme.Text[name]
	if !ok {
		t.miss("text", name)
	}
	return v
}

func (t *Tokens) miss(category, name string) {
	t.missed = append(t.missed, glazeerrors.NewLookupError(category, name))
}

// Err reports every token the factory dereferenced that the theme lacks,
// joined into one error, or nil when all lookups hit.
func (t *Tokens) Err() error {
	return stderrors.Join(t.missed...)
}
