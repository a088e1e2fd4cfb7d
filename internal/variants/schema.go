package variants

import (
	"fmt"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
	glazeerrors "github.com/alexisbeaulieu97/glaze/pkg/errors"
)

// Group is one named axis of mutually exclusive style choices: a mapping
// from discrete value name to the partial style merged on top of the base
// when that value is selected. Groups are closed at schema-build time.
type Group struct {
	Name   string
	Values map[string]Style
}

// Schema is the declaration a factory produces: base style, ordered variant
// axes, and the default value per axis. Axis order fixes merge precedence;
// later axes win on key collision.
type Schema struct {
	Base     Style
	Variants []Group
	Defaults map[string]string
}

// Factory builds a schema against a bound theme. It runs at most once per
// (definition, theme) pair; every token it dereferences must exist in the
// theme or binding fails with a LookupError.
type Factory func(*theme.Tokens) Schema

// New binds a factory to a theme and returns the resolver. Misconfiguration
// surfaces here, never at resolution time: missing theme tokens as
// LookupError, inconsistent defaults or duplicate axes as
// ConfigurationError.
func New(th *theme.Theme, factory Factory) (*Resolver, error) {
	tok := theme.NewTokens(th)
	schema := factory(tok)
	if err := tok.Err(); err != nil {
		return nil, err
	}

	if err := validateSchema(schema); err != nil {
		return nil, err
	}

	axes := make(map[string]struct{}, len(schema.Variants))
	for _, group := range schema.Variants {
		axes[group.Name] = struct{}{}
	}

	return &Resolver{
		theme:    th,
		base:     schema.Base.clone(),
		groups:   schema.Variants,
		defaults: schema.Defaults,
		axes:     axes,
	}, nil
}

func validateSchema(schema Schema) error {
	seen := make(map[string]struct{}, len(schema.Variants))
	groups := make(map[string]Group, len(schema.Variants))
	for _, group := range schema.Variants {
		if group.Name == "" {
			return glazeerrors.NewConfigurationError("schema", "variant group with empty name", nil)
		}
		if _, dup := seen[group.Name]; dup {
			return glazeerrors.NewConfigurationError(
				"schema", fmt.Sprintf("variant group %q declared twice", group.Name), nil)
		}
		seen[group.Name] = struct{}{}
		groups[group.Name] = group
	}

	for axis, value := range schema.Defaults {
		group, ok := groups[axis]
		if !ok {
			return glazeerrors.NewConfigurationError(
				"schema", fmt.Sprintf("default declared for unknown variant group %q", axis), nil)
		}
		if _, ok := group.Values[value]; !ok {
			return glazeerrors.NewConfigurationError(
				"schema", fmt.Sprintf("default %q is not a declared value of variant group %q", value, axis), nil)
		}
	}

	return nil
}
