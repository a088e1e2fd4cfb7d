package variants

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
	glazeerrors "github.com/alexisbeaulieu97/glaze/pkg/errors"
)

func TestNewRejectsDefaultForUnknownValue(t *testing.T) {
	_, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{
			Variants: []Group{
				{Name: "colorScheme", Values: map[string]Style{"primary": {}}},
			},
			Defaults: map[string]string{"colorScheme": "ultraviolet"},
		}
	})

	var cfgErr *glazeerrors.ConfigurationError
	require.True(t, stderrors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "ultraviolet")
}

func TestNewRejectsDefaultForUnknownGroup(t *testing.T) {
	_, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{
			Defaults: map[string]string{"ghost": "primary"},
		}
	})

	var cfgErr *glazeerrors.ConfigurationError
	require.True(t, stderrors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "ghost")
}

func TestNewRejectsDuplicateGroups(t *testing.T) {
	_, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{
			Variants: []Group{
				{Name: "size", Values: map[string]Style{"small": {}}},
				{Name: "size", Values: map[string]Style{"large": {}}},
			},
		}
	})

	var cfgErr *glazeerrors.ConfigurationError
	require.True(t, stderrors.As(err, &cfgErr))
}

func TestNewSurfacesMissingTokensAtBuildTime(t *testing.T) {
	_, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{
			Base: Style{"color": tok.Color("chartreuse")},
		}
	})

	var lookupErr *glazeerrors.LookupError
	require.True(t, stderrors.As(err, &lookupErr))
	assert.Equal(t, "chartreuse", lookupErr.Token)
}

func TestNewClonesBase(t *testing.T) {
	base := Style{"color": "#ffffff"}

	r, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{Base: base}
	})
	require.NoError(t, err)

	base["color"] = "#000000"
	assert.Equal(t, "#ffffff", r.Apply(Props{})["color"], "resolver must hold its own copy of the base")
}

func TestSchemaWithNoVariantsStillResolves(t *testing.T) {
	r, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{Base: Style{"bold": true}}
	})
	require.NoError(t, err)

	assert.Equal(t, Style{"bold": true}, r.Apply(Props{"anything": "goes"}))
	assert.Equal(t, Props{"anything": "goes"}, r.Filter(Props{"anything": "goes"}))
}
