package theme

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glazeerrors "github.com/alexisbeaulieu97/glaze/pkg/errors"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"dark", "default", "light"}, PresetNames())

	for _, name := range PresetNames() {
		th, ok := Preset(name)
		require.True(t, ok, "preset %s should exist", name)
		assert.NoError(t, Validate(th), "preset %s should satisfy the theme contract", name)
	}
}

func TestPresetIdentityIsStable(t *testing.T) {
	first, _ := Preset("dark")
	second, _ := Preset("dark")
	assert.Same(t, first, second, "presets are shared by reference")
}

func TestDefaultThemeTokens(t *testing.T) {
	th := Default()

	assert.Equal(t, "dark", th.Appearance)
	assert.Equal(t, "#60a5fa", th.Colors["primary"])
	assert.Equal(t, 3, th.Space["md"])
	assert.Equal(t, "rounded", th.Borders["default"])
	assert.True(t, th.Text["heading"].Bold)
}

func TestTokensRecordsMisses(t *testing.T) {
	tok := NewTokens(Default())

	assert.Equal(t, "#60a5fa", tok.Color("primary"))
	assert.NoError(t, tok.Err())

	assert.Equal(t, "", tok.Color("nope"))
	assert.Equal(t, 0, tok.Space("gigantic"))

	err := tok.Err()
	require.Error(t, err)

	var lookupErr *glazeerrors.LookupError
	require.True(t, stderrors.As(err, &lookupErr))
	assert.Contains(t, err.Error(), `no colors token "nope"`)
	assert.Contains(t, err.Error(), `no space token "gigantic"`)
}

func TestTokensCoversEveryCategory(t *testing.T) {
	tok := NewTokens(Default())

	tok.Color("primary")
	tok.Space("sm")
	tok.Radius("md")
	tok.Shadow("low")
	tok.Border("default")
	tok.Text("body")

	assert.NoError(t, tok.Err())
}

func TestLookup(t *testing.T) {
	th, err := Lookup("light")
	require.NoError(t, err)
	assert.Equal(t, "light", th.Name)

	custom := &Theme{Name: "nord"}
	th, err = Lookup("nord", map[string]*Theme{"nord": custom})
	require.NoError(t, err)
	assert.Same(t, custom, th)

	_, err = Lookup("missing")
	var lookupErr *glazeerrors.LookupError
	require.True(t, stderrors.As(err, &lookupErr))
	assert.Equal(t, "theme", lookupErr.Category)
}
