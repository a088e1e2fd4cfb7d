package variants

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glaze/internal/theme"
)

func schemeResolver(t *testing.T) *Resolver {
	t.Helper()

	r, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{
			Base: Style{
				"color":  "accentRef",
				"border": tok.Border("default"),
			},
			Variants: []Group{
				{
					Name: "colorScheme",
					Values: map[string]Style{
						"primary": {"accent": tok.Color("primary")},
						"danger":  {"accent": tok.Color("danger")},
					},
				},
				{
					Name: "size",
					Values: map[string]Style{
						"small": {"paddingX": tok.Space("xs")},
						"large": {"paddingX": tok.Space("lg")},
					},
				},
			},
			Defaults: map[string]string{
				"colorScheme": "primary",
				"size":        "small",
			},
		}
	})
	require.NoError(t, err)
	return r
}

func TestApplyDefaultFallback(t *testing.T) {
	r := schemeResolver(t)

	style := r.Apply(Props{})

	assert.Equal(t, "#60a5fa", style["accent"], "empty bag should merge the default contribution")
	assert.Equal(t, 1, style["paddingX"])
	assert.Equal(t, "rounded", style["border"], "base properties survive")
}

func TestApplyOverridePrecedence(t *testing.T) {
	r := schemeResolver(t)

	style := r.Apply(Props{"colorScheme": "danger", "size": "large"})

	assert.Equal(t, "#f87171", style["accent"])
	assert.Equal(t, 4, style["paddingX"])
}

func TestApplyExplicitNilEqualsOmission(t *testing.T) {
	r := schemeResolver(t)

	withNil := r.Apply(Props{"colorScheme": nil})
	omitted := r.Apply(Props{})

	assert.Equal(t, omitted, withNil)
}

func TestApplyUnknownValueContributesNothing(t *testing.T) {
	r := schemeResolver(t)

	style := r.Apply(Props{"colorScheme": "nonexistent"})

	// The axis contributes nothing at all; it does not fall back to the
	// default contribution. Base and other axes still apply.
	assert.NotContains(t, style, "accent")
	assert.Equal(t, 1, style["paddingX"])
	assert.Equal(t, "rounded", style["border"])
}

func TestApplyNonStringSelectionContributesNothing(t *testing.T) {
	r := schemeResolver(t)

	style := r.Apply(Props{"colorScheme": 7})

	assert.NotContains(t, style, "accent")
}

func TestApplyIsTotal(t *testing.T) {
	r := schemeResolver(t)

	bags := []Props{
		nil,
		{},
		{"colorScheme": "danger"},
		{"colorScheme": struct{}{}},
		{"unrelated": []int{1, 2, 3}},
		{"colorScheme": "danger", "size": "nope", "onClick": func() {}},
	}

	for _, bag := range bags {
		assert.NotPanics(t, func() {
			style := r.Apply(bag)
			assert.NotNil(t, style)
		})
	}
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	r := schemeResolver(t)

	props := Props{"colorScheme": "danger", "label": "hi"}
	first := r.Apply(props)
	first["accent"] = "mutated"
	first["border"] = "mutated"

	second := r.Apply(props)
	assert.Equal(t, "#f87171", second["accent"], "shared schema state must not absorb caller writes")
	assert.Equal(t, "rounded", second["border"])
	assert.Equal(t, Props{"colorScheme": "danger", "label": "hi"}, props)
}

func TestApplyMergesNestedBlocksKeyByKey(t *testing.T) {
	vars := MustVarSet("accent", "bg")

	r, err := New(theme.Default(), func(tok *theme.Tokens) Schema {
		return Schema{
			Base: Style{"vars": Style{vars["accent"]: "#000000"}},
			Variants: []Group{
				{
					Name: "colorScheme",
					Values: map[string]Style{
						"primary": {"vars": Style{vars["accent"]: tok.Color("primary")}},
					},
				},
				{
					Name: "tone",
					Values: map[string]Style{
						"muted": {"vars": Style{vars["bg"]: tok.Color("muted")}},
					},
				},
			},
			Defaults: map[string]string{"colorScheme": "primary", "tone": "muted"},
		}
	})
	require.NoError(t, err)

	style := r.Apply(Props{})

	block, ok := asStyle(style["vars"])
	require.True(t, ok, "nested block should survive as a block")
	assert.Equal(t, "#60a5fa", block[vars["accent"]], "later axis must not clobber the whole block")
	assert.Equal(t, "#6b7280", block[vars["bg"]], "both axes contribute their own bindings")
}

func TestFilterDisjointness(t *testing.T) {
	r := schemeResolver(t)

	props := Props{
		"colorScheme": "danger",
		"size":        "large",
		"width":       42,
		"align":       "center",
	}

	rest := r.Filter(props)

	assert.NotContains(t, rest, "colorScheme")
	assert.NotContains(t, rest, "size")
	assert.Equal(t, 42, rest["width"])
	assert.Equal(t, "center", rest["align"])
	assert.Len(t, rest, 2)
}

func TestFilterIdempotent(t *testing.T) {
	r := schemeResolver(t)

	props := Props{"colorScheme": "danger", "width": 42}
	once := r.Filter(props)
	twice := r.Filter(once)

	assert.Equal(t, once, twice)
}

func TestFilterReturnsFreshBag(t *testing.T) {
	r := schemeResolver(t)

	props := Props{"width": 42}
	rest := r.Filter(props)
	rest["width"] = 1

	assert.Equal(t, 42, props["width"])
}

func TestConcurrentResolution(t *testing.T) {
	r := schemeResolver(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			style := r.Apply(Props{"colorScheme": "danger"})
			assert.Equal(t, "#f87171", style["accent"])
			rest := r.Filter(Props{"colorScheme": "danger", "width": 1})
			assert.NotContains(t, rest, "colorScheme")
		}()
	}
	wg.Wait()
}
