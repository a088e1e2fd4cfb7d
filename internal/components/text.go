package components

import (
	"github.com/alexisbeaulieu97/glaze/internal/render"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
	"github.com/alexisbeaulieu97/glaze/internal/variants"
	"github.com/alexisbeaulieu97/glaze/internal/variants/presets"
)

// Text shares the typography axis with Badge; both schemas reference the
// same preset group instead of redefining the scale.
var textSchema = variants.Define(func(tok *theme.Tokens) variants.Schema {
	return variants.Schema{
		Base: variants.Style{
			"color": tok.Color("onSurface"),
		},
		Variants: []variants.Group{
			presets.TextVariant(tok),
			presets.Emphasis(),
		},
		Defaults: map[string]string{
			presets.TextVariantGroup: "body",
			presets.EmphasisGroup:    "none",
		},
	}
})

// Text renders a run of themed text.
type Text struct {
	content  string
	props    variants.Props
	resolver *variants.Resolver
}

// NewText binds the text schema to a theme.
func NewText(th *theme.Theme, content string, props variants.Props) (*Text, error) {
	resolver, err := textSchema.Bind(th)
	if err != nil {
		return nil, err
	}
	return &Text{content: content, props: props, resolver: resolver}, nil
}

// WithProps replaces the property bag.
func (t *Text) WithProps(props variants.Props) *Text {
	t.props = props
	return t
}

// Style returns the resolved style description for the current bag.
func (t *Text) Style() variants.Style {
	return t.resolver.Apply(t.props)
}

// View renders the text.
func (t *Text) View() string {
	st := render.Style(t.resolver.Apply(t.props))
	st = render.Apply(st, t.resolver.Filter(t.props))
	return st.Render(t.content)
}
