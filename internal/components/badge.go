package components

import (
	"github.com/alexisbeaulieu97/glaze/internal/render"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
	"github.com/alexisbeaulieu97/glaze/internal/variants"
	"github.com/alexisbeaulieu97/glaze/internal/variants/presets"
)

var badgeSchema = variants.Define(func(tok *theme.Tokens) variants.Schema {
	return variants.Schema{
		Base: variants.Style{
			"paddingX": tok.Space("xs"),
		},
		Variants: []variants.Group{
			{
				Name: "tone",
				Values: map[string]variants.Style{
					"info": {
						"background": tok.Color("info"),
						"color":      tok.Color("onInfo"),
					},
					"success": {
						"background": tok.Color("success"),
						"color":      tok.Color("onSuccess"),
					},
					"warning": {
						"background": tok.Color("warning"),
						"color":      tok.Color("onWarning"),
					},
					"danger": {
						"background": tok.Color("danger"),
						"color":      tok.Color("onDanger"),
					},
				},
			},
			presets.TextVariant(tok),
		},
		Defaults: map[string]string{
			"tone":                   "info",
			presets.TextVariantGroup: "caption",
		},
	}
})

// Badge is a small status label with a tone axis and the shared typography
// axis.
type Badge struct {
	label    string
	props    variants.Props
	resolver *variants.Resolver
}

// NewBadge binds the badge schema to a theme.
func NewBadge(th *theme.Theme, label string, props variants.Props) (*Badge, error) {
	resolver, err := badgeSchema.Bind(th)
	if err != nil {
		return nil, err
	}
	return &Badge{label: label, props: props, resolver: resolver}, nil
}

// WithProps replaces the property bag.
func (b *Badge) WithProps(props variants.Props) *Badge {
	b.props = props
	return b
}

// Style returns the resolved style description for the current bag.
func (b *Badge) Style() variants.Style {
	return b.resolver.Apply(b.props)
}

// View renders the badge.
func (b *Badge) View() string {
	st := render.Style(b.resolver.Apply(b.props))
	st = render.Apply(st, b.resolver.Filter(b.props))
	return st.Render(b.label)
}
