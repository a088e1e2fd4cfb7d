// Package components holds the themed leaf components built on the variant
// engine. Each component declares its schema once at package level and binds
// it to whichever theme it is rendered with; the resolver's Apply/Filter
// pair keeps variant selections out of the attributes forwarded to the
// rendering primitive.
package components

import (
	"github.com/alexisbeaulieu97/glaze/internal/render"
	"github.com/alexisbeaulieu97/glaze/internal/theme"
	"github.com/alexisbeaulieu97/glaze/internal/variants"
)

var boxVars = variants.MustVarSet("accent", "bg")

var boxSchema = variants.Define(func(tok *theme.Tokens) variants.Schema {
	return variants.Schema{
		Base: variants.Style{
			"color":       boxVars["accent"],
			"background":  boxVars["bg"],
			"border":      tok.Border("default"),
			"borderColor": boxVars["accent"],
		},
		Variants: []variants.Group{
			{
				Name: "colorScheme",
				Values: map[string]variants.Style{
					"primary": {
						boxVars["accent"]: tok.Color("primary"),
						boxVars["bg"]:     tok.Color("surface"),
					},
					"success": {
						boxVars["accent"]: tok.Color("success"),
						boxVars["bg"]:     tok.Color("surface"),
					},
					"danger": {
						boxVars["accent"]: tok.Color("danger"),
						boxVars["bg"]:     tok.Color("surface"),
					},
					"neutral": {
						boxVars["accent"]: tok.Color("neutral"),
						boxVars["bg"]:     tok.Color("surface"),
					},
				},
			},
			{
				Name: "size",
				Values: map[string]variants.Style{
					"small": {
						"paddingX": tok.Space("xs"),
					},
					"medium": {
						"paddingX": tok.Space("sm"),
					},
					"large": {
						"paddingX": tok.Space("md"),
						"paddingY": tok.Space("xs"),
					},
				},
			},
		},
		Defaults: map[string]string{
			"colorScheme": "primary",
			"size":        "medium",
		},
	}
})

// Box is a bordered container with colour-scheme and size axes. The accent
// and background colours go through variable indirection, so each colour
// scheme only rebinds two values instead of restating every property.
type Box struct {
	content  string
	props    variants.Props
	resolver *variants.Resolver
}

// NewBox binds the box schema to a theme. Binding fails only on
// misconfiguration (missing tokens), never on the contents of props.
func NewBox(th *theme.Theme, content string, props variants.Props) (*Box, error) {
	resolver, err := boxSchema.Bind(th)
	if err != nil {
		return nil, err
	}
	return &Box{content: content, props: props, resolver: resolver}, nil
}

// WithProps replaces the property bag.
func (b *Box) WithProps(props variants.Props) *Box {
	b.props = props
	return b
}

// WithContent replaces the rendered content.
func (b *Box) WithContent(content string) *Box {
	b.content = content
	return b
}

// Style returns the resolved style description for the current bag.
func (b *Box) Style() variants.Style {
	return b.resolver.Apply(b.props)
}

// View renders the box.
func (b *Box) View() string {
	st := render.Style(b.resolver.Apply(b.props))
	st = render.Apply(st, b.resolver.Filter(b.props))
	return st.Render(b.content)
}
