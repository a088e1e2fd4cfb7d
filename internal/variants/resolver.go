package variants

import "github.com/alexisbeaulieu97/glaze/internal/theme"

// Resolver is a schema bound to one theme. Both are read-only after
// construction, so concurrent Apply and Filter calls need no coordination.
type Resolver struct {
	theme    *theme.Theme
	base     Style
	groups   []Group
	defaults map[string]string
	axes     map[string]struct{}
}

// Theme returns the theme this resolver was bound to.
func (r *Resolver) Theme() *theme.Theme {
	return r.theme
}

// Apply computes the concrete style for a property bag. Per axis, in
// declaration order: the effective value is props[axis] when present and
// non-nil, else the declared default; a value outside the axis's declared
// set contributes nothing. Total over arbitrary input and free of side
// effects — the shared base and variant maps are never mutated.
func (r *Resolver) Apply(props Props) Style {
	out := r.base.clone()

	for _, group := range r.groups {
		effective, declared := r.defaults[group.Name]
		if raw, present := props[group.Name]; present && raw != nil {
			name, isName := raw.(string)
			if !isName {
				continue
			}
			effective, declared = name, true
		}
		if !declared {
			continue
		}
		if contribution, ok := group.Values[effective]; ok {
			mergeInto(out, contribution)
		}
	}

	return out
}

// Filter returns a new bag containing every entry of props except keys that
// name a declared variant axis, so the rendering primitive never receives a
// variant selection as a literal attribute. Total and idempotent.
func (r *Resolver) Filter(props Props) Props {
	out := make(Props, len(props))
	for k, v := range props {
		if _, isAxis := r.axes[k]; isAxis {
			continue
		}
		out[k] = v
	}
	return out
}
