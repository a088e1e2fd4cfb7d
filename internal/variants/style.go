// Package variants implements theme-bound style-variant resolution: a
// component declares a base style plus named variant axes, and a resolver
// merges a caller's axis choices into one concrete style description while
// filtering the axis-selection keys out of the forwarded property bag.
package variants

// Style is a declarative style description: a mapping from style-property
// name to a scalar value or a nested Style block (variable declarations,
// pseudo-states). It describes the desired final appearance, never a
// sequence of mutations.
type Style map[string]any

// Props is the caller-supplied property bag: variant-selection keys mixed
// with pass-through keys destined for the rendering primitive.
type Props map[string]any

// asStyle normalises nested blocks. Factories usually write nested Style
// literals, but decoded data may carry plain maps.
func asStyle(v any) (Style, bool) {
	switch block := v.(type) {
	case Style:
		return block, true
	case map[string]any:
		return Style(block), true
	default:
		return nil, false
	}
}

// clone deep-copies a style so merges never leak writes into shared
// declarations.
func (s Style) clone() Style {
	if s == nil {
		return Style{}
	}
	out := make(Style, len(s))
	for k, v := range s {
		if block, ok := asStyle(v); ok {
			out[k] = block.clone()
			continue
		}
		out[k] = v
	}
	return out
}

// mergeInto lays src over dst property-by-property. Nested blocks are merged
// key-by-key rather than replaced wholesale, so two axes can each contribute
// different variable bindings without clobbering each other.
func mergeInto(dst, src Style) {
	for k, v := range src {
		srcBlock, srcIsBlock := asStyle(v)
		if !srcIsBlock {
			dst[k] = v
			continue
		}
		if dstBlock, ok := asStyle(dst[k]); ok {
			merged := dstBlock.clone()
			mergeInto(merged, srcBlock)
			dst[k] = merged
			continue
		}
		dst[k] = srcBlock.clone()
	}
}
