package variants

import (
	"fmt"
	"sync/atomic"

	glazeerrors "github.com/alexisbeaulieu97/glaze/pkg/errors"
)

// varSeq hands out one sequence number per variable set, so identifiers
// generated for different schemas can never collide.
var varSeq atomic.Uint64

// VarSet maps short logical names to generated variable identifiers. The
// same identifier serves both as a style key when a variant branch declares
// the variable's value and as a string value when the base style references
// it; identifiers are stable for the lifetime of the schema they were
// created for.
type VarSet map[string]string

// NewVarSet allocates an identifier for each logical name. Duplicate
// logical names are a ConfigurationError.
func NewVarSet(names ...string) (VarSet, error) {
	seq := varSeq.Add(1)
	set := make(VarSet, len(names))
	for _, name := range names {
		if _, dup := set[name]; dup {
			return nil, glazeerrors.NewConfigurationError(
				"variables", fmt.Sprintf("duplicate logical name %q", name), nil)
		}
		set[name] = fmt.Sprintf("--glz%d-%s", seq, name)
	}
	return set, nil
}

// MustVarSet is NewVarSet for package-level definitions, where a duplicate
// logical name is a programming error.
func MustVarSet(names ...string) VarSet {
	set, err := NewVarSet(names...)
	if err != nil {
		panic(err)
	}
	return set
}

// IsVar reports whether a style key or string value is a generated variable
// identifier.
func IsVar(s string) bool {
	return len(s) > 2 && s[0] == '-' && s[1] == '-'
}
