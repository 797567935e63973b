package profile

import (
	"fmt"
	"reflect"

	"github.com/dukaforge/profilekit/pkg/schema"
)

// AuthorizeUpdate decides whether proposed may replace current under the
// schema's per-field updatable flags, and returns the merged spec on
// success. proposed is a partial patch: a field absent from it keeps its
// current value, which is distinct from setting the field to a zero
// value. A differing value on a field declared Updatable=false returns
// ErrImmutableFieldChanged naming the field and both values.
//
// AuthorizeUpdate never validates shape. Callers run Validate on the
// proposed content first; this function only answers whether the change
// is permitted.
func (r *Registry) AuthorizeUpdate(typeName, version string, current ProfileSpec, proposed map[string]any) (ProfileSpec, error) {
	spec, err := r.Lookup(typeName, version)
	if err != nil {
		return ProfileSpec{}, err
	}

	merged := make(map[string]any, len(current.Fields))
	for name, value := range current.Fields {
		merged[name] = value
	}

	for name, value := range proposed {
		f, declared := spec.Fields[name]
		if !declared {
			return ProfileSpec{}, fmt.Errorf("spec item %q: %w", name, schema.ErrUnknownField)
		}
		currentValue, had := current.Fields[name]
		if had && reflect.DeepEqual(currentValue, value) {
			continue
		}
		if !f.Updatable {
			return ProfileSpec{}, fmt.Errorf("field %q: %v -> %v: %w",
				name, currentValue, value, ErrImmutableFieldChanged)
		}
		merged[name] = value
	}

	return ProfileSpec{
		TypeName: spec.Name,
		Version:  spec.Version,
		Fields:   merged,
	}, nil
}
