package profile

import (
	"github.com/dukaforge/profilekit/pkg/schema"
)

// Validate resolves the schema registered under (typeName, version) and
// normalizes raw against it. It returns ErrUnknownSchema when no such
// schema exists, and surfaces the schema package's validation errors
// (unknown field, missing required field, type mismatch) unchanged.
// Validation is pure: the same schema and raw spec always produce the
// same result, and no state is touched.
func (r *Registry) Validate(typeName, version string, raw map[string]any) (ProfileSpec, error) {
	spec, err := r.Lookup(typeName, version)
	if err != nil {
		return ProfileSpec{}, err
	}
	return validateAgainst(spec, raw)
}

// ValidateLatest is Validate against the highest registered version of
// typeName.
func (r *Registry) ValidateLatest(typeName string, raw map[string]any) (ProfileSpec, error) {
	spec, err := r.LookupLatest(typeName)
	if err != nil {
		return ProfileSpec{}, err
	}
	return validateAgainst(spec, raw)
}

func validateAgainst(spec *schema.TypeSpec, raw map[string]any) (ProfileSpec, error) {
	normalized, err := schema.Normalize(spec.Fields, raw)
	if err != nil {
		return ProfileSpec{}, err
	}
	return ProfileSpec{
		TypeName: spec.Name,
		Version:  spec.Version,
		Fields:   normalized,
	}, nil
}
