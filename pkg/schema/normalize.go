package schema

import "fmt"

// Normalize validates a raw specification against a field set and returns
// the normalized form: supplied values coerced to their declared kinds,
// absent optional fields filled from deep-copied defaults, and absent
// fields without defaults omitted. Keys not declared in the field set are
// rejected rather than dropped, so a typo never silently reaches the
// orchestration layer. Normalize is a pure function and is idempotent:
// normalizing its own output yields an equal map.
func Normalize(fields map[string]FieldSpec, raw map[string]any) (map[string]any, error) {
	for key := range raw {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("spec item %q: %w", key, ErrUnknownField)
		}
	}

	normalized := make(map[string]any, len(fields))
	for name, f := range fields {
		value, present := raw[name]
		switch {
		case present:
			coerced, err := f.Coerce(value)
			if err != nil {
				return nil, err
			}
			normalized[name] = coerced
		case f.Required:
			return nil, fmt.Errorf("field %q: %w", name, ErrMissingRequiredField)
		case f.HasDefault():
			// Defaults go through the same coercion as supplied values, so
			// an Integer default declared as a plain number normalizes to
			// the same representation either way. Coerce also deep-copies
			// container defaults.
			coerced, err := f.Coerce(f.Default)
			if err != nil {
				return nil, fmt.Errorf("field %q: default: %w", name, err)
			}
			normalized[name] = coerced
		}
	}
	return normalized, nil
}
