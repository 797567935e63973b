package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldSpec declares one named, typed attribute of a profile type schema.
type FieldSpec struct {
	Name        string // Unique within a schema (required, non-empty).
	Kind        string // One of the Kind constants.
	Default     any    // Optional kind-conformant value; nil means no default.
	Required    bool   // Must be supplied by the caller; excludes Default.
	Updatable   bool   // May be changed after creation.
	Description string // Free text, non-normative.
}

// Validate checks the registration-time invariants of the field spec.
// A required field with a default is contradictory and rejected.
func (f FieldSpec) Validate() error {
	if f.Name == "" {
		return ErrInvalidName
	}
	if !IsValidKind(f.Kind) {
		return fmt.Errorf("field %q: kind %q: %w", f.Name, f.Kind, ErrInvalidKind)
	}
	if f.Required && f.Default != nil {
		return fmt.Errorf("field %q: %w", f.Name, ErrRequiredWithDefault)
	}
	if f.Default != nil {
		if _, err := f.Coerce(f.Default); err != nil {
			return fmt.Errorf("field %q: %w: %v", f.Name, ErrInvalidDefault, err)
		}
	}
	return nil
}

// HasDefault reports whether the field declares a default value.
func (f FieldSpec) HasDefault() bool {
	return f.Default != nil
}

// DefaultValue returns a deep copy of the field's default, so container
// defaults are never shared by reference across normalized specs.
func (f FieldSpec) DefaultValue() any {
	return deepCopyValue(f.Default)
}

// Coerce checks value against the field's kind and returns its normalized
// form. Scalars require an exact type match or a documented coercion:
// numeric strings convert to Integer/Float when they parse cleanly, the
// strings "true" and "false" convert to Boolean, and integers widen to
// Float. Container values are deep-copied so the result does not alias
// caller-owned data. Every other mismatch returns ErrTypeMismatch wrapped
// with the field name, the expected kind, and a description of the value.
func (f FieldSpec) Coerce(value any) (any, error) {
	switch f.Kind {
	case KindBoolean:
		return f.coerceBoolean(value)
	case KindInteger:
		return f.coerceInteger(value)
	case KindFloat:
		return f.coerceFloat(value)
	case KindString:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case KindMap:
		if m, ok := value.(map[string]any); ok {
			return deepCopyMap(m), nil
		}
	case KindList:
		switch v := value.(type) {
		case []any:
			return deepCopyList(v), nil
		case []string:
			out := make([]any, len(v))
			for i, s := range v {
				out[i] = s
			}
			return out, nil
		}
	}
	return nil, f.mismatch(value)
}

func (f FieldSpec) coerceBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return nil, f.mismatch(value)
}

// coerceInteger normalizes integral values to int64. Floats are accepted
// only when integral, since decoders commonly deliver whole numbers as
// float64.
func (f FieldSpec) coerceInteger(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, f.mismatch(value)
		}
		return int64(v), nil
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v), nil
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int64(v), nil
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, nil
		}
	}
	return nil, f.mismatch(value)
}

func (f FieldSpec) coerceFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if x, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return x, nil
		}
	}
	return nil, f.mismatch(value)
}

func (f FieldSpec) mismatch(value any) error {
	return fmt.Errorf("field %q: expected %s, got %s: %w",
		f.Name, f.Kind, describeValue(value), ErrTypeMismatch)
}

// describeValue renders a received value for error messages.
func describeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", v)
	case bool:
		return fmt.Sprintf("boolean %v", v)
	case map[string]any:
		return "map"
	case []any:
		return "list"
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}

// deepCopyValue copies nested maps and lists; scalars are returned as-is.
func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return deepCopyMap(v)
	case []any:
		return deepCopyList(v)
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return v
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyList(l []any) []any {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = deepCopyValue(v)
	}
	return out
}
