package schema

import (
	"fmt"
	"sort"
)

// TypeSpec is a named, versioned profile type schema: a set of field
// specifications plus the support status ledger for this version.
// Instances handed to the registry are treated as immutable.
type TypeSpec struct {
	Name    string               // Stable identifier, e.g. "os.heat.stack".
	Version string               // Schema version, e.g. "1.0".
	Fields  map[string]FieldSpec // Keyed by field name.
	Support SupportLedger        // Status history for this version.
}

// ID returns the canonical type-version identifier, e.g. "os.heat.stack-1.0".
func (t *TypeSpec) ID() string {
	return t.Name + "-" + t.Version
}

// Validate checks the registration-time invariants: a non-empty name, a
// parseable version, consistent field map keys, every field spec valid on
// its own, and a well-formed support ledger.
func (t *TypeSpec) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("type name must not be empty: %w", ErrInvalidName)
	}
	if _, err := ParseVersion(t.Version); err != nil {
		return fmt.Errorf("type %q: version: %w", t.Name, err)
	}
	for name, f := range t.Fields {
		if name != f.Name {
			return fmt.Errorf("type %q: field keyed %q declares name %q: %w",
				t.Name, name, f.Name, ErrInvalidName)
		}
		if err := f.Validate(); err != nil {
			return fmt.Errorf("type %q: %w", t.Name, err)
		}
	}
	if err := t.Support.Validate(); err != nil {
		return fmt.Errorf("type %q: support ledger: %w", t.Name, err)
	}
	return nil
}

// FieldNames returns the schema's field names in sorted order.
func (t *TypeSpec) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for name := range t.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the type spec, including container
// defaults and the support ledger.
func (t *TypeSpec) Clone() *TypeSpec {
	fields := make(map[string]FieldSpec, len(t.Fields))
	for name, f := range t.Fields {
		f.Default = deepCopyValue(f.Default)
		fields[name] = f
	}
	support := make(SupportLedger, len(t.Support))
	copy(support, t.Support)
	return &TypeSpec{
		Name:    t.Name,
		Version: t.Version,
		Fields:  fields,
		Support: support,
	}
}
