package profile

// ProfileSpec is a normalized specification produced by Validate: every
// supplied field coerced to its declared kind, defaults applied, and the
// owning (type name, version) recorded. The engine never retains a
// reference to one beyond the call that produced or consumed it.
type ProfileSpec struct {
	TypeName string
	Version  string
	Fields   map[string]any
}

// Get returns the value of a field and whether it is present. Optional
// fields without defaults stay absent after normalization.
func (s ProfileSpec) Get(name string) (any, bool) {
	v, ok := s.Fields[name]
	return v, ok
}
