package schema

// Value kinds determine what values a field accepts. The set is closed:
// adding a kind is a deliberate extension of this enum, not ad hoc
// dispatch on whatever shows up in a declaration file.
const (
	KindBoolean = "Boolean"
	KindInteger = "Integer"
	KindFloat   = "Float"
	KindString  = "String"
	KindMap     = "Map"
	KindList    = "List"
)

// validKinds is the set of recognized value kinds.
var validKinds = map[string]bool{
	KindBoolean: true,
	KindInteger: true,
	KindFloat:   true,
	KindString:  true,
	KindMap:     true,
	KindList:    true,
}

// Kinds lists all value kinds in declaration order, for enumeration and
// error messages.
var Kinds = []string{
	KindBoolean,
	KindInteger,
	KindFloat,
	KindString,
	KindMap,
	KindList,
}

// IsValidKind reports whether the given string is a recognized value kind.
func IsValidKind(kind string) bool {
	return validKinds[kind]
}
