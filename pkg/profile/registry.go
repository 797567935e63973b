package profile

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dukaforge/profilekit/pkg/schema"
)

// Registry is the process-wide catalog of profile type schemas, keyed by
// (type name, version). Reads go through an immutable snapshot swapped
// atomically on registration, so steady-state lookups take no lock and an
// in-flight validation never observes a schema mid-update. Late
// registration (hot reload) is serialized behind a single writer mutex.
type Registry struct {
	mu   sync.Mutex
	snap atomic.Pointer[snapshot]
}

// snapshot is an immutable view of the catalog: type name to version to
// schema. Registration builds a fresh snapshot; nothing mutates one in
// place.
type snapshot struct {
	types map[string]map[string]*schema.TypeSpec
}

var emptySnapshot = &snapshot{types: map[string]map[string]*schema.TypeSpec{}}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.snap.Store(emptySnapshot)
	return r
}

// Register adds a schema to the catalog. It returns ErrInvalidSchema
// (wrapping the cause) when the schema violates its own invariants, and
// ErrDuplicateSchema when the (name, version) pair is already present.
// The registry stores a deep copy; later mutation by the caller cannot
// leak into registered state.
func (r *Registry) Register(spec *schema.TypeSpec) error {
	if spec == nil {
		return fmt.Errorf("nil schema: %w", ErrInvalidSchema)
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.snap.Load()
	if _, ok := current.types[spec.Name][spec.Version]; ok {
		return fmt.Errorf("%s: %w", spec.ID(), ErrDuplicateSchema)
	}

	next := &snapshot{types: make(map[string]map[string]*schema.TypeSpec, len(current.types)+1)}
	for name, versions := range current.types {
		next.types[name] = versions
	}
	versions := make(map[string]*schema.TypeSpec, len(current.types[spec.Name])+1)
	for v, s := range current.types[spec.Name] {
		versions[v] = s
	}
	versions[spec.Version] = spec.Clone()
	next.types[spec.Name] = versions

	r.snap.Store(next)
	return nil
}

// Lookup returns the schema registered under (typeName, version), or
// ErrUnknownSchema. The returned spec belongs to the registry's immutable
// snapshot and must not be modified.
func (r *Registry) Lookup(typeName, version string) (*schema.TypeSpec, error) {
	spec, ok := r.snap.Load().types[typeName][version]
	if !ok {
		return nil, fmt.Errorf("%s-%s: %w", typeName, version, ErrUnknownSchema)
	}
	return spec, nil
}

// LookupLatest returns the schema with the highest version registered for
// typeName, ordered by semantic version comparison.
func (r *Registry) LookupLatest(typeName string) (*schema.TypeSpec, error) {
	versions := r.snap.Load().types[typeName]
	if len(versions) == 0 {
		return nil, fmt.Errorf("%s: %w", typeName, ErrUnknownSchema)
	}

	var (
		best        *schema.TypeSpec
		bestVersion schema.Version
	)
	for v, spec := range versions {
		parsed, err := schema.ParseVersion(v)
		if err != nil {
			// Registration validates versions; an unparseable one here
			// would be a registry bug.
			return nil, fmt.Errorf("%s-%s: %w", typeName, v, ErrUnknownSchema)
		}
		if best == nil || bestVersion.Less(parsed) {
			best = spec
			bestVersion = parsed
		}
	}
	return best, nil
}

// List returns the registered versions for typeName in ascending order.
// The slice is a fresh copy on every call; iterating it is restartable
// and unaffected by concurrent registration.
func (r *Registry) List(typeName string) []string {
	versions := r.snap.Load().types[typeName]
	out := make([]string, 0, len(versions))
	for v := range versions {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, errA := schema.ParseVersion(out[i])
		b, errB := schema.ParseVersion(out[j])
		if errA != nil || errB != nil {
			return out[i] < out[j]
		}
		return a.Less(b)
	})
	return out
}

// Types returns all registered type names, sorted.
func (r *Registry) Types() []string {
	snap := r.snap.Load()
	out := make([]string, 0, len(snap.types))
	for name := range snap.types {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
