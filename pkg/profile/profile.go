package profile

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Profile construction errors.
var (
	ErrProfileName = errors.New("profile name must not be empty")
	ErrProfileSpec = errors.New("profile spec does not reference a type")
)

// Profile binds a validated specification to a named instance. The ID is
// assigned once at creation; persistence and lifecycle belong to the
// orchestration layer, which moves profiles in and out of the engine
// through ToDict and ProfileFromDict.
type Profile struct {
	ID         string
	Name       string
	Permission string
	Spec       ProfileSpec
}

// NewProfile creates a profile around an already-validated spec and
// assigns it a fresh UUID.
func NewProfile(name string, spec ProfileSpec) (*Profile, error) {
	if name == "" {
		return nil, ErrProfileName
	}
	if spec.TypeName == "" || spec.Version == "" {
		return nil, ErrProfileSpec
	}
	return &Profile{
		ID:   uuid.NewString(),
		Name: name,
		Spec: spec,
	}, nil
}

// ToDict renders the profile as a plain map for the external persistence
// collaborator.
func (p *Profile) ToDict() map[string]any {
	return map[string]any{
		"id":         p.ID,
		"name":       p.Name,
		"type":       p.Spec.TypeName,
		"version":    p.Spec.Version,
		"permission": p.Permission,
		"spec":       p.Spec.Fields,
	}
}

// ProfileFromDict rebuilds a profile from its ToDict form. The spec
// fields are taken as already normalized; callers revalidate when the
// source is untrusted.
func ProfileFromDict(d map[string]any) (*Profile, error) {
	id, _ := d["id"].(string)
	name, _ := d["name"].(string)
	typeName, _ := d["type"].(string)
	version, _ := d["version"].(string)
	permission, _ := d["permission"].(string)
	fields, _ := d["spec"].(map[string]any)

	if name == "" {
		return nil, ErrProfileName
	}
	if typeName == "" || version == "" {
		return nil, fmt.Errorf("%q: %w", name, ErrProfileSpec)
	}
	return &Profile{
		ID:         id,
		Name:       name,
		Permission: permission,
		Spec: ProfileSpec{
			TypeName: typeName,
			Version:  version,
			Fields:   fields,
		},
	}, nil
}
