// Package declfile parses profile type declaration documents: the YAML
// (or JSON) form in which plugins declare a profile type's fields and
// per-version support history. A document yields one TypeSpec per version
// listed under support_status; the loader feeds them to a registry at
// process start.
package declfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/profilekit/pkg/schema"
)

// Declaration document errors.
var (
	ErrBadDocument    = errors.New("malformed declaration document")
	ErrMissingName    = errors.New("declaration must carry a type_name")
	ErrMissingVersion = errors.New("declaration must list at least one version under support_status")
)

// document mirrors the declaration file structure.
type document struct {
	TypeName      string                        `yaml:"type_name"`
	Schema        map[string]fieldDecl          `yaml:"schema"`
	SupportStatus map[string][]supportEntryDecl `yaml:"support_status"`
}

type fieldDecl struct {
	Type string `yaml:"type"`
	// Pointer so an empty container default ({}) survives encoding; a nil
	// pointer means the field declares no default at all.
	Default     *any   `yaml:"default,omitempty"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Updatable   bool   `yaml:"updatable,omitempty"`
}

type supportEntryDecl struct {
	Status string `yaml:"status"`
	Since  string `yaml:"since"`
}

// Parse decodes a declaration document and returns one TypeSpec per
// version listed under support_status, ordered ascending by version.
// Unknown document keys are rejected; the same strictness the validator
// applies to spec fields applies to declarations. Field and ledger
// invariants are not checked here: the registry validates on Register,
// and keeping Parse permissive lets tooling inspect broken declarations.
func Parse(data []byte) ([]*schema.TypeSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	if doc.TypeName == "" {
		return nil, ErrMissingName
	}
	if len(doc.SupportStatus) == 0 {
		return nil, fmt.Errorf("type %q: %w", doc.TypeName, ErrMissingVersion)
	}

	fields := make(map[string]schema.FieldSpec, len(doc.Schema))
	for name, f := range doc.Schema {
		var def any
		if f.Default != nil {
			def = *f.Default
		}
		fields[name] = schema.FieldSpec{
			Name:        name,
			Kind:        f.Type,
			Default:     def,
			Required:    f.Required,
			Updatable:   f.Updatable,
			Description: f.Description,
		}
	}

	versions := make([]string, 0, len(doc.SupportStatus))
	for v := range doc.SupportStatus {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		a, errA := schema.ParseVersion(versions[i])
		b, errB := schema.ParseVersion(versions[j])
		if errA != nil || errB != nil {
			return versions[i] < versions[j]
		}
		return a.Less(b)
	})

	specs := make([]*schema.TypeSpec, 0, len(versions))
	for _, v := range versions {
		ledger := make(schema.SupportLedger, 0, len(doc.SupportStatus[v]))
		for _, e := range doc.SupportStatus[v] {
			ledger = append(ledger, schema.SupportEntry{Status: e.Status, Since: e.Since})
		}
		spec := &schema.TypeSpec{
			Name:    doc.TypeName,
			Version: v,
			Fields:  fields,
			Support: ledger,
		}
		// Versions beyond the first get their own field map copy so the
		// registry clones stay independent even before registration.
		if len(specs) > 0 {
			spec = spec.Clone()
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ParseFile reads and parses one declaration file.
func ParseFile(path string) ([]*schema.TypeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declaration: %w", err)
	}
	specs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// Encode renders a TypeSpec back into declaration YAML, for display and
// for writing example declarations.
func Encode(spec *schema.TypeSpec) ([]byte, error) {
	doc := document{
		TypeName:      spec.Name,
		Schema:        make(map[string]fieldDecl, len(spec.Fields)),
		SupportStatus: map[string][]supportEntryDecl{},
	}
	for name, f := range spec.Fields {
		decl := fieldDecl{
			Type:        f.Kind,
			Description: f.Description,
			Required:    f.Required,
			Updatable:   f.Updatable,
		}
		if f.HasDefault() {
			def := f.Default
			decl.Default = &def
		}
		doc.Schema[name] = decl
	}
	entries := make([]supportEntryDecl, 0, len(spec.Support))
	for _, e := range spec.Support {
		entries = append(entries, supportEntryDecl{Status: e.Status, Since: e.Since})
	}
	doc.SupportStatus[spec.Version] = entries

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode declaration: %w", err)
	}
	return out, nil
}
