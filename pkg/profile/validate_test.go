package profile

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dukaforge/profilekit/pkg/schema"
)

func TestValidateStackSpec(t *testing.T) {
	reg := newStackRegistry(t)

	got, err := reg.Validate("os.heat.stack", "1.0", map[string]any{
		"template_url": "http://x/y.yaml",
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if got.TypeName != "os.heat.stack" || got.Version != "1.0" {
		t.Errorf("binding = %s-%s, want os.heat.stack-1.0", got.TypeName, got.Version)
	}

	want := map[string]any{
		"template":         map[string]any{},
		"template_url":     "http://x/y.yaml",
		"parameters":       map[string]any{},
		"files":            map[string]any{},
		"environment":      map[string]any{},
		"disable_rollback": true,
	}
	if !reflect.DeepEqual(got.Fields, want) {
		t.Errorf("Fields = %#v, want %#v", got.Fields, want)
	}
	if _, present := got.Get("timeout"); present {
		t.Error("timeout must stay absent: no default and not supplied")
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	reg := newStackRegistry(t)
	_, err := reg.Validate("os.heat.stack", "3.0", nil)
	if !errors.Is(err, ErrUnknownSchema) {
		t.Fatalf("error = %v, want ErrUnknownSchema", err)
	}
}

func TestValidateUnknownField(t *testing.T) {
	reg := newStackRegistry(t)
	_, err := reg.Validate("os.heat.stack", "1.0", map[string]any{"bogus_field": 1})
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("error = %v, want ErrUnknownField", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	reg := NewRegistry()
	spec := stackSpec("1.0")
	spec.Fields["template"] = schema.FieldSpec{
		Name: "template", Kind: schema.KindMap, Required: true, Updatable: true,
	}
	if err := reg.Register(spec); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := reg.Validate("os.heat.stack", "1.0", map[string]any{})
	if !errors.Is(err, schema.ErrMissingRequiredField) {
		t.Fatalf("error = %v, want ErrMissingRequiredField", err)
	}
}

func TestValidateIdempotent(t *testing.T) {
	reg := newStackRegistry(t)

	first, err := reg.Validate("os.heat.stack", "1.0", map[string]any{
		"template_url": "http://x/y.yaml",
		"timeout":      60,
	})
	if err != nil {
		t.Fatalf("first Validate: %v", err)
	}

	second, err := reg.Validate("os.heat.stack", "1.0", first.Fields)
	if err != nil {
		t.Fatalf("second Validate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("not idempotent:\nfirst  = %#v\nsecond = %#v", first, second)
	}
}

func TestValidateLatest(t *testing.T) {
	reg := NewRegistry()
	for _, v := range []string{"1.0", "1.2"} {
		if err := reg.Register(stackSpec(v)); err != nil {
			t.Fatalf("Register %s: %v", v, err)
		}
	}

	got, err := reg.ValidateLatest("os.heat.stack", map[string]any{})
	if err != nil {
		t.Fatalf("ValidateLatest: %v", err)
	}
	if got.Version != "1.2" {
		t.Errorf("version = %s, want 1.2", got.Version)
	}
}
