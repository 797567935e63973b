package profile

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dukaforge/profilekit/pkg/schema"
)

func validatedStackSpec(t *testing.T, reg *Registry, raw map[string]any) ProfileSpec {
	t.Helper()
	spec, err := reg.Validate("os.heat.stack", "1.0", raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return spec
}

func TestAuthorizeUpdatePermittedFields(t *testing.T) {
	reg := newStackRegistry(t)
	current := validatedStackSpec(t, reg, map[string]any{"disable_rollback": true})

	merged, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, map[string]any{
		"disable_rollback": false,
		"timeout":          int64(60),
	})
	if err != nil {
		t.Fatalf("AuthorizeUpdate: %v", err)
	}

	if merged.Fields["disable_rollback"] != false {
		t.Errorf("disable_rollback = %v, want false", merged.Fields["disable_rollback"])
	}
	if merged.Fields["timeout"] != int64(60) {
		t.Errorf("timeout = %v, want 60", merged.Fields["timeout"])
	}
}

func TestAuthorizeUpdateImmutableField(t *testing.T) {
	reg := newStackRegistry(t)
	current := validatedStackSpec(t, reg, nil)

	_, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, map[string]any{
		"context": map[string]any{"region": "east"},
	})
	if !errors.Is(err, ErrImmutableFieldChanged) {
		t.Fatalf("error = %v, want ErrImmutableFieldChanged", err)
	}
	if !strings.Contains(err.Error(), `"context"`) {
		t.Errorf("error %q does not name the field", err.Error())
	}
}

func TestAuthorizeUpdateEqualValueOnImmutableField(t *testing.T) {
	reg := newStackRegistry(t)
	current := validatedStackSpec(t, reg, map[string]any{
		"context": map[string]any{"region": "east"},
	})

	// Restating the current value is not a change.
	merged, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, map[string]any{
		"context": map[string]any{"region": "east"},
	})
	if err != nil {
		t.Fatalf("AuthorizeUpdate: %v", err)
	}
	if !reflect.DeepEqual(merged.Fields, current.Fields) {
		t.Errorf("merged = %#v, want unchanged %#v", merged.Fields, current.Fields)
	}
}

func TestAuthorizeUpdateAbsentFieldKeepsCurrent(t *testing.T) {
	reg := newStackRegistry(t)
	current := validatedStackSpec(t, reg, map[string]any{
		"template_url": "http://x/y.yaml",
		"timeout":      60,
	})

	merged, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, map[string]any{
		"disable_rollback": false,
	})
	if err != nil {
		t.Fatalf("AuthorizeUpdate: %v", err)
	}

	// Partial patch: absent fields keep their current values rather than
	// being unset.
	if merged.Fields["template_url"] != "http://x/y.yaml" {
		t.Errorf("template_url = %v, want kept", merged.Fields["template_url"])
	}
	if merged.Fields["timeout"] != int64(60) {
		t.Errorf("timeout = %v, want kept", merged.Fields["timeout"])
	}
}

func TestAuthorizeUpdateUnknownField(t *testing.T) {
	reg := newStackRegistry(t)
	current := validatedStackSpec(t, reg, nil)

	_, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, map[string]any{
		"bogus_field": 1,
	})
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Fatalf("error = %v, want ErrUnknownField", err)
	}
}

func TestAuthorizeUpdateUnknownSchema(t *testing.T) {
	reg := newStackRegistry(t)
	_, err := reg.AuthorizeUpdate("os.nova.server", "1.0", ProfileSpec{}, nil)
	if !errors.Is(err, ErrUnknownSchema) {
		t.Fatalf("error = %v, want ErrUnknownSchema", err)
	}
}

// Every partition of changed fields into updatable-only must pass, and
// any partition touching an immutable field must fail.
func TestAuthorizeUpdatePartitions(t *testing.T) {
	reg := newStackRegistry(t)
	current := validatedStackSpec(t, reg, nil)

	updatable := map[string]any{
		"template":         map[string]any{"heat_template_version": "2015-04-30"},
		"template_url":     "http://x/z.yaml",
		"parameters":       map[string]any{"size": 2},
		"files":            map[string]any{"a.yaml": "content"},
		"timeout":          int64(30),
		"disable_rollback": false,
	}

	for name, value := range updatable {
		if _, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, map[string]any{name: value}); err != nil {
			t.Errorf("updatable field %q rejected: %v", name, err)
		}
	}

	for name, value := range updatable {
		patch := map[string]any{
			name:      value,
			"context": map[string]any{"region": "west"},
		}
		if _, err := reg.AuthorizeUpdate("os.heat.stack", "1.0", current, patch); !errors.Is(err, ErrImmutableFieldChanged) {
			t.Errorf("patch with immutable context plus %q: error = %v, want ErrImmutableFieldChanged", name, err)
		}
	}
}
