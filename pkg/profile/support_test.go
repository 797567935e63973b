package profile

import (
	"errors"
	"testing"

	"github.com/dukaforge/profilekit/pkg/schema"
)

func TestResolveSupport(t *testing.T) {
	reg := newStackRegistry(t)

	tests := []struct {
		name       string
		release    string
		wantStatus string
		wantErr    error
	}{
		{"before first entry", "2015.01", "", schema.ErrUnsupportedVersion},
		{"at first entry", "2016.04", schema.StatusSupported, nil},
		{"after first entry", "2017.01", schema.StatusSupported, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := reg.ResolveSupport("os.heat.stack", "1.0", tt.release)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && entry.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", entry.Status, tt.wantStatus)
			}
		})
	}
}

func TestResolveSupportDeprecationLineage(t *testing.T) {
	reg := NewRegistry()
	spec := stackSpec("1.0")
	spec.Support = schema.SupportLedger{
		{Status: schema.StatusSupported, Since: "2016.04"},
		{Status: schema.StatusDeprecated, Since: "2017.10"},
		{Status: schema.StatusUnsupported, Since: "2018.04"},
	}
	if err := reg.Register(spec); err != nil {
		t.Fatalf("Register: %v", err)
	}

	entry, err := reg.ResolveSupport("os.heat.stack", "1.0", "2017.12")
	if err != nil {
		t.Fatalf("ResolveSupport: %v", err)
	}
	if entry.Status != schema.StatusDeprecated || entry.Since != "2017.10" {
		t.Errorf("entry = {%s %s}, want {DEPRECATED 2017.10}", entry.Status, entry.Since)
	}

	// UNSUPPORTED status never blocks validation by itself.
	if _, err := reg.Validate("os.heat.stack", "1.0", nil); err != nil {
		t.Errorf("Validate of an aging version: %v", err)
	}
}

func TestResolveSupportErrors(t *testing.T) {
	reg := newStackRegistry(t)

	if _, err := reg.ResolveSupport("os.nova.server", "1.0", "2017.01"); !errors.Is(err, ErrUnknownSchema) {
		t.Errorf("unknown schema: error = %v, want ErrUnknownSchema", err)
	}
	if _, err := reg.ResolveSupport("os.heat.stack", "1.0", "liberty"); !errors.Is(err, schema.ErrInvalidVersion) {
		t.Errorf("bad release: error = %v, want ErrInvalidVersion", err)
	}
}
