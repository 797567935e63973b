package schema

import (
	"errors"
	"reflect"
	"testing"
)

func validTypeSpec() *TypeSpec {
	return &TypeSpec{
		Name:    "os.heat.stack",
		Version: "1.0",
		Fields:  stackFields(),
		Support: SupportLedger{{StatusSupported, "2016.04"}},
	}
}

func TestTypeSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TypeSpec)
		wantErr error
	}{
		{"valid", func(*TypeSpec) {}, nil},
		{"empty name", func(s *TypeSpec) { s.Name = "" }, ErrInvalidName},
		{"bad version", func(s *TypeSpec) { s.Version = "one" }, ErrInvalidVersion},
		{"field key mismatch", func(s *TypeSpec) {
			s.Fields["alias"] = FieldSpec{Name: "timeout", Kind: KindInteger}
		}, ErrInvalidName},
		{"invalid field", func(s *TypeSpec) {
			s.Fields["bad"] = FieldSpec{Name: "bad", Kind: "Decimal"}
		}, ErrInvalidKind},
		{"required with default", func(s *TypeSpec) {
			s.Fields["bad"] = FieldSpec{Name: "bad", Kind: KindInteger, Required: true, Default: 1}
		}, ErrRequiredWithDefault},
		{"bad ledger", func(s *TypeSpec) {
			s.Support = SupportLedger{{"GONE", "2016.04"}}
		}, ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validTypeSpec()
			tt.mutate(spec)
			err := spec.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTypeSpecID(t *testing.T) {
	spec := validTypeSpec()
	if got := spec.ID(); got != "os.heat.stack-1.0" {
		t.Errorf("ID() = %q, want %q", got, "os.heat.stack-1.0")
	}
}

func TestTypeSpecFieldNamesSorted(t *testing.T) {
	names := validTypeSpec().FieldNames()
	want := []string{
		"context", "disable_rollback", "environment", "files",
		"parameters", "template", "template_url", "timeout",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("FieldNames() = %v, want %v", names, want)
	}
}

func TestTypeSpecCloneIsIndependent(t *testing.T) {
	spec := validTypeSpec()
	clone := spec.Clone()

	clone.Fields["parameters"].Default.(map[string]any)["polluted"] = true
	clone.Support[0] = SupportEntry{StatusUnsupported, "2016.04"}

	if len(spec.Fields["parameters"].Default.(map[string]any)) != 0 {
		t.Error("clone shares container defaults with the original")
	}
	if spec.Support[0].Status != StatusSupported {
		t.Error("clone shares the support ledger with the original")
	}
}
