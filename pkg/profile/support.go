package profile

import (
	"fmt"

	"github.com/dukaforge/profilekit/pkg/schema"
)

// ResolveSupport computes the support status of (typeName, version) as of
// referenceRelease: the ledger entry whose Since is the latest one not
// newer than the release. A release predating the earliest entry returns
// schema.ErrUnsupportedVersion.
//
// The status is informational. Nothing in the engine blocks validation of
// an UNSUPPORTED version; whether to warn or refuse is the caller's
// policy.
func (r *Registry) ResolveSupport(typeName, version, referenceRelease string) (schema.SupportEntry, error) {
	spec, err := r.Lookup(typeName, version)
	if err != nil {
		return schema.SupportEntry{}, err
	}
	ref, err := schema.ParseVersion(referenceRelease)
	if err != nil {
		return schema.SupportEntry{}, fmt.Errorf("reference release: %w", err)
	}
	entry, err := spec.Support.Resolve(ref)
	if err != nil {
		return schema.SupportEntry{}, fmt.Errorf("%s: %w", spec.ID(), err)
	}
	return entry, nil
}
