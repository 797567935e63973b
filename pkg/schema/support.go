package schema

import "fmt"

// Support statuses describe the lifecycle state of a schema version as of
// a given platform release.
const (
	StatusSupported   = "SUPPORTED"
	StatusDeprecated  = "DEPRECATED"
	StatusUnsupported = "UNSUPPORTED"
)

// validStatuses is the set of recognized support statuses.
var validStatuses = map[string]bool{
	StatusSupported:   true,
	StatusDeprecated:  true,
	StatusUnsupported: true,
}

// IsValidStatus reports whether the given string is a recognized support status.
func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// SupportEntry marks one status transition: the schema version carries
// Status from release Since onward, until a later entry supersedes it.
type SupportEntry struct {
	Status string
	Since  string
}

// SupportLedger is the ordered status history of one schema version. The
// last entry by release order is the version's current status.
type SupportLedger []SupportEntry

// Validate checks that every entry carries a recognized status and a
// parseable release marker, and that entries ascend strictly by release.
// The status sequence itself is unconstrained: the data model does not
// force UNSUPPORTED to be terminal.
func (l SupportLedger) Validate() error {
	var prev Version
	for i, e := range l {
		if !IsValidStatus(e.Status) {
			return fmt.Errorf("entry %d: status %q: %w", i, e.Status, ErrInvalidStatus)
		}
		since, err := ParseVersion(e.Since)
		if err != nil {
			return fmt.Errorf("entry %d: since: %w", i, err)
		}
		if i > 0 && since.Compare(prev) <= 0 {
			return fmt.Errorf("entry %d: since %q does not advance past %q: %w",
				i, e.Since, prev, ErrLedgerOrder)
		}
		prev = since
	}
	return nil
}

// Resolve returns the entry in effect at the reference release: the latest
// entry whose Since is not newer than ref. When ref predates the earliest
// entry, or the ledger is empty, it returns ErrUnsupportedVersion.
func (l SupportLedger) Resolve(ref Version) (SupportEntry, error) {
	var (
		found  bool
		result SupportEntry
	)
	for _, e := range l {
		since, err := ParseVersion(e.Since)
		if err != nil {
			return SupportEntry{}, fmt.Errorf("entry since: %w", err)
		}
		if since.Compare(ref) > 0 {
			break
		}
		result = e
		found = true
	}
	if !found {
		return SupportEntry{}, fmt.Errorf("release %q: %w", ref, ErrUnsupportedVersion)
	}
	return result, nil
}
