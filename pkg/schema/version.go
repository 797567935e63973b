package schema

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted numeric identifier. It covers both schema versions
// ("1.0") and platform release markers ("2016.04"); the two share one
// ordering so support ledgers can be resolved against either.
type Version struct {
	segments []int
	raw      string
}

// ParseVersion parses a dotted numeric version string. Every segment must
// be a non-negative integer; an empty string or a non-numeric segment
// returns ErrInvalidVersion.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%q: %w", s, ErrInvalidVersion)
	}
	parts := strings.Split(trimmed, ".")
	segments := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%q: %w", s, ErrInvalidVersion)
		}
		segments[i] = n
	}
	return Version{segments: segments, raw: trimmed}, nil
}

// Compare orders versions segment by segment; a missing segment compares
// as zero, so "1.0" equals "1.0.0".
func (v Version) Compare(other Version) int {
	n := max(len(v.segments), len(other.segments))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(v.segment(i), other.segment(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String returns the version as originally written.
func (v Version) String() string {
	return v.raw
}

func (v Version) segment(i int) int {
	if i >= len(v.segments) {
		return 0
	}
	return v.segments[i]
}
