package declfile

import (
	"embed"
	"fmt"

	"github.com/dukaforge/profilekit/pkg/profile"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// RegisterBuiltins loads the declaration documents shipped with the
// engine into the registry and returns the number of schemas registered.
// External declarations loaded afterward may add types and versions but
// cannot replace a builtin (the registry rejects duplicates).
func RegisterBuiltins(reg *profile.Registry) (int, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return 0, fmt.Errorf("read builtin declarations: %w", err)
	}

	count := 0
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return count, fmt.Errorf("read builtin %s: %w", e.Name(), err)
		}
		specs, err := Parse(data)
		if err != nil {
			return count, fmt.Errorf("builtin %s: %w", e.Name(), err)
		}
		for _, spec := range specs {
			if err := reg.Register(spec); err != nil {
				return count, fmt.Errorf("builtin %s: register %s: %w", e.Name(), spec.ID(), err)
			}
			count++
		}
	}
	return count, nil
}
