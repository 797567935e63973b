package declfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dukaforge/profilekit/pkg/profile"
)

// declExtensions lists the file extensions LoadDir treats as declaration
// documents.
var declExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// LoadDir ingests every declaration file in dir into the registry and
// returns the number of schemas registered. Files load in name order and
// loading is fail-fast: the first bad declaration or registration
// conflict stops the load with the file named in the error. Discovery of
// where dir comes from belongs to the caller.
func LoadDir(reg *profile.Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read schema directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !declExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	count := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		specs, err := ParseFile(path)
		if err != nil {
			return count, err
		}
		for _, spec := range specs {
			if err := reg.Register(spec); err != nil {
				return count, fmt.Errorf("%s: register %s: %w", path, spec.ID(), err)
			}
			count++
		}
	}
	return count, nil
}
