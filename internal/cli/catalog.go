// Shared helpers for profilectl commands: catalog construction and spec
// file parsing.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dukaforge/profilekit/internal/declfile"
	"github.com/dukaforge/profilekit/pkg/profile"
)

// buildCatalog loads config, registers the builtin profile types, and
// ingests declarations from the configured schema directory, if any.
func buildCatalog() (*profile.Registry, *viperConfig, error) {
	cfg, err := loadConfig(resolveConfigDir())
	if err != nil {
		return nil, nil, err
	}

	reg := profile.NewRegistry()
	if _, err := declfile.RegisterBuiltins(reg); err != nil {
		return nil, nil, fmt.Errorf("register builtin types: %w", err)
	}

	if dir := resolveSchemaDir(cfg); dir != "" {
		if _, err := declfile.LoadDir(reg, dir); err != nil {
			return nil, nil, fmt.Errorf("load schema directory: %w", err)
		}
	}
	return reg, &viperConfig{cfg}, nil
}

// viperConfig wraps the loaded config with typed accessors.
type viperConfig struct {
	v interface{ GetString(string) string }
}

// PlatformRelease returns the configured platform release, or empty.
func (c *viperConfig) PlatformRelease() string {
	return c.v.GetString(cfgKeyPlatformRelease)
}

// readSpecFile reads a raw specification document (YAML or JSON) into a
// map. An empty file yields an empty spec.
func readSpecFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse spec %s: %w", path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// resolveVersion picks the explicit version or falls back to the latest
// registered version of the type.
func resolveVersion(reg *profile.Registry, typeName, version string) (string, error) {
	if version != "" {
		return version, nil
	}
	spec, err := reg.LookupLatest(typeName)
	if err != nil {
		return "", err
	}
	return spec.Version, nil
}
