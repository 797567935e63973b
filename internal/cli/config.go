// Config loading for the profilectl CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeySchemaDir       = "schema_dir"
	cfgKeyPlatformRelease = "platform_release"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Profilectl configuration

# Directory of profile type declaration files loaded into the catalog
# alongside the builtin types.
# schema_dir:

# Platform release used to resolve support status when --released-in
# is not given.
# platform_release:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error; the builtin catalog is
// always available without configuration.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveSchemaDir returns the declarations directory from flag, env, or
// config; empty means builtins only.
func resolveSchemaDir(cfg *viper.Viper) string {
	if flags.schemaDir != "" {
		return flags.schemaDir
	}
	if v := os.Getenv("PROFILEKIT_SCHEMA_DIR"); v != "" {
		return v
	}
	return cfg.GetString(cfgKeySchemaDir)
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory. Idempotent.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
