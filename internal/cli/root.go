// Package cli implements the profilectl command-line interface: schema
// inspection, specification validation, update authorization, and
// support-status queries against the registered profile type catalog.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	schemaDir string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "profilectl" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "profilectl",
		Short: "Inspect and validate profile type schemas",
		Long: "Profilectl works with the profile type catalog: it lists registered\n" +
			"schemas, validates specifications against them, authorizes updates,\n" +
			"and resolves per-release support status.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .profilekit)")
	root.PersistentFlags().StringVar(&flags.schemaDir, "schema-dir", "", "directory of schema declaration files")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newSupportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("PROFILEKIT_CONFIG_DIR"); v != "" {
		return v
	}
	return ".profilekit"
}

// printDoc renders a result document as YAML, or JSON in --json mode.
func printDoc(cmd *cobra.Command, doc any) error {
	if flags.jsonMode {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
