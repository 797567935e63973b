package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSupportCmd() *cobra.Command {
	var (
		version    string
		releasedIn string
	)

	cmd := &cobra.Command{
		Use:   "support <type>",
		Short: "Resolve the support status of a profile type version",
		Long: "Walk the schema version's support ledger and report the status in\n" +
			"effect at the given platform release.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSupport(cmd, args[0], version, releasedIn)
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "schema version (default: latest)")
	cmd.Flags().StringVar(&releasedIn, "released-in", "", "platform release (default: platform_release from config)")
	return cmd
}

func runSupport(cmd *cobra.Command, typeName, version, releasedIn string) error {
	reg, cfg, err := buildCatalog()
	if err != nil {
		return err
	}

	version, err = resolveVersion(reg, typeName, version)
	if err != nil {
		return err
	}
	if releasedIn == "" {
		releasedIn = cfg.PlatformRelease()
	}
	if releasedIn == "" {
		return fmt.Errorf("no platform release given: use --released-in or set platform_release in config")
	}

	entry, err := reg.ResolveSupport(typeName, version, releasedIn)
	if err != nil {
		return err
	}

	return printDoc(cmd, map[string]any{
		"type":     typeName,
		"version":  version,
		"released": releasedIn,
		"status":   entry.Status,
		"since":    entry.Since,
	})
}
