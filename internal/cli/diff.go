package cli

import (
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var (
		typeName string
		version  string
	)

	cmd := &cobra.Command{
		Use:   "diff <current-spec> <proposed-spec>",
		Short: "Authorize an update from one specification to another",
		Long: "Validate the current specification, then check the proposed changes\n" +
			"against the schema's per-field updatable flags. The proposed file is\n" +
			"a partial patch: fields it omits keep their current values. On\n" +
			"success the merged specification is printed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1], typeName, version)
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "profile type name (required)")
	cmd.Flags().StringVar(&version, "version", "", "schema version (default: latest)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runDiff(cmd *cobra.Command, currentPath, proposedPath, typeName, version string) error {
	reg, _, err := buildCatalog()
	if err != nil {
		return err
	}

	version, err = resolveVersion(reg, typeName, version)
	if err != nil {
		return err
	}
	spec, err := reg.Lookup(typeName, version)
	if err != nil {
		return err
	}

	currentRaw, err := readSpecFile(currentPath)
	if err != nil {
		return err
	}
	current, err := reg.Validate(typeName, version, currentRaw)
	if err != nil {
		return err
	}

	proposedRaw, err := readSpecFile(proposedPath)
	if err != nil {
		return err
	}

	// Shape-check the patch before asking whether the change is
	// permitted; authorization itself never validates.
	proposed := make(map[string]any, len(proposedRaw))
	for name, value := range proposedRaw {
		if f, declared := spec.Fields[name]; declared {
			coerced, err := f.Coerce(value)
			if err != nil {
				return err
			}
			proposed[name] = coerced
			continue
		}
		proposed[name] = value
	}

	merged, err := reg.AuthorizeUpdate(typeName, version, current, proposed)
	if err != nil {
		return err
	}

	return printDoc(cmd, map[string]any{
		"type":    merged.TypeName,
		"version": merged.Version,
		"spec":    merged.Fields,
	})
}
