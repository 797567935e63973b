package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/profilekit/internal/declfile"
)

func newShowCmd() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "show <type>",
		Short: "Show the declaration of a profile type schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], version)
		},
	}
	cmd.Flags().StringVar(&version, "version", "", "schema version (default: latest)")
	return cmd
}

func runShow(cmd *cobra.Command, typeName, version string) error {
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

	if flags.jsonMode {
		doc := map[string]any{
			"type_name": spec.Name,
			"version":   spec.Version,
			"fields":    spec.FieldNames(),
		}
		return printDoc(cmd, doc)
	}

	out, err := declfile.Encode(spec)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
