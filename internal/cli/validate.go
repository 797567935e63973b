package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/profilekit/pkg/schema"
)

func newValidateCmd() *cobra.Command {
	var (
		typeName      string
		version       string
		releasedIn    string
		strictSupport bool
	)

	cmd := &cobra.Command{
		Use:   "validate <spec-file>",
		Short: "Validate a raw specification against a profile type schema",
		Long: "Normalize a raw specification file against the named profile type:\n" +
			"values are type-checked and coerced, defaults applied, and unknown\n" +
			"or missing fields reported. With --released-in, the schema's support\n" +
			"status at that release is resolved first and reported as a warning;\n" +
			"--strict-support turns an UNSUPPORTED resolution into an error.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], typeName, version, releasedIn, strictSupport)
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "profile type name (required)")
	cmd.Flags().StringVar(&version, "version", "", "schema version (default: latest)")
	cmd.Flags().StringVar(&releasedIn, "released-in", "", "platform release to resolve support status against")
	cmd.Flags().BoolVar(&strictSupport, "strict-support", false, "treat UNSUPPORTED status as an error")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runValidate(cmd *cobra.Command, specPath, typeName, version, releasedIn string, strictSupport bool) error {
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
	if releasedIn != "" {
		if err := reportSupport(cmd, reg, typeName, version, releasedIn, strictSupport); err != nil {
			return err
		}
	}

	raw, err := readSpecFile(specPath)
	if err != nil {
		return err
	}

	normalized, err := reg.Validate(typeName, version, raw)
	if err != nil {
		return err
	}

	return printDoc(cmd, map[string]any{
		"type":    normalized.TypeName,
		"version": normalized.Version,
		"spec":    normalized.Fields,
	})
}

// reportSupport resolves support status for the type-version and warns on
// anything other than SUPPORTED. The status is informational unless the
// caller asked for strict handling.
func reportSupport(cmd *cobra.Command, reg supportResolver, typeName, version, releasedIn string, strict bool) error {
	entry, err := reg.ResolveSupport(typeName, version, releasedIn)
	if err != nil {
		if errors.Is(err, schema.ErrUnsupportedVersion) && !strict {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s-%s predates release %s\n",
				typeName, version, releasedIn)
			return nil
		}
		return err
	}

	switch entry.Status {
	case schema.StatusDeprecated:
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s-%s is DEPRECATED since %s\n",
			typeName, version, entry.Since)
	case schema.StatusUnsupported:
		if strict {
			return fmt.Errorf("%s-%s is UNSUPPORTED since %s at release %s",
				typeName, version, entry.Since, releasedIn)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s-%s is UNSUPPORTED since %s\n",
			typeName, version, entry.Since)
	}
	return nil
}

// supportResolver is the slice of the registry reportSupport needs.
type supportResolver interface {
	ResolveSupport(typeName, version, referenceRelease string) (schema.SupportEntry, error)
}
