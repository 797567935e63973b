package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the profilectl release version.
const Version = "0.1.0"

const modulePath = "github.com/dukaforge/profilekit"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the profilectl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "profilectl v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
