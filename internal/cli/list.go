package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [type]",
		Short: "List registered profile types and versions",
		Long: "Without arguments, list every registered profile type with its\n" +
			"versions. With a type name, list only that type's versions.",
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	reg, _, err := buildCatalog()
	if err != nil {
		return err
	}

	var typeNames []string
	if len(args) == 1 {
		typeNames = []string{args[0]}
	} else {
		typeNames = reg.Types()
	}

	listing := make(map[string][]string, len(typeNames))
	for _, name := range typeNames {
		versions := reg.List(name)
		if len(versions) == 0 {
			return fmt.Errorf("profile type %q is not registered", name)
		}
		listing[name] = versions
	}
	return printDoc(cmd, listing)
}
