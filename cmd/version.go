package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "learncode", version)
		if cat, err := catalog.Builtin(); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "built-in catalog", cat.Version())
		}
	},
}
