package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/heartstage/internal/artifact"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "heartstage", version)
		fmt.Fprintf(cmd.OutOrStdout(), "artifact format %s.x\n", artifact.SupportedMajor)
	},
}
