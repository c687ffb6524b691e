package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/heartstage/internal/features"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the form fields in model input order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("help-text")
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%2s  %-9s  %-40s  %-24s  %s\n",
			"#", "Key", "Name", "Default", "Domain")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for i, f := range features.Fields() {
			name := f.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			fmt.Fprintf(out, "%2d  %-9s  %-40s  %-24s  %s\n",
				i, f.Key, name, f.Format(f.DefaultValue()), f.DomainString())

			if verbose {
				for _, line := range strings.Split(f.Help, "\n") {
					fmt.Fprintf(out, "%15s%s\n", "", line)
				}
			}
		}

		fmt.Fprintf(out, "\n%d fields\n", features.NumFeatures)
		return nil
	},
}

func init() {
	fieldsCmd.Flags().Bool("help-text", false, "Include each field's help text")
}
