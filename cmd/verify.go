package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/heartstage/internal/artifact"
	"github.com/abhisek/heartstage/internal/features"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Load and verify the model artifacts",
	Long: "Loads the scaler and classifier exactly as the form does, checks them against " +
		"the checksum manifest when one is configured, and prints their metadata.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		out := cmd.OutOrStdout()
		printInfo(out, d.artifacts.ScalerInfo)
		printInfo(out, d.artifacts.ForestInfo)

		// A smoke prediction over the untouched form proves the pair works together.
		res, err := d.predictor.Predict(features.DefaultVector())
		if err != nil {
			return fmt.Errorf("smoke prediction: %w", err)
		}
		fmt.Fprintf(out, "trees:     %d\n", len(d.artifacts.Forest.Trees))
		fmt.Fprintf(out, "defaults:  label %d (%s)\n", res.Label, res.Text)

		if d.cfg.ChecksumsPath == "" {
			fmt.Fprintln(out, "\nNo checksum manifest configured; integrity not verified.")
		} else {
			fmt.Fprintf(out, "\nChecksums OK (%s)\n", d.cfg.ChecksumsPath)
		}
		return nil
	},
}

func printInfo(out io.Writer, info artifact.Info) {
	fmt.Fprintf(out, "%s\n", info.Kind)
	fmt.Fprintf(out, "  path:    %s\n", info.Path)
	fmt.Fprintf(out, "  format:  %s\n", info.FormatVersion)
	fmt.Fprintf(out, "  sha256:  %s\n", info.SHA256)

	keys := make([]string, 0, len(info.Metadata))
	for k := range info.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %-8s %s\n", k+":", info.Metadata[k])
	}
}
