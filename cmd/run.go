package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/heartstage/internal/app"
)

// runApp loads the artifacts and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")

	d.logger.Info("tui start")
	err = app.Run(app.Options{
		Predictor:  d.predictor,
		Status:     "model " + d.artifacts.ForestInfo.FormatVersion,
		SkipSplash: noSplash,
	})
	d.logger.Info("tui exit")
	return err
}
