package cmd

import (
	"encoding/json"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/heartstage/internal/features"
	"github.com/abhisek/heartstage/internal/predict"
	"github.com/abhisek/heartstage/internal/ui/theme"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a stage from flag values (unset fields use their defaults)",
	Example: "  heartstage predict --age 63 --sex male --cp asymptomatic --oldpeak 2.3\n" +
		"  heartstage predict --thal 7 --ca 2 --json",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vectorFromFlags(cmd)
		if err != nil {
			return err
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		res, err := d.predictor.Predict(v)
		if err != nil {
			return fmt.Errorf("predict: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeJSON(cmd, v, res)
		}

		stage := lipgloss.NewStyle().
			Foreground(theme.StageColor(res.Color)).
			Bold(true).
			Render(res.Text)
		_, err = lipgloss.Fprintln(cmd.OutOrStdout(), "Prediction: "+stage)
		return err
	},
}

func init() {
	addFieldFlags(predictCmd)
	predictCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// addFieldFlags registers one string flag per form field, named by its key.
func addFieldFlags(cmd *cobra.Command) {
	for _, f := range features.Fields() {
		cmd.Flags().String(f.Key, "", fmt.Sprintf("%s [%s] (default %s)",
			f.Name, f.DomainString(), f.Format(f.DefaultValue())))
	}
}

// vectorFromFlags starts from the default form and applies every field
// flag that was given. Enumerated fields take a label or a code.
func vectorFromFlags(cmd *cobra.Command) (features.Vector, error) {
	form := features.NewForm()
	for _, f := range features.Fields() {
		if !cmd.Flags().Changed(f.Key) {
			continue
		}
		raw, _ := cmd.Flags().GetString(f.Key)
		v, err := f.Parse(raw)
		if err != nil {
			return features.Vector{}, fmt.Errorf("--%s: %w", f.Key, err)
		}
		if err := form.Set(f.Key, v); err != nil {
			return features.Vector{}, fmt.Errorf("--%s: %w", f.Key, err)
		}
	}
	return form.Vector(), nil
}

type predictionJSON struct {
	Label    int                `json:"label"`
	Stage    string             `json:"stage"`
	Color    string             `json:"color"`
	Features map[string]float64 `json:"features"`
}

func writeJSON(cmd *cobra.Command, v features.Vector, res predict.Result) error {
	out := predictionJSON{
		Label:    res.Label,
		Stage:    res.Text,
		Color:    res.Color,
		Features: make(map[string]float64, features.NumFeatures),
	}
	for i, key := range features.Keys() {
		out.Features[key] = v[i]
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
