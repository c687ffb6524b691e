package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/heartstage/internal/artifact"
	"github.com/abhisek/heartstage/internal/config"
	"github.com/abhisek/heartstage/internal/logging"
	"github.com/abhisek/heartstage/internal/predict"
)

var rootCmd = &cobra.Command{
	Use:   "heartstage",
	Short: "Heart disease stage prediction",
	Long: "HeartStage — terminal form that predicts a heart-disease stage from thirteen " +
		"clinical measurements using a pre-trained random forest.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (overrides HEARTSTAGE_CONFIG env var)")
	pf.String("model", "", "Path to the classifier artifact (overrides HEARTSTAGE_MODEL)")
	pf.String("scaler", "", "Path to the scaler artifact (overrides HEARTSTAGE_SCALER)")
	pf.String("checksums", "", "Path to a sha256 manifest covering both artifacts")
	pf.String("log-file", "", `Log file path, "-" disables logging`)
	pf.String("log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.Flags().Bool("no-splash", false, "Open the form without the splash screen")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file named by --config (or the default
// location), applies environment overrides, then flag overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"model", &cfg.ModelPath},
		{"scaler", &cfg.ScalerPath},
		{"checksums", &cfg.ChecksumsPath},
		{"log-file", &cfg.Log.Path},
		{"log-level", &cfg.Log.Level},
	}
	for _, o := range overrides {
		if v, _ := cmd.Flags().GetString(o.flag); v != "" {
			*o.target = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// deps is everything a command needs to predict.
type deps struct {
	cfg       config.Config
	logger    *zap.Logger
	artifacts *artifact.Set
	predictor predict.Predictor
}

// newLogger resolves config and opens the logger. The caller syncs it.
func newLogger(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("open log: %w", err)
	}
	return cfg, logger, nil
}

// loadDeps loads the artifacts and builds a logging predictor over them.
// A missing or corrupt artifact is fatal: the returned error wraps an
// *artifact.ArtifactLoadError.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	cfg, logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg, logger: logger}

	set, err := artifact.Load(artifact.Paths{
		Scaler:    cfg.ScalerPath,
		Model:     cfg.ModelPath,
		Checksums: cfg.ChecksumsPath,
	})
	if err != nil {
		logger.Error("load artifacts", zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	d.artifacts = set

	engine, err := predict.New(set.Scaler, set.Forest)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("build predictor: %w", err)
	}
	d.predictor = predict.WithLogging(engine, logger)

	logger.Info("artifacts loaded",
		zap.String("model", set.ForestInfo.Path),
		zap.String("model_version", set.ForestInfo.FormatVersion),
		zap.String("scaler", set.ScalerInfo.Path),
		zap.Int("trees", len(set.Forest.Trees)),
	)
	return d, nil
}

func (d *deps) close() {
	if d != nil && d.logger != nil {
		_ = d.logger.Sync()
	}
}
