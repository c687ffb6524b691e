package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration.
type Config struct {
	// ModelPath is the classifier artifact. Default: "rf.json".
	ModelPath string `yaml:"model_path"`

	// ScalerPath is the scaler artifact. Default: "scaler.json".
	ScalerPath string `yaml:"scaler_path"`

	// ChecksumsPath is an optional sha256 manifest covering both artifacts.
	ChecksumsPath string `yaml:"checksums_path"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	// Path is the log file. "-" disables logging. Empty means DefaultLogPath.
	Path string `yaml:"path"`

	// Level is a zap level name. Default: "info".
	Level string `yaml:"level"`
}

// DisabledLogPath turns logging off when used as LogConfig.Path.
const DisabledLogPath = "-"

// DefaultConfig returns a Config with the artifact locations the
// application has always used.
func DefaultConfig() Config {
	return Config{
		ModelPath:  "rf.json",
		ScalerPath: "scaler.json",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (if
// non-empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	// Relative paths in a config file are relative to that file.
	base := filepath.Dir(path)
	if file.ModelPath != "" {
		c.ModelPath = resolve(base, file.ModelPath)
	}
	if file.ScalerPath != "" {
		c.ScalerPath = resolve(base, file.ScalerPath)
	}
	if file.ChecksumsPath != "" {
		c.ChecksumsPath = resolve(base, file.ChecksumsPath)
	}
	if file.Log.Path != "" {
		c.Log.Path = file.Log.Path
		if file.Log.Path != DisabledLogPath {
			c.Log.Path = resolve(base, file.Log.Path)
		}
	}
	if file.Log.Level != "" {
		c.Log.Level = file.Log.Level
	}
	return nil
}

func (c *Config) applyEnv() {
	if p := os.Getenv("HEARTSTAGE_MODEL"); p != "" {
		c.ModelPath = p
	}
	if p := os.Getenv("HEARTSTAGE_SCALER"); p != "" {
		c.ScalerPath = p
	}
	if p := os.Getenv("HEARTSTAGE_CHECKSUMS"); p != "" {
		c.ChecksumsPath = p
	}
	if p := os.Getenv("HEARTSTAGE_LOG_FILE"); p != "" {
		c.Log.Path = p
	}
	if l := os.Getenv("HEARTSTAGE_LOG_LEVEL"); l != "" {
		c.Log.Level = l
	}
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	var errs []error
	if c.ModelPath == "" {
		errs = append(errs, errors.New("model path is required"))
	}
	if c.ScalerPath == "" {
		errs = append(errs, errors.New("scaler path is required"))
	}
	return errors.Join(errs...)
}

// DefaultConfigPath returns the config file used when none is given, or
// "" if it does not exist. Resolution order:
// 1. HEARTSTAGE_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/heartstage/config.yaml
// 3. ~/.config/heartstage/config.yaml
func DefaultConfigPath() string {
	if p := os.Getenv("HEARTSTAGE_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	p := filepath.Join(configHome, "heartstage", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/heartstage/heartstage.log
// 2. ~/.local/state/heartstage/heartstage.log
// The parent directory is created.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "heartstage", "heartstage.log")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
