package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/Mbaelfire/Quality-Project/internal/spc"
)

// Config is the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
}

// LoggingConfig controls slog output
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"` // "json" or "text"
}

// PathsConfig contains file system paths
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// ChartsConfig carries the default chart tunables applied when the caller
// does not override them
type ChartsConfig struct {
	SubgroupSize  int     `yaml:"subgroup_size" envconfig:"SUBGROUP_SIZE"`
	EWMALambda    float64 `yaml:"ewma_lambda" envconfig:"EWMA_LAMBDA"`
	EWMALimit     float64 `yaml:"ewma_limit" envconfig:"EWMA_LIMIT"`
	CUSUMSlack    float64 `yaml:"cusum_slack" envconfig:"CUSUM_SLACK"`
	CUSUMInterval float64 `yaml:"cusum_interval" envconfig:"CUSUM_INTERVAL"`
}

// Default returns the configuration used when no file or environment
// overrides are present. The chart tunables are the conventional SPC
// defaults.
func Default() Config {
	ewma := spc.DefaultEWMAParams()
	cusum := spc.DefaultCUSUMParams()
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Paths:   PathsConfig{OutputDir: "reports"},
		Charts: ChartsConfig{
			SubgroupSize:  spc.DefaultXbarSubgroupSize,
			EWMALambda:    ewma.Lambda,
			EWMALimit:     ewma.L,
			CUSUMSlack:    cusum.K,
			CUSUMInterval: cusum.H,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at filePath
// (skipped when empty or missing), then SPC_* environment variables, each
// layer overriding the previous one.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			data, err := os.ReadFile(filePath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process("SPC", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// EWMAParams returns the configured EWMA tunables
func (c *Config) EWMAParams() spc.EWMAParams {
	return spc.EWMAParams{Lambda: c.Charts.EWMALambda, L: c.Charts.EWMALimit}
}

// CUSUMParams returns the configured CUSUM tunables
func (c *Config) CUSUMParams() spc.CUSUMParams {
	return spc.CUSUMParams{K: c.Charts.CUSUMSlack, H: c.Charts.CUSUMInterval}
}

// validate rejects configuration without a defined meaning
func (c *Config) validate() error {
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported logging format %q", c.Logging.Format)
	}

	if c.Charts.SubgroupSize < 1 || c.Charts.SubgroupSize > spc.MaxSubgroupSize {
		return fmt.Errorf("default subgroup size %d outside supported range [1,%d]", c.Charts.SubgroupSize, spc.MaxSubgroupSize)
	}
	if c.Charts.EWMALambda <= 0 || c.Charts.EWMALambda > 1 {
		return fmt.Errorf("ewma lambda %g outside (0,1]", c.Charts.EWMALambda)
	}
	if c.Charts.EWMALimit <= 0 {
		return fmt.Errorf("ewma limit width must be positive, got %g", c.Charts.EWMALimit)
	}
	if c.Charts.CUSUMSlack < 0 {
		return fmt.Errorf("cusum slack must not be negative, got %g", c.Charts.CUSUMSlack)
	}
	if c.Charts.CUSUMInterval <= 0 {
		return fmt.Errorf("cusum decision interval must be positive, got %g", c.Charts.CUSUMInterval)
	}

	return nil
}
