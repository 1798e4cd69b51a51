package core

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the pipeline configuration
type Config struct {
	// Directory where HTML reports are published, one subtree per identifier
	OutputDir string `envconfig:"OUTPUT_DIR"`

	// Pytest executable invoked for each run
	PytestBin string `envconfig:"PYTEST_BIN"`

	// Hard wall-clock limit for one pytest run
	Timeout time.Duration `envconfig:"TIMEOUT"`

	// Optional gorm DSN; when empty no results are persisted
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Debug enables verbose logging
	Debug bool `envconfig:"DEBUG"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		OutputDir: "coverage_reports",
		PytestBin: "pytest",
		Timeout:   30 * time.Second,
	}
}

// fileConfig is the YAML shape; durations are strings so "10s" works.
type fileConfig struct {
	OutputDir   string `yaml:"output_dir"`
	PytestBin   string `yaml:"pytest_bin"`
	Timeout     string `yaml:"timeout"`
	DatabaseURL string `yaml:"database_url"`
	Debug       *bool  `yaml:"debug"`
}

// LoadConfig builds the effective configuration: defaults, overridden by an
// optional YAML file, overridden by PYCOV_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if fc.OutputDir != "" {
			cfg.OutputDir = fc.OutputDir
		}
		if fc.PytestBin != "" {
			cfg.PytestBin = fc.PytestBin
		}
		if fc.Timeout != "" {
			d, err := time.ParseDuration(fc.Timeout)
			if err != nil {
				return cfg, fmt.Errorf("parse config %s: bad timeout: %w", path, err)
			}
			cfg.Timeout = d
		}
		if fc.DatabaseURL != "" {
			cfg.DatabaseURL = fc.DatabaseURL
		}
		if fc.Debug != nil {
			cfg.Debug = *fc.Debug
		}
	}

	if err := envconfig.Process("pycov", &cfg); err != nil {
		return cfg, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg, nil
}
