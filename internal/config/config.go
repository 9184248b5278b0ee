// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"corrosion-rate/core/units"
	"corrosion-rate/internal/errors"
	"corrosion-rate/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. CORROSION_FORMAT.
const EnvPrefix = "CORROSION"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Report contains PDF report configuration
	Report ReportConfig `json:"report"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// Unit is the unit uniform rates are reported in
	Unit units.Unit `json:"unit"`

	// Precision is the number of decimal places results are rounded to
	Precision int32 `json:"precision"`

	// ShowSeverity adds the rate severity band to tabular output
	ShowSeverity bool `json:"show_severity"`
}

// ReportConfig contains PDF report settings
type ReportConfig struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Environment holds the CORROSION_* overrides applied on top of the file.
type Environment struct {
	Format    string `split_words:"true"`
	Unit      string `split_words:"true"`
	Precision *int32 `split_words:"true"`
	LogLevel  string `split_words:"true"`
	LogFormat string `split_words:"true"`
	LogOutput string `split_words:"true"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			Unit:          units.MMPerYear,
			Precision:     6,
			ShowSeverity:  true,
		},
		Report: ReportConfig{
			Title: "Corrosion Rate Report",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.corrosion-rate.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".corrosion-rate.json")
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config", err).WithContext("path", path)
	}

	return config, config.Validate()
}

// LoadEnv reads an optional .env file into the process environment and then
// applies CORROSION_* overrides. Variables already set in the environment win
// over the .env file.
func (c *Config) LoadEnv(dotenvPath string) error {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !os.IsNotExist(err) {
			return errors.Config("failed to load env file", err).WithContext("path", dotenvPath)
		}
	}

	var env Environment
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Config("invalid environment override", err)
	}
	c.apply(env)
	return c.Validate()
}

func (c *Config) apply(env Environment) {
	if env.Format != "" {
		c.Output.DefaultFormat = env.Format
	}
	if env.Unit != "" {
		c.Output.Unit = units.Unit(env.Unit)
	}
	if env.Precision != nil {
		c.Output.Precision = *env.Precision
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.LogOutput != "" {
		c.Logging.Output = env.LogOutput
	}
}

// Validate checks the settings that later stages cannot recover from and
// normalizes unit aliases.
func (c *Config) Validate() error {
	unit, err := units.ParseUnit(string(c.Output.Unit))
	if err != nil {
		return errors.Config("invalid output unit", err)
	}
	c.Output.Unit = unit
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		return errors.Newf(errors.TypeConfig, "precision must be between 0 and 12, got %d", c.Output.Precision)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
