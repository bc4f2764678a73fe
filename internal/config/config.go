// Package config loads tool configuration from environment variables
// (prefix GAMRY) and an optional YAML file. Struct-tag defaults apply
// first, then environment variables, then file values.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete tool configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Parsing ParsingConfig `yaml:"parsing" envconfig:"PARSING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/gamrycli.log"`
}

// PathsConfig contains the default signal and report directories.
type PathsConfig struct {
	SignalsDir string `yaml:"signals_dir" envconfig:"SIGNALS_DIR" default:"data/signals"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
}

// ParsingConfig contains signal construction settings.
type ParsingConfig struct {
	// DefaultArea is the electrode area in cm2 assumed when a file's notes
	// do not carry one.
	DefaultArea float64 `yaml:"default_area" envconfig:"DEFAULT_AREA" default:"1.0" validate:"gt=0"`
	// ReferenceCapacitance is the areal capacitance (F/cm2) corner-fit
	// factors are expressed against.
	ReferenceCapacitance float64 `yaml:"reference_capacitance" envconfig:"REFERENCE_CAPACITANCE" default:"20e-6" validate:"gt=0"`
	// Workers bounds concurrent file parses during batch loading.
	Workers int `yaml:"workers" envconfig:"WORKERS" default:"1" validate:"min=1"`
}

// configFile is probed when GAMRY_CONFIG_FILE is unset.
const configFile = "gamrycli.yaml"

// Load builds configuration from defaults, environment variables and an
// optional YAML file, then validates the result. A partial YAML file only
// overrides the keys it names.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("GAMRY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	path := os.Getenv("GAMRY_CONFIG_FILE")
	if path == "" {
		path = configFile
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
