// =============================================================================
// CSV to JSON Converter - Configuration Module
// =============================================================================
//
// This module holds the fixed input and output paths and loads the optional
// config.yaml that tunes the normalization policy and logging.
//
// CONFIGURATION FILES:
//   config.yaml (optional, working directory): log level and null tokens.
//   When the file is absent, defaults are used.
//
// FIXED SETTINGS:
//   The input and output paths are constants. They are never read from the
//   config file, the command line or the environment.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// FIXED PATHS
// =============================================================================

const (
	// InputPath is the CSV file read on every run.
	InputPath = "examples/data.csv"

	// OutputPath is the JSON file written on every run.
	OutputPath = "examples/data.json"

	// FileName is the optional configuration file looked up in the
	// working directory.
	FileName = "config.yaml"

	// DefaultLogLevel keeps a normal run quiet apart from the confirmation.
	DefaultLogLevel = "warn"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputPath is always the InputPath constant.
	InputPath string `yaml:"-"`

	// OutputPath is always the OutputPath constant.
	OutputPath string `yaml:"-"`

	// LogLevel controls the verbosity of diagnostic logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// NullTokens lists literal cell values that normalize to null, compared
	// case-insensitively after trimming.
	// Example: ["null", "none"]
	// Default: empty (such cells stay strings)
	NullTokens []string `yaml:"null_tokens"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file.
//
// A missing file is not an error: the defaults are returned. A file that
// exists but cannot be read, parsed or validated is an error.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset options and pins the paths.
func applyDefaults(config *Config) {
	config.InputPath = InputPath
	config.OutputPath = OutputPath

	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
}

// validate checks the loaded configuration.
func validate(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	for i, token := range config.NullTokens {
		if strings.TrimSpace(token) == "" {
			return fmt.Errorf("null_tokens[%d] is blank", i)
		}
	}

	return nil
}
