package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/common-creation/gocli/internal/greeting"
)

// Config represents the complete configuration for GOCLI
type Config struct {
	// Greeting configuration
	Greeting GreetingConfig `yaml:"greeting" json:"greeting"`

	// Calc configuration
	Calc CalcConfig `yaml:"calc" json:"calc"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// UI configuration
	UI UIConfig `yaml:"ui" json:"ui"`
}

// GreetingConfig contains greeting related configuration
type GreetingConfig struct {
	// Name is the default name used when the --name flag is not given
	Name string `yaml:"name" json:"name"`
}

// CalcConfig contains calculator related configuration
type CalcConfig struct {
	// Operation is the default operation used when --operation is not given.
	// Valid values: "add", "multiply"
	Operation string `yaml:"operation" json:"operation"`
}

// LoggingConfig contains logging related configuration
type LoggingConfig struct {
	// Level can be "debug", "info", "warn" or "error"
	Level string `yaml:"level" json:"level"`
}

// UIConfig contains terminal output configuration
type UIConfig struct {
	// NoColor disables colored status output
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// NewDefaultConfig creates a configuration with default values, applying
// environment variable overrides.
func NewDefaultConfig() *Config {
	cfg := &Config{
		Greeting: GreetingConfig{
			Name: greeting.DefaultName,
		},
		Calc: CalcConfig{
			Operation: "add",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			NoColor: false,
		},
	}

	applyEnvironmentOverrides(cfg)

	return cfg
}

// applyEnvironmentOverrides applies GOCLI_* environment variables on top of
// the current values.
func applyEnvironmentOverrides(cfg *Config) {
	if name := os.Getenv("GOCLI_NAME"); name != "" {
		cfg.Greeting.Name = name
	}
	if op := os.Getenv("GOCLI_OPERATION"); op != "" {
		cfg.Calc.Operation = op
	}
	if level := os.Getenv("GOCLI_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		cfg.UI.NoColor = true
	} else if v := os.Getenv("GOCLI_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.NoColor = b
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch c.Calc.Operation {
	case "add", "multiply":
	default:
		return fmt.Errorf("invalid default operation: %q", c.Calc.Operation)
	}

	return nil
}
