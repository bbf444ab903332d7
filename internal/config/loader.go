package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed config.example.yaml
var embeddedConfigSample string

// Loader handles configuration loading and saving
type Loader struct {
	// Config file paths in priority order
	searchPaths []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		searchPaths: getDefaultSearchPaths(),
	}
}

// Load loads configuration from file and environment variables. An empty
// explicitPath means the default search paths are consulted; a missing
// config file is not an error.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	// Start with default configuration
	cfg := NewDefaultConfig()

	// Find config file
	configPath := ""
	if explicitPath != "" {
		// Use explicitly provided path
		if !fileExists(explicitPath) {
			return nil, fmt.Errorf("config file not found: %s", explicitPath)
		}
		configPath = explicitPath
	} else {
		// Search for config file
		for _, path := range l.searchPaths {
			if fileExists(path) {
				configPath = path
				break
			}
		}
	}

	// Load from file if found
	if configPath != "" {
		fileCfg, err := loadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		// Merge file config into default config
		mergeConfig(cfg, fileCfg)

		// File values never beat explicit environment overrides
		applyEnvironmentOverrides(cfg)
	}

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// WriteDefault writes the embedded sample configuration to the default
// config path. It refuses to overwrite an existing file.
func (l *Loader) WriteDefault() (string, error) {
	path := DefaultConfigPath()
	if path == "" {
		return "", fmt.Errorf("cannot determine home directory")
	}
	if fileExists(path) {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(embeddedConfigSample), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

// DefaultConfigPath returns the preferred location for the config file.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "gocli", "config.yaml")
}

// getDefaultSearchPaths returns config file locations in priority order.
func getDefaultSearchPaths() []string {
	paths := []string{}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".config", "gocli", "config.yaml"),
			filepath.Join(homeDir, ".gocli.yaml"),
		)
	}

	// Current directory last
	paths = append(paths, ".gocli.yaml")

	return paths
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Greeting.Name != "" {
		dst.Greeting.Name = src.Greeting.Name
	}
	if src.Calc.Operation != "" {
		dst.Calc.Operation = src.Calc.Operation
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.UI.NoColor {
		dst.UI.NoColor = true
	}
}

// loadFromFile parses a yaml config file into a Config.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return &cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
