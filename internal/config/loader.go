package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseURLEnv overrides the configured base URL when set.
const BaseURLEnv = "EDGEPANEL_BASE_URL"

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "edgepanel", "config.yaml"), nil
}

// Load loads configuration from ~/.config/edgepanel/config.yaml.
// A missing or malformed file yields the defaults.
func Load() Config {
	cfg := DefaultConfig()

	path, err := Path()
	if err == nil {
		if loaded, err := LoadFile(path); err == nil {
			cfg = loaded
		}
	}

	return applyEnv(cfg)
}

// LoadFile reads a specific config file on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return applyEnv(cfg.Normalize()), nil
}

func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv(BaseURLEnv)); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}
