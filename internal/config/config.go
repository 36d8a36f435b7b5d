package config

import (
	"time"

	tlsconf "github.com/sadopc/edgepanel/internal/core/tls"
)

// Config holds the application configuration.
type Config struct {
	BaseURL        string           `yaml:"base_url"`
	Theme          string           `yaml:"theme"`
	VimMode        bool             `yaml:"vim_mode"`
	RequestTimeout time.Duration    `yaml:"request_timeout"`
	LogCapacity    int              `yaml:"log_capacity"`
	LogFile        string           `yaml:"log_file"`
	LogLevel       string           `yaml:"log_level"`
	TLS            tlsconf.Settings `yaml:"tls"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:3000",
		Theme:          "catppuccin-mocha",
		VimMode:        true,
		RequestTimeout: 10 * time.Second,
		LogCapacity:    50,
		LogFile:        "",
		LogLevel:       "info",
	}
}

// Normalize replaces out-of-range values with defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = def.LogCapacity
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}
