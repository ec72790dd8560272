package config

import (
	"fmt"
)

// Defaults for the records server.
const (
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8000
	DefaultPageLimit = 100
)

// Config holds the records server configuration.
type Config struct {
	// Host is the listen address.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	// Port is the HTTP listen port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	// LogFormat is the log output format (text, json).
	LogFormat string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
	// SeedFile points to a roster file loaded at startup. Empty means the
	// built-in example roster.
	SeedFile string `json:"seedFile,omitempty" yaml:"seedFile,omitempty"`
	// PageLimit is the default page size for list endpoints.
	PageLimit int `json:"pageLimit,omitempty" yaml:"pageLimit,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Host:      DefaultHost,
		Port:      DefaultPort,
		LogLevel:  "info",
		LogFormat: "text",
		PageLimit: DefaultPageLimit,
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.PageLimit < 1 {
		return fmt.Errorf("pageLimit must be positive, got %d", c.PageLimit)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logLevel must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("logFormat must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
