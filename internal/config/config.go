package config

import (
	"github.com/mvp-joe/grrs/internal/logging"
)

// Config represents the complete grrs configuration.
// It can be loaded from a .grrs.yaml file with environment variable overrides.
type Config struct {
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig configures diagnostic output on stderr. Matched lines are
// never affected by it.
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`           // off, error, warn, info, debug or trace
	Encoding   string `yaml:"encoding" mapstructure:"encoding"`     // "console" or "json"
	Timestamps bool   `yaml:"timestamps" mapstructure:"timestamps"` // prefix entries with an ISO8601 time
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "error",
			Encoding:   "console",
			Timestamps: false,
		},
	}
}

// Verbosity returns the configured log level. Callers should run
// Validate first; unknown names fall back to logging.Error.
func (c *Config) Verbosity() logging.Verbosity {
	v, err := logging.ParseVerbosity(c.Log.Level)
	if err != nil {
		return logging.Error
	}
	return v
}

// LoggingOptions returns the encoder options for logging.New.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Encoding:   c.Log.Encoding,
		Timestamps: c.Log.Timestamps,
	}
}
