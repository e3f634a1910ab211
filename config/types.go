package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClientConfig holds the HTTP transport settings shared by every API
// client. The Roblox endpoints covered here are public, so there are
// no credentials.
type ClientConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
