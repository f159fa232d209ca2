package config

import "time"

// Config represents the main configuration structure
type Config struct {
	Strip   StripConfig   `yaml:"strip" mapstructure:"strip"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
}

// StripConfig controls which emoji blocks are removed and how files are
// rewritten.
type StripConfig struct {
	Blocks       []string `yaml:"blocks" mapstructure:"blocks"`
	BackupSuffix string   `yaml:"backup_suffix" mapstructure:"backup_suffix"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // json or console
	File   struct {
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
		Path    string `yaml:"path" mapstructure:"path"`
	} `yaml:"file" mapstructure:"file"`
}

// ServerConfig contains HTTP server configuration for serve mode.
type ServerConfig struct {
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RateLimit    struct {
		Enabled        bool `yaml:"enabled" mapstructure:"enabled"`
		RequestsPerMin int  `yaml:"requests_per_min" mapstructure:"requests_per_min"`
		Burst          int  `yaml:"burst" mapstructure:"burst"`
	} `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// GetDefaults returns a configuration with sensible defaults
func GetDefaults() *Config {
	cfg := &Config{
		Strip: StripConfig{
			Blocks:       []string{"all"},
			BackupSuffix: ".bak",
		},
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
		},
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
			MaxBodyBytes: 10 << 20, // 10 MiB
		},
	}

	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.RequestsPerMin = 300
	cfg.Server.RateLimit.Burst = 50

	return cfg
}
