package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Logging   LogConfig       `yaml:"logging" toml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit"`
	Vector    VectorConfig    `yaml:"vector" toml:"vector"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000" yaml:"port" toml:"port"`
	Host string `envconfig:"HOST" default:"0.0.0.0" yaml:"host" toml:"host"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" yaml:"requests_per_second" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" yaml:"burst" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" yaml:"enabled" toml:"enabled"`
	// Global shares one bucket across all clients instead of one per IP.
	Global bool `envconfig:"RATE_LIMIT_GLOBAL" default:"false" yaml:"global" toml:"global"`
}

// VectorConfig holds defaults for the vector service.
type VectorConfig struct {
	Tolerance    float64 `envconfig:"VECTOR_TOLERANCE" default:"0.001" yaml:"tolerance" toml:"tolerance"`
	MaxDimension int     `envconfig:"VECTOR_MAX_DIMENSION" default:"4096" yaml:"max_dimension" toml:"max_dimension"`
}

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
			Global:            false,
		},
		Vector: VectorConfig{
			Tolerance:    tolerance.Default,
			MaxDimension: 4096,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := tolerance.Validate(c.Vector.Tolerance); err != nil {
		return fmt.Errorf("%w: vector tolerance: %v", ErrInvalid, err)
	}
	if c.Vector.MaxDimension < 1 {
		return fmt.Errorf("%w: vector max dimension must be positive, got %d", ErrInvalid, c.Vector.MaxDimension)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond < 1 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("%w: rate limit needs positive rps and burst", ErrInvalid)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
