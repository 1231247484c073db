package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// override copies one environment-backed field from src to dst.
type override struct {
	key   string
	apply func(dst, src *Config)
}

var overrides = []override{
	{"PORT", func(d, s *Config) { d.Server.Port = s.Server.Port }},
	{"HOST", func(d, s *Config) { d.Server.Host = s.Server.Host }},
	{"LOG_LEVEL", func(d, s *Config) { d.Logging.Level = s.Logging.Level }},
	{"LOG_DEV", func(d, s *Config) { d.Logging.Development = s.Logging.Development }},
	{"RATE_LIMIT_RPS", func(d, s *Config) { d.RateLimit.RequestsPerSecond = s.RateLimit.RequestsPerSecond }},
	{"RATE_LIMIT_BURST", func(d, s *Config) { d.RateLimit.Burst = s.RateLimit.Burst }},
	{"RATE_LIMIT_ENABLED", func(d, s *Config) { d.RateLimit.Enabled = s.RateLimit.Enabled }},
	{"RATE_LIMIT_GLOBAL", func(d, s *Config) { d.RateLimit.Global = s.RateLimit.Global }},
	{"VECTOR_TOLERANCE", func(d, s *Config) { d.Vector.Tolerance = s.Vector.Tolerance }},
	{"VECTOR_MAX_DIMENSION", func(d, s *Config) { d.Vector.MaxDimension = s.Vector.MaxDimension }},
}

// LoadFile reads a YAML or TOML file over the defaults, then applies any
// environment variables that are set.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	env, err := Load()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if _, ok := os.LookupEnv(o.key); ok {
			o.apply(cfg, env)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data over the defaults. ext selects the format and must be
// one of .yaml, .yml or .toml.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}

	return cfg, nil
}
