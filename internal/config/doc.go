// Package config provides 12-factor configuration management for linea.
//
// Configuration is loaded from environment variables with sensible defaults.
// A YAML or TOML file may supply base values; environment variables that are
// set still win. CLI flags override both.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Vector: Default tolerance and maximum vector dimension
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Addr())
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - VECTOR_TOLERANCE, VECTOR_MAX_DIMENSION
package config
