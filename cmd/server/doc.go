// Package main is the entry point for the linea vector service.
//
// The server exposes the vector algebra provider over HTTP:
//   - Service listing and discovery
//   - Tool execution (vector.add, vector.angle, vector.cross, ...)
//   - Health and Prometheus metrics
//
// Configuration:
//   - Optional YAML or TOML file (-config)
//   - Environment variables (12-factor), which override the file
//   - CLI flags, which override both
//   - Without -config, invalid environment values fall back to defaults
//
// Usage:
//
//	# Production mode
//	./server -config linea.yaml -port 8000
//
//	# Development mode (console logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
