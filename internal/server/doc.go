// Package server provides HTTP server setup and initialization for linea.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (request IDs, recovery, access logs, metrics, CORS, rate limiting)
//   - Service provider registration
//   - Prometheus metrics endpoint
//
// Server Lifecycle:
//  1. Load configuration from file, environment and flags
//  2. Initialize logger (production or development)
//  3. Register the vector provider
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
