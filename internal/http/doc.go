// Package http provides HTTP handlers for the linea REST API.
//
// This package implements the endpoints using the Gin framework: status and
// health checks, service listing and discovery, and tool execution.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes
//   - Error response formatting
//   - Request validation
//
// Tool failures (bad operands, zero vectors) are returned with status 200 and
// success=false; routing failures map to 400 or 404.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
