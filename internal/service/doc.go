// Package service provides the service registry for linea provider management.
//
// The registry maintains a catalog of available service providers and handles
// service discovery, tool execution, and relevance scoring for free-text queries.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring
//   - Tool execution with context passing
//   - Per-call metrics and structured logging
//   - Service statistics and health
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Tool name matching
//   - Capability matching
//   - Category bonus for exact matches
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry(service.WithMetrics(metrics), service.WithLogger(logger))
//	registry.Register(vectorProvider)
//	services := registry.Discover("angle between vectors", 5)
//	result, err := registry.Execute(ctx, "vector.angle", params, appCtx)
package service
