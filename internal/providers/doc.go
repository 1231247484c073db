// Package providers implements the service provider system for linea.
//
// Service providers expose capabilities through a standardized tool-based
// interface. The vector provider wraps the linalg packages.
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	v := providers.NewVector(math.DefaultConfig())
//	result, err := v.Execute(ctx, "vector.dot", params, appCtx)
package providers
