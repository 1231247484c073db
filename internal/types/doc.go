// Package types provides shared data structures for the linea service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Service discovery by free-text query
package types
