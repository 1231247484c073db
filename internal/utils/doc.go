// Package utils provides request validation helpers for the HTTP layer.
//
// Validation:
//   - Tool ID format (service.tool)
//   - Discovery query and limit bounds
//   - JSON nesting depth for tool params
//
// Example Usage:
//
//	if err := utils.ValidateToolID(req.ToolID); err != nil {
//		return err
//	}
package utils
