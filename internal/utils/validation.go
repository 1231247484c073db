package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Request limits
const (
	MaxRequestSize = 1 * 1024 * 1024 // 1MB - maximum JSON body size
	MaxQuerySize   = 1024            // discovery query length limit
	MaxParamsDepth = 4               // params are flat maps of arrays and scalars
	MaxDiscover    = 50              // upper bound on discovery results
)

var toolIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*\.[a-z][a-z0-9_.]*$`)

// ValidateToolID checks the service.tool format
func ValidateToolID(toolID string) error {
	if toolID == "" {
		return fmt.Errorf("tool_id is required")
	}
	if len(toolID) > 128 {
		return fmt.Errorf("tool_id exceeds 128 characters")
	}
	if !toolIDPattern.MatchString(toolID) {
		return fmt.Errorf("tool_id %q must look like service.tool", toolID)
	}
	return nil
}

// ValidateQuery checks a discovery query
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}
	if len(query) > MaxQuerySize {
		return fmt.Errorf("query size %d exceeds maximum %d", len(query), MaxQuerySize)
	}
	return nil
}

// ClampLimit bounds a discovery limit, defaulting non-positive values
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxDiscover {
		return MaxDiscover
	}
	return limit
}

// ValidateJSONDepth checks if JSON nesting depth is within limits
func ValidateJSONDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("JSON nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}
