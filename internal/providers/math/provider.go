package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
	"github.com/GriffinCanCode/linea/internal/providers/math/common"
	"github.com/GriffinCanCode/linea/internal/providers/math/operations"
	"github.com/GriffinCanCode/linea/internal/providers/math/utilities"
	"github.com/GriffinCanCode/linea/internal/types"
)

// Config holds provider defaults
type Config struct {
	Tolerance    float64
	MaxDimension int
}

// DefaultConfig returns the provider defaults
func DefaultConfig() Config {
	return Config{
		Tolerance:    tolerance.Default,
		MaxDimension: 4096,
	}
}

// Provider implements vector algebra operations
type Provider struct {
	// Module instances
	arithmetic *operations.ArithmeticOps
	geometry   *operations.GeometryOps
	tolerance  *utilities.ToleranceOps
}

// NewProvider creates a modular vector provider
func NewProvider(cfg Config) *Provider {
	ops := &common.MathOps{
		Tolerance:    cfg.Tolerance,
		MaxDimension: cfg.MaxDimension,
	}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{MathOps: ops},
		geometry:   &operations.GeometryOps{MathOps: ops},
		tolerance:  &utilities.ToleranceOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.geometry.GetTools()...)
	tools = append(tools, m.tolerance.GetTools()...)

	return types.Service{
		ID:          "vector",
		Name:        "Vector Service",
		Description: "Immutable vector algebra (arithmetic, products, angles, projections, tolerance helpers)",
		Category:    types.CategoryVector,
		Capabilities: []string{
			"arithmetic",
			"products",
			"angles",
			"projections",
			"areas",
			"tolerance",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name: "Vector",
				Fields: map[string]string{
					"result":    "array of numbers",
					"dimension": "integer",
					"display":   "string",
				},
			},
		},
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "vector.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "vector.subtract":
		return m.arithmetic.Subtract(ctx, params, appCtx)
	case "vector.scale":
		return m.arithmetic.Scale(ctx, params, appCtx)
	case "vector.equals":
		return m.arithmetic.Equals(ctx, params, appCtx)
	case "vector.magnitude":
		return m.arithmetic.Magnitude(ctx, params, appCtx)
	case "vector.is_zero":
		return m.arithmetic.IsZero(ctx, params, appCtx)
	case "vector.unit":
		return m.arithmetic.Unit(ctx, params, appCtx)

	// Geometry operations
	case "vector.dot":
		return m.geometry.Dot(ctx, params, appCtx)
	case "vector.angle":
		return m.geometry.Angle(ctx, params, appCtx)
	case "vector.parallel":
		return m.geometry.Parallel(ctx, params, appCtx)
	case "vector.orthogonal":
		return m.geometry.Orthogonal(ctx, params, appCtx)
	case "vector.project_parallel":
		return m.geometry.ProjectParallel(ctx, params, appCtx)
	case "vector.project_orthogonal":
		return m.geometry.ProjectOrthogonal(ctx, params, appCtx)
	case "vector.cross":
		return m.geometry.Cross(ctx, params, appCtx)
	case "vector.area_parallelogram":
		return m.geometry.AreaParallelogram(ctx, params, appCtx)
	case "vector.area_triangle":
		return m.geometry.AreaTriangle(ctx, params, appCtx)

	// Tolerance helpers
	case "vector.isclose":
		return m.tolerance.IsClose(ctx, params, appCtx)
	case "vector.clamp":
		return m.tolerance.Clamp(ctx, params, appCtx)
	case "vector.degrees":
		return m.tolerance.Degrees(ctx, params, appCtx)
	case "vector.radians":
		return m.tolerance.Radians(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
