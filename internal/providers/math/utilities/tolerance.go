package utilities

import (
	"context"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
	"github.com/GriffinCanCode/linea/internal/providers/math/common"
	"github.com/GriffinCanCode/linea/internal/types"
)

// ToleranceOps exposes the scalar tolerance helpers
type ToleranceOps struct {
	*common.MathOps
}

// GetTools returns tolerance tool definitions
func (t *ToleranceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "vector.isclose",
			Name:        "Is Close",
			Description: "Compare two scalars within a tolerance",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First value", Required: true},
				{Name: "b", Type: "number", Description: "Second value", Required: true},
				{Name: "tolerance", Type: "number", Description: "Comparison tolerance", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "vector.clamp",
			Name:        "Clamp",
			Description: "Snap a value to target when it is within tolerance of it",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Value to clamp", Required: true},
				{Name: "target", Type: "number", Description: "Snap target", Required: true},
				{Name: "tolerance", Type: "number", Description: "Snap tolerance (default 1e-8)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "vector.degrees",
			Name:        "Radians to Degrees",
			Description: "Convert an angle in [-2π, 2π] radians to degrees",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "vector.radians",
			Name:        "Degrees to Radians",
			Description: "Convert an angle in degrees to radians",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
	}
}

// IsClose compares a and b
func (t *ToleranceOps) IsClose(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.RequireNumber(params, "a")
	if err != nil {
		return common.FailWith(err)
	}
	b, err := common.RequireNumber(params, "b")
	if err != nil {
		return common.FailWith(err)
	}
	tol, err := t.GetTolerance(params)
	if err != nil {
		return common.FailWith(err)
	}
	return common.Success(map[string]interface{}{
		"result":    tolerance.ApproximatelyEqual(a, b, tol),
		"tolerance": tol,
	})
}

// Clamp snaps value to target
func (t *ToleranceOps) Clamp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := common.RequireNumber(params, "value")
	if err != nil {
		return common.FailWith(err)
	}
	target, err := common.RequireNumber(params, "target")
	if err != nil {
		return common.FailWith(err)
	}

	tol := tolerance.Clamp
	if _, ok := params["tolerance"]; ok {
		if tol, err = t.GetTolerance(params); err != nil {
			return common.FailWith(err)
		}
	}
	return common.Success(map[string]interface{}{
		"result":    tolerance.ClampIfClose(value, target, tol),
		"tolerance": tol,
	})
}

// Degrees converts radians to degrees
func (t *ToleranceOps) Degrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	r, err := common.RequireNumber(params, "radians")
	if err != nil {
		return common.FailWith(err)
	}
	if gomath.Abs(r) > 2*gomath.Pi {
		return common.FailWith(fmt.Errorf("%w: radians must be within [-2π, 2π], got %g", common.ErrInvalidInput, r))
	}
	return common.Success(map[string]interface{}{"result": tolerance.RadiansToDegrees(r)})
}

// Radians converts degrees to radians
func (t *ToleranceOps) Radians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, err := common.RequireNumber(params, "degrees")
	if err != nil {
		return common.FailWith(err)
	}
	return common.Success(map[string]interface{}{"result": tolerance.DegreesToRadians(d)})
}
