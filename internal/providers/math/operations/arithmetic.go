package operations

import (
	"context"

	"github.com/GriffinCanCode/linea/internal/linalg/vector"
	"github.com/GriffinCanCode/linea/internal/providers/math/common"
	"github.com/GriffinCanCode/linea/internal/types"
)

// ArithmeticOps handles vector arithmetic and normalization
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "vector.add",
			Name:        "Add",
			Description: "Add two vectors of equal dimension",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Left vector", Required: true},
				{Name: "w", Type: "array", Description: "Right vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "vector.subtract",
			Name:        "Subtract",
			Description: "Subtract w from v",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Left vector", Required: true},
				{Name: "w", Type: "array", Description: "Right vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "vector.scale",
			Name:        "Scale",
			Description: "Multiply a vector by a scalar",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Vector", Required: true},
				{Name: "k", Type: "number", Description: "Scalar", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "vector.equals",
			Name:        "Equals",
			Description: "Compare two vectors element-wise within the default tolerance",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Left vector", Required: true},
				{Name: "w", Type: "array", Description: "Right vector", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "vector.magnitude",
			Name:        "Magnitude",
			Description: "Euclidean norm of a vector",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Vector", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "vector.is_zero",
			Name:        "Is Zero",
			Description: "Check whether a vector's magnitude is approximately zero",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Vector", Required: true},
				{Name: "tolerance", Type: "number", Description: "Comparison tolerance", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "vector.unit",
			Name:        "Unit Vector",
			Description: "Normalize a vector to magnitude 1",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Non-zero vector", Required: true},
			},
			Returns: "array",
		},
	}
}

// Add adds two vectors
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.binaryVector(params, vector.Add)
}

// Subtract subtracts w from v
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.binaryVector(params, vector.Subtract)
}

// Scale multiplies v by k
func (a *ArithmeticOps) Scale(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := a.GetVector(params, "v")
	if err != nil {
		return common.FailWith(err)
	}
	k, err := common.RequireNumber(params, "k")
	if err != nil {
		return common.FailWith(err)
	}
	return common.VectorResult(vector.Scale(k, v))
}

// Equals compares v and w
func (a *ArithmeticOps) Equals(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, err := a.GetVectors(params, "v", "w")
	if err != nil {
		return common.FailWith(err)
	}
	eq, err := vector.Equal(vs[0], vs[1])
	if err != nil {
		return common.FailWith(err)
	}
	return common.Success(map[string]interface{}{"result": eq})
}

// Magnitude calculates the Euclidean norm
func (a *ArithmeticOps) Magnitude(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := a.GetVector(params, "v")
	if err != nil {
		return common.FailWith(err)
	}
	return common.ScalarResult(v.Magnitude())
}

// IsZero checks for a zero vector
func (a *ArithmeticOps) IsZero(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := a.GetVector(params, "v")
	if err != nil {
		return common.FailWith(err)
	}
	tol, err := a.GetTolerance(params)
	if err != nil {
		return common.FailWith(err)
	}
	return common.Success(map[string]interface{}{
		"result":    v.IsZeroWithin(tol),
		"tolerance": tol,
	})
}

// Unit normalizes a vector
func (a *ArithmeticOps) Unit(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, err := a.GetVector(params, "v")
	if err != nil {
		return common.FailWith(err)
	}
	u, err := v.Unit()
	if err != nil {
		return common.FailWith(err)
	}
	return common.VectorResult(u)
}

func (a *ArithmeticOps) binaryVector(params map[string]interface{}, op func(v, w vector.Vector) (vector.Vector, error)) (*types.Result, error) {
	vs, err := a.GetVectors(params, "v", "w")
	if err != nil {
		return common.FailWith(err)
	}
	out, err := op(vs[0], vs[1])
	if err != nil {
		return common.FailWith(err)
	}
	return common.VectorResult(out)
}
