package operations

import (
	"context"

	"github.com/GriffinCanCode/linea/internal/linalg/vector"
	"github.com/GriffinCanCode/linea/internal/providers/math/common"
	"github.com/GriffinCanCode/linea/internal/types"
)

// GeometryOps handles products, angles, projections and areas
type GeometryOps struct {
	*common.MathOps
}

func pair(description string, extra ...types.Parameter) []types.Parameter {
	params := []types.Parameter{
		{Name: "v", Type: "array", Description: "First vector", Required: true},
		{Name: "w", Type: "array", Description: description, Required: true},
	}
	return append(params, extra...)
}

var toleranceParam = types.Parameter{
	Name: "tolerance", Type: "number", Description: "Comparison tolerance", Required: false,
}

// GetTools returns geometry tool definitions
func (g *GeometryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "vector.dot",
			Name:        "Dot Product",
			Description: "Inner product of two vectors",
			Parameters:  pair("Second vector"),
			Returns:     "number",
		},
		{
			ID:          "vector.angle",
			Name:        "Angle",
			Description: "Angle between two non-zero vectors (radians unless degrees is set)",
			Parameters: pair("Second vector", types.Parameter{
				Name: "degrees", Type: "boolean", Description: "Return degrees instead of radians", Required: false,
			}),
			Returns: "number",
		},
		{
			ID:          "vector.parallel",
			Name:        "Parallel",
			Description: "Check whether two vectors are parallel; a zero vector is parallel to everything",
			Parameters:  pair("Second vector", toleranceParam),
			Returns:     "boolean",
		},
		{
			ID:          "vector.orthogonal",
			Name:        "Orthogonal",
			Description: "Check whether two vectors are orthogonal; a zero vector is orthogonal to everything",
			Parameters:  pair("Second vector", toleranceParam),
			Returns:     "boolean",
		},
		{
			ID:          "vector.project_parallel",
			Name:        "Parallel Projection",
			Description: "Component of v along onto",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Vector to project", Required: true},
				{Name: "onto", Type: "array", Description: "Non-zero basis vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "vector.project_orthogonal",
			Name:        "Orthogonal Projection",
			Description: "Component of v perpendicular to onto",
			Parameters: []types.Parameter{
				{Name: "v", Type: "array", Description: "Vector to project", Required: true},
				{Name: "onto", Type: "array", Description: "Non-zero basis vector", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "vector.cross",
			Name:        "Cross Product",
			Description: "Cross product of two 3-dimensional vectors",
			Parameters:  pair("Second 3-dimensional vector"),
			Returns:     "array",
		},
		{
			ID:          "vector.area_parallelogram",
			Name:        "Parallelogram Area",
			Description: "Area of the parallelogram spanned by two 3-dimensional vectors",
			Parameters:  pair("Second 3-dimensional vector"),
			Returns:     "number",
		},
		{
			ID:          "vector.area_triangle",
			Name:        "Triangle Area",
			Description: "Area of the triangle spanned by two 3-dimensional vectors",
			Parameters:  pair("Second 3-dimensional vector"),
			Returns:     "number",
		},
	}
}

// Dot calculates the inner product
func (g *GeometryOps) Dot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.binaryScalar(params, vector.Dot)
}

// Angle calculates the angle between v and w
func (g *GeometryOps) Angle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	degrees, _ := common.GetBool(params, "degrees")
	op := vector.Angle
	unit := "radians"
	if degrees {
		op = vector.AngleDegrees
		unit = "degrees"
	}

	result, err := g.binaryScalar(params, op)
	if err == nil && result.Success {
		result.Data["unit"] = unit
	}
	return result, err
}

// Parallel checks whether v and w are parallel
func (g *GeometryOps) Parallel(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.predicate(params, vector.ParallelWithin)
}

// Orthogonal checks whether v and w are orthogonal
func (g *GeometryOps) Orthogonal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.predicate(params, vector.OrthogonalWithin)
}

// ProjectParallel projects v onto onto
func (g *GeometryOps) ProjectParallel(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.projection(params, vector.ProjectParallel)
}

// ProjectOrthogonal returns the part of v perpendicular to onto
func (g *GeometryOps) ProjectOrthogonal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.projection(params, vector.ProjectOrthogonal)
}

// Cross calculates the cross product
func (g *GeometryOps) Cross(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vs, err := g.GetVectors(params, "v", "w")
	if err != nil {
		return common.FailWith(err)
	}
	c, err := vector.Cross(vs[0], vs[1])
	if err != nil {
		return common.FailWith(err)
	}
	return common.VectorResult(c)
}

// AreaParallelogram calculates the parallelogram area
func (g *GeometryOps) AreaParallelogram(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.binaryScalar(params, vector.AreaParallelogram)
}

// AreaTriangle calculates the triangle area
func (g *GeometryOps) AreaTriangle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return g.binaryScalar(params, vector.AreaTriangle)
}

func (g *GeometryOps) binaryScalar(params map[string]interface{}, op func(v, w vector.Vector) (float64, error)) (*types.Result, error) {
	vs, err := g.GetVectors(params, "v", "w")
	if err != nil {
		return common.FailWith(err)
	}
	x, err := op(vs[0], vs[1])
	if err != nil {
		return common.FailWith(err)
	}
	return common.ScalarResult(x)
}

func (g *GeometryOps) predicate(params map[string]interface{}, op func(v, w vector.Vector, tol float64) (bool, error)) (*types.Result, error) {
	vs, err := g.GetVectors(params, "v", "w")
	if err != nil {
		return common.FailWith(err)
	}
	tol, err := g.GetTolerance(params)
	if err != nil {
		return common.FailWith(err)
	}
	ok, err := op(vs[0], vs[1], tol)
	if err != nil {
		return common.FailWith(err)
	}
	return common.Success(map[string]interface{}{
		"result":    ok,
		"tolerance": tol,
	})
}

func (g *GeometryOps) projection(params map[string]interface{}, op func(v, onto vector.Vector) (vector.Vector, error)) (*types.Result, error) {
	vs, err := g.GetVectors(params, "v", "onto")
	if err != nil {
		return common.FailWith(err)
	}
	p, err := op(vs[0], vs[1])
	if err != nil {
		return common.FailWith(err)
	}
	return common.VectorResult(p)
}
