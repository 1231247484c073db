// Package vector implements immutable, arbitrary-dimension real vectors and
// the usual linear-algebra operations over them.
//
// Operations:
//   - Arithmetic: Add, Subtract, Scale, Equal (approximate, element-wise)
//   - Magnitude and normalization: Magnitude, IsZero, Unit
//   - Products: Dot, Cross
//   - Geometry: Angle, AngleDegrees, Parallel, Orthogonal
//   - Decomposition: ProjectParallel, ProjectOrthogonal
//   - Areas (3-D only): AreaParallelogram, AreaTriangle
//
// Every operation returns a new Vector; no vector is modified after it is
// built. Binary operations require operands of equal length and report a
// *NonConformantError otherwise. Comparisons use the tolerances defined in
// package tolerance.
//
// Degenerate cases:
//   - Unit on a zero vector returns ErrZeroVector
//   - Angle against a zero vector returns ErrZeroAngle
//   - A zero vector is both parallel and orthogonal to every vector
//
// Example Usage:
//
//	v := vector.New(3.039, 1.879)
//	w := vector.New(0.825, 2.036)
//	p, err := vector.ProjectParallel(v, w)
package vector
