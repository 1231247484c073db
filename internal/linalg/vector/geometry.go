package vector

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
)

// Dot returns the inner product of v and w.
//
// The result is checked against the Cauchy–Schwarz bound
// |v·w| <= |v||w|; a violation panics with *InvariantViolation.
func Dot(v, w Vector) (float64, error) {
	if err := conform(v, w); err != nil {
		return 0, err
	}
	inner := floats.Dot(v.data, w.data)
	checkCauchySchwarz(inner, v, w)
	return inner, nil
}

func checkCauchySchwarz(inner float64, v, w Vector) {
	bound := v.Magnitude() * w.Magnitude()
	abs := math.Abs(inner)
	if abs > bound && !tolerance.ApproximatelyEqual(abs, bound, tolerance.Clamp) {
		panic(&InvariantViolation{
			Invariant: "Cauchy-Schwarz",
			Detail:    fmt.Sprintf("|v·w| = %v exceeds |v||w| = %v", abs, bound),
		})
	}
}

// Angle returns the angle between v and w in radians.
func Angle(v, w Vector) (float64, error) {
	if err := conform(v, w); err != nil {
		return 0, err
	}
	cos, err := cosine(v, w)
	if err != nil {
		return 0, err
	}
	return math.Acos(cos), nil
}

// AngleDegrees returns the angle between v and w in degrees.
func AngleDegrees(v, w Vector) (float64, error) {
	theta, err := Angle(v, w)
	if err != nil {
		return 0, err
	}
	return tolerance.RadiansToDegrees(theta), nil
}

// cosine returns the dot product of the unit vectors of v and w, snapped
// onto ±1 when floating-point error pushes it just past the boundary.
// Values further outside [-1, 1] are returned as is.
func cosine(v, w Vector) (float64, error) {
	uv, err := v.Unit()
	if err != nil {
		return 0, zeroAngle(err)
	}
	uw, err := w.Unit()
	if err != nil {
		return 0, zeroAngle(err)
	}
	inner, err := Dot(uv, uw)
	if err != nil {
		return 0, err
	}
	return snapCosine(inner), nil
}

// snapCosine moves c onto ±1 when it overshoots by no more than
// tolerance.Clamp. Anything inside [-1, 1] or further out is unchanged.
func snapCosine(c float64) float64 {
	switch {
	case c > 1:
		return tolerance.ClampIfClose(c, 1, tolerance.Clamp)
	case c < -1:
		return tolerance.ClampIfClose(c, -1, tolerance.Clamp)
	}
	return c
}

func zeroAngle(err error) error {
	if errors.Is(err, ErrZeroVector) {
		return ErrZeroAngle
	}
	return err
}

// Parallel reports whether v and w are parallel within tolerance.Default.
func Parallel(v, w Vector) (bool, error) {
	return ParallelWithin(v, w, tolerance.Default)
}

// ParallelWithin reports whether the angle between v and w is within tol of
// 0 or π. A zero vector is parallel to every vector of the same length.
func ParallelWithin(v, w Vector, tol float64) (bool, error) {
	if err := conform(v, w); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	theta, err := Angle(v, w)
	if err != nil {
		return false, err
	}
	if tolerance.ApproximatelyEqual(theta, 0, tol) {
		return true, nil
	}
	return tolerance.ApproximatelyEqual(theta, math.Pi, tol), nil
}

// Orthogonal reports whether v and w are orthogonal within tolerance.Default.
func Orthogonal(v, w Vector) (bool, error) {
	return OrthogonalWithin(v, w, tolerance.Default)
}

// OrthogonalWithin reports whether v·w is within tol of zero. A zero vector
// is orthogonal to every vector of the same length.
func OrthogonalWithin(v, w Vector, tol float64) (bool, error) {
	if err := conform(v, w); err != nil {
		return false, err
	}
	if v.IsZero() || w.IsZero() {
		return true, nil
	}
	inner, err := Dot(v, w)
	if err != nil {
		return false, err
	}
	return tolerance.ApproximatelyEqual(inner, 0, tol), nil
}

// ProjectParallel returns the component of v along onto.
func ProjectParallel(v, onto Vector) (Vector, error) {
	if err := conform(v, onto); err != nil {
		return Vector{}, err
	}
	u, err := onto.Unit()
	if err != nil {
		return Vector{}, err
	}
	weight, err := Dot(v, u)
	if err != nil {
		return Vector{}, err
	}
	return u.Scale(weight), nil
}

// ProjectOrthogonal returns the component of v perpendicular to onto, so
// that ProjectParallel(v, onto) + ProjectOrthogonal(v, onto) == v.
func ProjectOrthogonal(v, onto Vector) (Vector, error) {
	parallel, err := ProjectParallel(v, onto)
	if err != nil {
		return Vector{}, err
	}
	return Subtract(v, parallel)
}

// Dot returns v·w.
func (v Vector) Dot(w Vector) (float64, error) {
	return Dot(v, w)
}

// AngleWith returns the angle between v and w, in degrees if inDegrees is
// set and radians otherwise.
func (v Vector) AngleWith(w Vector, inDegrees bool) (float64, error) {
	if inDegrees {
		return AngleDegrees(v, w)
	}
	return Angle(v, w)
}

// ParallelTo reports whether w is parallel to v.
func (v Vector) ParallelTo(w Vector) (bool, error) {
	return Parallel(v, w)
}

// OrthogonalTo reports whether w is orthogonal to v.
func (v Vector) OrthogonalTo(w Vector) (bool, error) {
	return Orthogonal(v, w)
}

// ProjectParallel returns the component of v along onto.
func (v Vector) ProjectParallel(onto Vector) (Vector, error) {
	return ProjectParallel(v, onto)
}

// ProjectOrthogonal returns the component of v perpendicular to onto.
func (v Vector) ProjectOrthogonal(onto Vector) (Vector, error) {
	return ProjectOrthogonal(v, onto)
}
