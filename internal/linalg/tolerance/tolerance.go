package tolerance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// Default is the tolerance for vector equality and geometric predicates.
	Default = 0.001

	// Clamp is the tolerance for snapping cosine values onto [-1, 1].
	Clamp = 1e-8
)

// ErrInvalid reports a tolerance that cannot be used for comparisons.
var ErrInvalid = errors.New("invalid tolerance")

// ApproximatelyEqual reports whether a and b are within tol of each other,
// either absolutely or relative to the larger of |a| and |b|.
func ApproximatelyEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

// ClampIfClose returns target if value is approximately equal to it,
// otherwise value unchanged.
func ClampIfClose(value, target, tol float64) float64 {
	if ApproximatelyEqual(value, target, tol) {
		return target
	}
	return value
}

// RadiansToDegrees converts r to degrees. It panics if |r| > 2π.
func RadiansToDegrees(r float64) float64 {
	if math.Abs(r) > 2*math.Pi {
		panic(fmt.Sprintf("tolerance: radian value %v outside [-2π, 2π]", r))
	}
	return r * 180 / math.Pi
}

// DegreesToRadians converts d to radians.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// Validate checks that tol is finite and non-negative.
func Validate(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalid, tol)
	}
	if tol < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalid, tol)
	}
	return nil
}
