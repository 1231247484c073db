package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNonConformant matches any *NonConformantError via errors.Is.
	ErrNonConformant = errors.New("non-conformant vectors")

	// ErrDimension matches any *DimensionError via errors.Is.
	ErrDimension = errors.New("unsupported vector dimension")

	// ErrZeroVector is returned when normalizing a zero vector.
	ErrZeroVector = errors.New("cannot normalize the zero vector")

	// ErrZeroAngle is returned by Angle when either operand is a zero vector.
	ErrZeroAngle = errors.New("cannot determine the angle against the zero vector")

	// ErrEmpty is returned when constructing a vector with no components.
	ErrEmpty = errors.New("vector must have at least one component")
)

// NonConformantError reports operands of differing lengths. Expected is the
// length of the left-hand operand, Actual the length of the right-hand one.
type NonConformantError struct {
	Expected int
	Actual   int
}

func (e *NonConformantError) Error() string {
	return fmt.Sprintf("expected the right-hand vector to have dimension %d, but it has a dimension of %d",
		e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrNonConformant) true.
func (e *NonConformantError) Is(target error) bool {
	return target == ErrNonConformant
}

// DimensionError reports an operand whose length is not supported by a
// dimension-specific operation such as Cross.
type DimensionError struct {
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("operation requires %d-dimensional vectors, got dimension %d", e.Want, e.Got)
}

// Is makes errors.Is(err, ErrDimension) true.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

// InvariantViolation is the panic value raised when a computed result breaks
// a mathematical bound. It signals a defect, not bad input.
type InvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violated: %s (%s)", e.Invariant, e.Detail)
}

func conform(v, w Vector) error {
	if v.Len() != w.Len() {
		return &NonConformantError{Expected: v.Len(), Actual: w.Len()}
	}
	return nil
}
