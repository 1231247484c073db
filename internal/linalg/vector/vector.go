package vector

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
)

// Vector is an immutable, fixed-length sequence of float64 components.
// The zero value has no components and is not a valid operand; build
// vectors with New or FromSlice.
type Vector struct {
	data []float64
}

// New creates a vector from one or more components.
func New(first float64, rest ...float64) Vector {
	data := make([]float64, 0, len(rest)+1)
	data = append(data, first)
	data = append(data, rest...)
	return Vector{data: data}
}

// FromSlice creates a vector holding a copy of values.
func FromSlice(values []float64) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, ErrEmpty
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Vector{data: data}, nil
}

// Must panics if err is non-nil and returns v otherwise.
func Must(v Vector, err error) Vector {
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of components.
func (v Vector) Len() int {
	return len(v.data)
}

// At returns the i-th component.
func (v Vector) At(i int) float64 {
	return v.data[i]
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// All iterates over index/component pairs in index order.
func (v Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values iterates over the components in index order.
func (v Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// String renders the vector as [v0; v1; ...; vN-1].
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// GoString renders the vector's shape, e.g. Vector[3].
func (v Vector) GoString() string {
	return fmt.Sprintf("Vector[%d]", len(v.data))
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.data))
	floats.ScaleTo(out, k, v.data)
	return Vector{data: out}
}

// Scale returns k multiplied by v. Scalar multiplication is commutative, so
// Scale(k, v) and v.Scale(k) are the same vector.
func Scale(k float64, v Vector) Vector {
	return v.Scale(k)
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	return Add(v, w)
}

// Subtract returns v - w.
func (v Vector) Subtract(w Vector) (Vector, error) {
	return Subtract(v, w)
}

// Equal reports whether v and w are element-wise approximately equal.
func (v Vector) Equal(w Vector) (bool, error) {
	return Equal(v, w)
}

// Add returns the element-wise sum of v and w.
func Add(v, w Vector) (Vector, error) {
	if err := conform(v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	floats.AddTo(out, v.data, w.data)
	return Vector{data: out}, nil
}

// Subtract returns the element-wise difference v - w.
func Subtract(v, w Vector) (Vector, error) {
	if err := conform(v, w); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.data))
	floats.SubTo(out, v.data, w.data)
	return Vector{data: out}, nil
}

// Equal reports whether every component pair of v and w is within
// tolerance.Default. Vectors of different lengths are not comparable.
func Equal(v, w Vector) (bool, error) {
	if err := conform(v, w); err != nil {
		return false, err
	}
	for i := range v.data {
		if !tolerance.ApproximatelyEqual(v.data[i], w.data[i], tolerance.Default) {
			return false, nil
		}
	}
	return true, nil
}

// Magnitude returns the Euclidean norm.
func (v Vector) Magnitude() float64 {
	return floats.Norm(v.data, 2)
}

// IsZero reports whether the magnitude is within tolerance.Default of zero.
func (v Vector) IsZero() bool {
	return v.IsZeroWithin(tolerance.Default)
}

// IsZeroWithin reports whether the magnitude is within tol of zero.
func (v Vector) IsZeroWithin(tol float64) bool {
	return tolerance.ApproximatelyEqual(v.Magnitude(), 0, tol)
}

// Unit returns v scaled to magnitude 1.
func (v Vector) Unit() (Vector, error) {
	if v.IsZero() {
		return Vector{}, ErrZeroVector
	}
	return v.Scale(1 / v.Magnitude()), nil
}
