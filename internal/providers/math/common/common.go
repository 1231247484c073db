package common

import (
	"errors"
	"fmt"
	"math"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
	"github.com/GriffinCanCode/linea/internal/linalg/vector"
	"github.com/GriffinCanCode/linea/internal/types"
)

var (
	// ErrInvalidInput reports a missing or malformed tool parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOverflow reports a result that left the float64 range.
	ErrOverflow = errors.New("result is not a finite number")
)

// Error kinds reported in the error_kind field of failed results.
const (
	KindNonConformant = "non_conformant"
	KindDimension     = "dimension"
	KindZeroVector    = "zero_vector"
	KindZeroAngle     = "zero_angle"
	KindInvalidInput  = "invalid_input"
	KindOverflow      = "overflow"
	KindInternal      = "internal"
)

// MathOps provides common math helpers and the per-provider defaults
// applied when a call leaves them out.
type MathOps struct {
	Tolerance    float64
	MaxDimension int
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FailWith creates a failed result describing err. Operand lengths are
// attached for non-conformant and dimension errors.
func FailWith(err error) (*types.Result, error) {
	msg := err.Error()
	data := map[string]interface{}{"error_kind": ErrorKind(err)}

	var nc *vector.NonConformantError
	if errors.As(err, &nc) {
		data["expected"] = nc.Expected
		data["actual"] = nc.Actual
	}
	var de *vector.DimensionError
	if errors.As(err, &de) {
		data["expected"] = de.Want
		data["actual"] = de.Got
	}

	return &types.Result{Success: false, Data: data, Error: &msg}, nil
}

// ErrorKind classifies err for API consumers.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, vector.ErrNonConformant):
		return KindNonConformant
	case errors.Is(err, vector.ErrDimension):
		return KindDimension
	case errors.Is(err, vector.ErrZeroAngle):
		return KindZeroAngle
	case errors.Is(err, vector.ErrZeroVector):
		return KindZeroVector
	case errors.Is(err, ErrOverflow):
		return KindOverflow
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, tolerance.ErrInvalid),
		errors.Is(err, vector.ErrEmpty):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumbers extracts array of numbers with type coercion. A string value
// is decoded as a JSON array.
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case string:
		var numbers []float64
		if err := sonic.UnmarshalString(arr, &numbers); err != nil {
			return nil, false
		}
		return numbers, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			switch num := v.(type) {
			case float64:
				numbers = append(numbers, num)
			case int:
				numbers = append(numbers, float64(num))
			case int64:
				numbers = append(numbers, float64(num))
			case float32:
				numbers = append(numbers, float64(num))
			default:
				return nil, false
			}
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// RequireNumber extracts a finite number or reports which parameter is bad.
func RequireNumber(params map[string]interface{}, key string) (float64, error) {
	x, ok := GetNumber(params, key)
	if !ok {
		return 0, fmt.Errorf("%w: %s parameter required", ErrInvalidInput, key)
	}
	if err := ValidateNumber(x, key); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return x, nil
}

// GetVector extracts a vector parameter given as a JSON array of numbers.
func (m *MathOps) GetVector(params map[string]interface{}, key string) (vector.Vector, error) {
	if _, ok := params[key]; !ok {
		return vector.Vector{}, fmt.Errorf("%w: %s parameter required", ErrInvalidInput, key)
	}
	numbers, ok := GetNumbers(params, key)
	if !ok {
		return vector.Vector{}, fmt.Errorf("%w: %s must be an array of numbers", ErrInvalidInput, key)
	}
	if len(numbers) == 0 {
		return vector.Vector{}, fmt.Errorf("%w: %s must have at least one component", ErrInvalidInput, key)
	}
	if m.MaxDimension > 0 && len(numbers) > m.MaxDimension {
		return vector.Vector{}, fmt.Errorf("%w: %s has %d components, limit is %d",
			ErrInvalidInput, key, len(numbers), m.MaxDimension)
	}
	if err := ValidateNumbers(numbers, key); err != nil {
		return vector.Vector{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return vector.FromSlice(numbers)
}

// GetVectors extracts several vector parameters in order.
func (m *MathOps) GetVectors(params map[string]interface{}, keys ...string) ([]vector.Vector, error) {
	out := make([]vector.Vector, 0, len(keys))
	for _, key := range keys {
		v, err := m.GetVector(params, key)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// GetTolerance returns the tolerance parameter, or the provider default
// when the call does not set one.
func (m *MathOps) GetTolerance(params map[string]interface{}) (float64, error) {
	if _, ok := params["tolerance"]; !ok {
		return m.DefaultTolerance(), nil
	}
	tol, ok := GetNumber(params, "tolerance")
	if !ok {
		return 0, fmt.Errorf("%w: tolerance must be a number", ErrInvalidInput)
	}
	if err := tolerance.Validate(tol); err != nil {
		return 0, err
	}
	return tol, nil
}

// DefaultTolerance returns the configured tolerance or tolerance.Default.
func (m *MathOps) DefaultTolerance() float64 {
	if m == nil || m.Tolerance <= 0 {
		return tolerance.Default
	}
	return m.Tolerance
}

// VectorData renders v as result data.
func VectorData(v vector.Vector) map[string]interface{} {
	return map[string]interface{}{
		"result":    v.Components(),
		"dimension": v.Len(),
		"display":   v.String(),
	}
}

// VectorResult renders v as a successful result, or fails with
// ErrOverflow when a component is NaN or infinite.
func VectorResult(v vector.Vector) (*types.Result, error) {
	if err := ValidateNumbers(v.Components(), "result"); err != nil {
		return FailWith(fmt.Errorf("%w: %v", ErrOverflow, err))
	}
	return Success(VectorData(v))
}

// ScalarResult renders x as a successful result, or fails with
// ErrOverflow when x is NaN or infinite.
func ScalarResult(x float64) (*types.Result, error) {
	if err := ValidateNumber(x, "result"); err != nil {
		return FailWith(fmt.Errorf("%w: %v", ErrOverflow, err))
	}
	return Success(map[string]interface{}{"result": x})
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
