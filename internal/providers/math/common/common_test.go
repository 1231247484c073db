package common

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/linea/internal/linalg/tolerance"
	"github.com/GriffinCanCode/linea/internal/linalg/vector"
)

func TestGetNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []float64
		ok    bool
	}{
		{name: "float slice", value: []float64{1, 2}, want: []float64{1, 2}, ok: true},
		{name: "mixed interface slice", value: []interface{}{1, int64(2), float32(3), 4.5}, want: []float64{1, 2, 3, 4.5}, ok: true},
		{name: "json string", value: "[1.5, -2]", want: []float64{1.5, -2}, ok: true},
		{name: "bad json", value: "[1,", ok: false},
		{name: "non-numeric element", value: []interface{}{1.0, "x"}, ok: false},
		{name: "wrong type", value: 3.0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetNumbers(map[string]interface{}{"v": tt.value}, "v")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGetVector(t *testing.T) {
	ops := &MathOps{MaxDimension: 3}

	v, err := ops.GetVector(map[string]interface{}{"v": []interface{}{1.0, 2.0}}, "v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v.Components())

	for name, params := range map[string]map[string]interface{}{
		"missing":   {},
		"empty":     {"v": []interface{}{}},
		"too long":  {"v": []interface{}{1.0, 2.0, 3.0, 4.0}},
		"not array": {"v": true},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ops.GetVector(params, "v")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetTolerance(t *testing.T) {
	var unset *MathOps
	assert.Equal(t, tolerance.Default, unset.DefaultTolerance())

	ops := &MathOps{Tolerance: 0.05}

	tol, err := ops.GetTolerance(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, 0.05, tol)

	tol, err = ops.GetTolerance(map[string]interface{}{"tolerance": 1e-6})
	require.NoError(t, err)
	assert.Equal(t, 1e-6, tol)

	_, err = ops.GetTolerance(map[string]interface{}{"tolerance": -1.0})
	assert.ErrorIs(t, err, tolerance.ErrInvalid)

	_, err = ops.GetTolerance(map[string]interface{}{"tolerance": "tight"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &vector.NonConformantError{Expected: 2, Actual: 3}, want: KindNonConformant},
		{err: fmt.Errorf("wrapped: %w", &vector.DimensionError{Want: 3, Got: 2}), want: KindDimension},
		{err: vector.ErrZeroVector, want: KindZeroVector},
		{err: vector.ErrZeroAngle, want: KindZeroAngle},
		{err: vector.ErrEmpty, want: KindInvalidInput},
		{err: tolerance.ErrInvalid, want: KindInvalidInput},
		{err: fmt.Errorf("%w: result[0] is infinite", ErrOverflow), want: KindOverflow},
		{err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}

func TestFailWith(t *testing.T) {
	result, err := FailWith(&vector.NonConformantError{Expected: 2, Actual: 3})
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "dimension of 3")
	assert.Equal(t, KindNonConformant, result.Data["error_kind"])
	assert.Equal(t, 2, result.Data["expected"])
	assert.Equal(t, 3, result.Data["actual"])
}

func TestResultHelpers(t *testing.T) {
	result, err := VectorResult(vector.New(1, 2))
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = VectorResult(vector.New(1, math.Inf(1)))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, KindOverflow, result.Data["error_kind"])
	assert.Contains(t, *result.Error, "result[1] is infinite")

	result, err = ScalarResult(4.5)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4.5, result.Data["result"])

	result, err = ScalarResult(math.NaN())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, KindOverflow, result.Data["error_kind"])
}

func TestVectorData(t *testing.T) {
	data := VectorData(vector.New(1, 2.5))
	assert.Equal(t, []float64{1, 2.5}, data["result"])
	assert.Equal(t, 2, data["dimension"])
	assert.Equal(t, "[1; 2.5]", data["display"])
}
