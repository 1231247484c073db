package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossProduct(t *testing.T) {
	got, err := Cross(New(5, 3, -2), New(-1, 0, 3))
	require.NoError(t, err)
	assertVectorEqual(t, New(9, -13, 3), got)

	got, err = Cross(New(8.462, 7.893, -8.187), New(6.984, -5.975, 4.778))
	require.NoError(t, err)
	assertVectorEqual(t, New(-11.205, -97.609, -105.685), got)
}

func TestCrossIsOrthogonalToOperands(t *testing.T) {
	v := New(8.462, 7.893, -8.187)
	w := New(6.984, -5.975, 4.778)

	c, err := Cross(v, w)
	require.NoError(t, err)

	for _, operand := range []Vector{v, w} {
		ok, err := Orthogonal(c, operand)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestAreas(t *testing.T) {
	area, err := AreaParallelogram(New(-8.987, -9.838, 5.031), New(-4.268, -1.861, -8.866))
	require.NoError(t, err)
	assertApprox(t, 142.122, area)

	area, err = AreaTriangle(New(1.500, 9.547, 3.691), New(-6.007, 0.124, 5.772))
	require.NoError(t, err)
	assertApprox(t, 42.565, area)

	area, err = AreaParallelogram(New(1, 2, 3), New(2, 4, 6))
	require.NoError(t, err)
	assert.InDelta(t, 0, area, 1e-12)
}

func TestCrossDimension(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector
		got  int
	}{
		{name: "both 2d", v: New(1, 2), w: New(3, 4), got: 2},
		{name: "right 2d", v: New(1, 2, 3), w: New(3, 4), got: 2},
		{name: "left 4d", v: New(1, 2, 3, 4), w: New(1, 2, 3), got: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cross(tt.v, tt.w)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDimension)

			var de *DimensionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, 3, de.Want)
			assert.Equal(t, tt.got, de.Got)

			_, err = AreaParallelogram(tt.v, tt.w)
			assert.ErrorIs(t, err, ErrDimension)
			_, err = AreaTriangle(tt.v, tt.w)
			assert.ErrorIs(t, err, ErrDimension)
		})
	}
}
