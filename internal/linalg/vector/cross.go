package vector

const crossDimension = 3

// Cross returns the cross product of two 3-dimensional vectors.
func Cross(v, w Vector) (Vector, error) {
	if v.Len() != crossDimension {
		return Vector{}, &DimensionError{Want: crossDimension, Got: v.Len()}
	}
	if w.Len() != crossDimension {
		return Vector{}, &DimensionError{Want: crossDimension, Got: w.Len()}
	}
	a, b := v.data, w.data
	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// AreaParallelogram returns the area of the parallelogram spanned by v and w.
func AreaParallelogram(v, w Vector) (float64, error) {
	c, err := Cross(v, w)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}

// AreaTriangle returns the area of the triangle spanned by v and w.
func AreaTriangle(v, w Vector) (float64, error) {
	area, err := AreaParallelogram(v, w)
	if err != nil {
		return 0, err
	}
	return area / 2, nil
}
