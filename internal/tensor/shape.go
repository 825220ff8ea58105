package tensor

import "fmt"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the product of the dimensions.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("dimension %d is %d (must be >= 0): %w", i, dim, ErrShape)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates canonical strides for the shape in the given order.
// Row-major makes the last axis fastest, column-major the first.
// KeepOrder is treated as row-major.
func (s Shape) ComputeStrides(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	if order == ColumnMajor {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// canonical maps the zero-dimensional request onto the empty sentinel [0].
func (s Shape) canonical() Shape {
	if len(s) == 0 {
		return Shape{0}
	}
	return s.Clone()
}

// normalizeAxis maps a possibly negative axis into [0, ndims).
func normalizeAxis(axis, ndims int) (int, error) {
	if axis < 0 {
		axis += ndims
	}
	if axis < 0 || axis >= ndims {
		return 0, fmt.Errorf("axis %d out of range for %d dimensions: %w", axis, ndims, ErrShape)
	}
	return axis, nil
}

// normalizeIndex maps a possibly negative index into [0, dim).
func normalizeIndex(idx, dim, axis int) (int, error) {
	if idx < 0 {
		idx += dim
	}
	if idx < 0 || idx >= dim {
		return 0, fmt.Errorf("index %d out of range for axis %d (size %d): %w", idx, axis, dim, ErrIndex)
	}
	return idx, nil
}
