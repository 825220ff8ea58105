package tensor

import "fmt"

// Transpose permutes the axes. With no arguments the axes are reversed.
// Negative axes are allowed. This is a view operation (no data copy).
//
// Example:
//
//	x, _ := tensor.New[float32](tensor.Shape{2, 3, 4}, tensor.RowMajor)
//	y, _ := x.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (a *Array[T]) Transpose(axes ...int) (*Array[T], error) {
	ndims := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, ndims)
		for i := range axes {
			axes[i] = ndims - 1 - i
		}
	}
	if len(axes) != ndims {
		return nil, fmt.Errorf("transpose: %d axes for %d dimensions: %w", len(axes), ndims, ErrShape)
	}

	shape := make(Shape, ndims)
	strides := make([]int, ndims)
	seen := make([]bool, ndims)
	for i, axis := range axes {
		axis, err := normalizeAxis(axis, ndims)
		if err != nil {
			return nil, fmt.Errorf("transpose: %w", err)
		}
		if seen[axis] {
			return nil, fmt.Errorf("transpose: axis %d repeated in %v: %w", axis, axes, ErrShape)
		}
		seen[axis] = true
		shape[i] = a.shape[axis]
		strides[i] = a.strides[axis]
	}

	return a.newView(a.offset, shape, strides), nil
}

// resolveShape fills in a single -1 placeholder and checks the element count.
func resolveShape(dims []int, size int) (Shape, error) {
	shape := Shape(dims).Clone()
	infer := -1
	known := 1
	for i, dim := range shape {
		switch {
		case dim == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("reshape: more than one inferred dimension in %v: %w", dims, ErrShape)
			}
			infer = i
		case dim < 0:
			return nil, fmt.Errorf("reshape: invalid dimension %d in %v: %w", dim, dims, ErrShape)
		default:
			known *= dim
		}
	}

	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("reshape: cannot infer dimension of %v for size %d: %w", dims, size, ErrShape)
		}
		shape[infer] = size / known
	}

	shape = shape.canonical()
	if n := shape.NumElements(); n != size {
		return nil, fmt.Errorf("reshape: cannot reshape size %d into %v: %w", size, dims, ErrShape)
	}
	return shape, nil
}

// Reshape returns the array with a new shape of the same size. At most one
// dimension may be -1, in which case it is inferred.
//
// A row- or column-major contiguous array is reshaped without copying: the
// result is a view with strides recomputed in the same order. Otherwise the
// data is first duplicated into row-major order and the returned array owns it.
//
// Example:
//
//	x, _ := tensor.Arange[int](24)
//	y, _ := x.Reshape(2, -1, 3) // Shape: [2, 4, 3]
func (a *Array[T]) Reshape(dims ...int) (*Array[T], error) {
	shape, err := resolveShape(dims, a.size)
	if err != nil {
		return nil, err
	}

	switch {
	case a.flags.RowMajorContiguous():
		return a.newView(a.offset, shape, shape.ComputeStrides(RowMajor)), nil
	case a.flags.ColumnMajorContiguous():
		return a.newView(a.offset, shape, shape.ComputeStrides(ColumnMajor)), nil
	}

	dup, err := a.Duplicate(RowMajor)
	if err != nil {
		return nil, err
	}
	dup.shape = shape
	dup.strides = shape.ComputeStrides(RowMajor)
	dup.flags = computeFlags(dup.shape, dup.strides, true)
	return dup, nil
}

// Ravel flattens the array to one dimension; equivalent to Reshape(-1).
func (a *Array[T]) Ravel() (*Array[T], error) {
	return a.Reshape(-1)
}

// Duplicate returns an independent copy that owns its buffer, laid out in the
// requested order. KeepOrder keeps the current contiguity (row-major when the
// array is contiguous in neither order).
//
// When the array is already contiguous in the requested order the buffer
// region is copied in one block; otherwise the result is allocated with the
// requested canonical strides and filled by pairing both arrays' logical
// elements, so it is contiguous in that order either way.
func (a *Array[T]) Duplicate(order Order) (*Array[T], error) {
	if err := order.validate(); err != nil {
		return nil, fmt.Errorf("duplicate: %w", err)
	}
	if order == KeepOrder {
		order = RowMajor
		if a.flags.Layout == LayoutColumnMajor {
			order = ColumnMajor
		}
	}

	out := newOwned[T](a.shape, order)
	if a.contiguousIn(order) {
		if a.size > 0 {
			copy(out.buf.data, a.buf.data[a.offset:a.offset+a.size])
		}
		return out, nil
	}

	pairs, err := Zip(out, a)
	if err != nil {
		return nil, err
	}
	for d, s := range pairs {
		*d = *s
	}
	return out, nil
}

func (a *Array[T]) contiguousIn(order Order) bool {
	if order == ColumnMajor {
		return a.flags.ColumnMajorContiguous()
	}
	return a.flags.RowMajorContiguous()
}

// ViewDuplicate returns a zero-copy alias with the same shape and strides.
func (a *Array[T]) ViewDuplicate() *Array[T] {
	return a.newView(a.offset, a.shape.Clone(), append([]int(nil), a.strides...))
}

// Diagonal returns a 1-D view of the main diagonal of a 2-D array.
// Its length is min(rows, cols) and its stride the sum of both strides.
func (a *Array[T]) Diagonal() (*Array[T], error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("diagonal: need 2 dimensions, got %d: %w", len(a.shape), ErrShape)
	}
	n := min(a.shape[0], a.shape[1])
	return a.newView(a.offset, Shape{n}, []int{a.strides[0] + a.strides[1]}), nil
}

// Squeeze removes a dimension of size 1. Supports negative indexing.
// The only axis of a 1-D array cannot be removed.
// This is a view operation (no data copy).
func (a *Array[T]) Squeeze(axis int) (*Array[T], error) {
	ndims := len(a.shape)
	axis, err := normalizeAxis(axis, ndims)
	if err != nil {
		return nil, fmt.Errorf("squeeze: %w", err)
	}
	if a.shape[axis] != 1 {
		return nil, fmt.Errorf("squeeze: axis %d has size %d, not 1: %w", axis, a.shape[axis], ErrShape)
	}
	if ndims == 1 {
		return nil, fmt.Errorf("squeeze: cannot remove the only axis: %w", ErrShape)
	}

	shape := append(a.shape[:axis:axis], a.shape[axis+1:]...)
	strides := append(a.strides[:axis:axis], a.strides[axis+1:]...)
	return a.newView(a.offset, shape, strides), nil
}

// Unsqueeze inserts a dimension of size 1 at axis, which may range over
// [-(ndims+1), ndims]. The new stride is chosen so a contiguous array
// stays contiguous. This is a view operation (no data copy).
//
// Example:
//
//	x, _ := tensor.New[float32](tensor.Shape{2, 3}, tensor.RowMajor)
//	y, _ := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z, _ := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (a *Array[T]) Unsqueeze(axis int) (*Array[T], error) {
	ndims := len(a.shape)
	axis, err := normalizeAxis(axis, ndims+1)
	if err != nil {
		return nil, fmt.Errorf("unsqueeze: %w", err)
	}

	shape := make(Shape, 0, ndims+1)
	shape = append(shape, a.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[axis:]...)

	if a.flags.Contiguous() {
		order := RowMajor
		if a.flags.Layout == LayoutColumnMajor {
			order = ColumnMajor
		}
		return a.newView(a.offset, shape, shape.ComputeStrides(order)), nil
	}

	stride := 1
	if axis < ndims {
		stride = a.strides[axis] * a.shape[axis]
	}
	strides := make([]int, 0, ndims+1)
	strides = append(strides, a.strides[:axis]...)
	strides = append(strides, stride)
	strides = append(strides, a.strides[axis:]...)

	return a.newView(a.offset, shape, strides), nil
}
