package tensor

import "fmt"

// New creates a zero-filled array that owns its buffer.
// An empty shape yields the empty sentinel with shape [0].
//
// Example:
//
//	a, err := tensor.New[float32](tensor.Shape{3, 4}, tensor.ColumnMajor)
func New[T DType](shape Shape, order Order) (*Array[T], error) {
	if err := order.validate(); err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newOwned[T](shape, order), nil
}

// NewFunc creates an array whose element at logical (row-major) position k is gen(k),
// whatever the physical order.
//
// Example:
//
//	a, _ := tensor.NewFunc(tensor.Shape{2, 2, 3}, tensor.RowMajor, func(i int) int { return i })
func NewFunc[T DType](shape Shape, order Order, gen func(flat int) T) (*Array[T], error) {
	a, err := New[T](shape, order)
	if err != nil {
		return nil, err
	}
	k := 0
	for p := range a.All() {
		*p = gen(k)
		k++
	}
	return a, nil
}

// NewFuncIndex creates an array whose element at multi-index idx is gen(idx).
// The idx slice is reused between calls and must not be retained.
//
// Example:
//
//	eye, _ := tensor.NewFuncIndex(tensor.Shape{3, 3}, tensor.RowMajor, func(idx []int) float64 {
//	    if idx[0] == idx[1] {
//	        return 1
//	    }
//	    return 0
//	})
func NewFuncIndex[T DType](shape Shape, order Order, gen func(idx []int) T) (*Array[T], error) {
	a, err := New[T](shape, order)
	if err != nil {
		return nil, err
	}
	for w := newStrideWalker(a); !w.done(); w.step() {
		a.buf.data[w.offset] = gen(w.index)
	}
	return a, nil
}

// FromSlice creates an array from data laid out in row-major logical order.
// The slice is copied; the array owns its buffer.
func FromSlice[T DType](data []T, shape Shape, order Order) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.canonical().NumElements(); n != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w", shape, n, len(data), ErrShape)
	}
	return NewFunc(shape, order, func(i int) T { return data[i] })
}

// Zeros creates a row-major array filled with the zero value.
func Zeros[T DType](shape Shape) (*Array[T], error) {
	return New[T](shape, RowMajor)
}

// Full creates a row-major array filled with value.
//
// Example:
//
//	t, _ := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	a, err := New[T](shape, RowMajor)
	if err != nil {
		return nil, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = value
	}
	return a, nil
}

// Arange creates a 1-D array holding 0, 1, ..., n-1.
func Arange[T Number](n int) (*Array[T], error) {
	return NewFunc(Shape{n}, RowMajor, func(i int) T { return T(i) })
}

// Matrix creates a rows×cols array with element (i, j) = gen(i, j).
// Zero rows or zero columns is a shape error.
func Matrix[T DType](rows, cols int, order Order, gen func(i, j int) T) (*Array[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix dimensions %dx%d must be > 0: %w", rows, cols, ErrShape)
	}
	return NewFuncIndex(Shape{rows, cols}, order, func(idx []int) T { return gen(idx[0], idx[1]) })
}

// FromRows creates a row-major matrix from a slice of equally sized rows.
func FromRows[T DType](rows [][]T) (*Array[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix needs at least one row and one column: %w", ErrShape)
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d: %w", i, len(r), cols, ErrShape)
		}
	}
	return Matrix(len(rows), cols, RowMajor, func(i, j int) T { return rows[i][j] })
}

// Eye creates an n×n identity matrix.
func Eye[T Number](n int) (*Array[T], error) {
	return Matrix(n, n, RowMajor, func(i, j int) T {
		if i == j {
			return 1
		}
		return 0
	})
}

// Must panics if err is non-nil and returns a otherwise.
// Intended for constructing fixtures whose shapes are known to be valid.
func Must[T DType](a *Array[T], err error) *Array[T] {
	if err != nil {
		panic(err)
	}
	return a
}
