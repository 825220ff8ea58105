// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/strided/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int, int32, int64, uint8, bool.
type DType = tensor.DType

// Number is the arithmetic subset of DType.
type Number = tensor.Number

// DataType represents the runtime element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Order is a memory layout marker.
type Order = tensor.Order

// Layout markers.
const (
	KeepOrder   Order = tensor.KeepOrder
	RowMajor    Order = tensor.RowMajor
	ColumnMajor Order = tensor.ColumnMajor
)

// Layout classifies an array's memory layout.
type Layout = tensor.Layout

// Layout classes.
const (
	LayoutNone        Layout = tensor.LayoutNone
	LayoutRowMajor    Layout = tensor.LayoutRowMajor
	LayoutColumnMajor Layout = tensor.LayoutColumnMajor
	LayoutBoth        Layout = tensor.LayoutBoth
)

// Flags describes an array's layout and ownership.
type Flags = tensor.Flags

// Array is a strided N-dimensional array.
//
// Example:
//
//	a, _ := tensor.New[float32](tensor.Shape{3, 4}, tensor.RowMajor)
//	col, _ := a.Slice(tensor.Whole(), tensor.Index(0)) // view of column 0
//	_ = col.Fill(1)                                    // writes into a
type Array[T DType] = tensor.Array[T]

// Indexer selects along one axis; see Index, Range, Span and Whole.
type Indexer = tensor.Indexer

// BinaryOp combines two elements during reduction or accumulation.
type BinaryOp[T DType] = tensor.BinaryOp[T]

// Errors.
var (
	ErrShape     = tensor.ErrShape
	ErrIndex     = tensor.ErrIndex
	ErrValue     = tensor.ErrValue
	ErrLiveViews = tensor.ErrLiveViews
	ErrReleased  = tensor.ErrReleased
)

// ParseOrder converts "C", "F", "A", "K" or "" into an Order.
func ParseOrder(s string) (Order, error) {
	return tensor.ParseOrder(s)
}

// Creation functions

// New creates a zero-filled array in the given order.
//
// Example:
//
//	x, err := tensor.New[float32](tensor.Shape{2, 3}, tensor.ColumnMajor)
func New[T DType](shape Shape, order Order) (*Array[T], error) {
	return tensor.New[T](shape, order)
}

// NewFunc creates an array whose k-th element in row-major logical order is gen(k).
//
// Example:
//
//	x, _ := tensor.NewFunc(tensor.Shape{2, 3}, tensor.RowMajor, func(i int) float64 { return float64(i) })
func NewFunc[T DType](shape Shape, order Order, gen func(flat int) T) (*Array[T], error) {
	return tensor.NewFunc(shape, order, gen)
}

// NewFuncIndex creates an array whose element at multi-index idx is gen(idx).
func NewFuncIndex[T DType](shape Shape, order Order, gen func(idx []int) T) (*Array[T], error) {
	return tensor.NewFuncIndex(shape, order, gen)
}

// FromSlice creates an array from data given in row-major logical order.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.RowMajor)
func FromSlice[T DType](data []T, shape Shape, order Order) (*Array[T], error) {
	return tensor.FromSlice(data, shape, order)
}

// Zeros creates a row-major array filled with zeros.
func Zeros[T DType](shape Shape) (*Array[T], error) {
	return tensor.Zeros[T](shape)
}

// Full creates a row-major array filled with value.
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	return tensor.Full(shape, value)
}

// Arange creates the 1-D array 0, 1, ..., n-1.
func Arange[T Number](n int) (*Array[T], error) {
	return tensor.Arange[T](n)
}

// Eye creates an n×n identity matrix.
func Eye[T Number](n int) (*Array[T], error) {
	return tensor.Eye[T](n)
}

// Matrix creates a rows×cols array with element (i, j) = gen(i, j).
func Matrix[T DType](rows, cols int, order Order, gen func(i, j int) T) (*Array[T], error) {
	return tensor.Matrix(rows, cols, order, gen)
}

// FromRows creates a row-major matrix from equally sized rows.
//
// Example:
//
//	m, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
func FromRows[T DType](rows [][]T) (*Array[T], error) {
	return tensor.FromRows(rows)
}

// Must panics on error; for fixtures with known-valid shapes.
func Must[T DType](a *Array[T], err error) *Array[T] {
	return tensor.Must(a, err)
}
