package tensor

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Array is a strided N-dimensional array of T.
//
// The logical element at multi-index (i0, ..., ik) lives at
// buf.data[offset + Σ ik*strides[k]]. A root array owns its buffer; a view
// shares the root's buffer and keeps a back-reference to the root in base,
// which keeps the root reachable for as long as the view is.
//
// Example:
//
//	a, _ := tensor.NewFunc(tensor.Shape{2, 3}, tensor.RowMajor, func(i int) float64 { return float64(i) })
//	row, _ := a.Slice(tensor.Index(1))     // view of [3 4 5]
//	_ = row.Set(42, 0)                       // visible through a
type Array[T DType] struct {
	buf     *buffer[T]
	offset  int
	shape   Shape
	strides []int
	size    int
	flags   Flags
	base    *Array[T]
	cleanup runtime.Cleanup
}

// newOwned allocates a fresh root array. The shape must already be validated.
func newOwned[T DType](shape Shape, order Order) *Array[T] {
	shape = shape.canonical()
	strides := shape.ComputeStrides(order)
	size := shape.NumElements()
	return &Array[T]{
		buf:     newBuffer[T](size),
		shape:   shape,
		strides: strides,
		size:    size,
		flags:   computeFlags(shape, strides, true),
	}
}

// newView is the raw-parts constructor used by view-producing operations.
// Callers compute and validate offset, shape and strides before calling it.
// The view takes a reference on the shared buffer that is dropped on
// Release or, failing that, when the view becomes unreachable.
func (a *Array[T]) newView(offset int, shape Shape, strides []int) *Array[T] {
	if len(shape) == 0 {
		shape, strides = Shape{0}, []int{1}
	}
	a.buf.addRef()
	v := &Array[T]{
		buf:     a.buf,
		offset:  offset,
		shape:   shape,
		strides: strides,
		size:    shape.NumElements(),
		flags:   computeFlags(shape, strides, false),
		base:    a.root(),
	}
	v.cleanup = runtime.AddCleanup(v, func(b *buffer[T]) { b.release() }, a.buf)
	return v
}

// root returns the ownership root of a.
func (a *Array[T]) root() *Array[T] {
	if a.base != nil {
		return a.base
	}
	return a
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's strides, in elements.
func (a *Array[T]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// NDims returns the number of dimensions.
func (a *Array[T]) NDims() int {
	return len(a.shape)
}

// Size returns the number of logical elements.
func (a *Array[T]) Size() int {
	return a.size
}

// Flags returns the layout and ownership flags.
func (a *Array[T]) Flags() Flags {
	return a.flags
}

// DType returns the runtime element type.
func (a *Array[T]) DType() DataType {
	return inferDataType[T]()
}

// ByteSize returns Size() times the element width.
func (a *Array[T]) ByteSize() int {
	var zero T
	return a.size * int(unsafe.Sizeof(zero))
}

// Base returns the ownership root of a view, or nil for a root array.
func (a *Array[T]) Base() *Array[T] {
	return a.base
}

// IsView reports whether a shares another array's buffer without owning it.
func (a *Array[T]) IsView() bool {
	return a.base != nil
}

// SharesBuffer reports whether a and other alias the same storage.
func (a *Array[T]) SharesBuffer(other *Array[T]) bool {
	return a.buf != nil && a.buf == other.buf
}

// Refs returns the number of live holders of the buffer (root plus views).
func (a *Array[T]) Refs() int {
	if a.buf == nil {
		return 0
	}
	return a.buf.refs()
}

// Release gives up a's hold on its buffer.
//
// Releasing a view drops its reference. Releasing a root fails with
// ErrLiveViews while views still reference the buffer, so a root can never
// be released before the views that depend on it. An array must not be
// used after it has been released.
//
// A view that is dropped without Release keeps its reference until the
// garbage collector runs its cleanup, so until then the root's Release
// fails. Release intermediate views (for example a Reshape or Slice result
// that is only read once) before releasing the root.
func (a *Array[T]) Release() error {
	if a.buf == nil {
		return ErrReleased
	}
	if a.base == nil && !a.buf.isUnique() {
		return fmt.Errorf("%d views outstanding: %w", a.buf.refs()-1, ErrLiveViews)
	}
	if a.base != nil {
		a.cleanup.Stop()
	}
	a.buf.release()
	a.buf = nil
	return nil
}

// String returns a short summary of the array. It does not print elements.
func (a *Array[T]) String() string {
	kind := "owner"
	if a.base != nil {
		kind = "view"
	}
	return fmt.Sprintf("Array[%s]%v %s %s", a.DType(), []int(a.shape), a.flags.Layout, kind)
}
