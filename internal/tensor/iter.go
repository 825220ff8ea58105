package tensor

import (
	"fmt"
	"iter"
)

// strideWalker enumerates buffer offsets of an array in logical row-major
// order. It keeps a multi-index and advances it like an odometer: bump the
// last axis, carry into earlier axes on overflow.
type strideWalker struct {
	shape     Shape
	strides   []int
	index     []int
	offset    int
	remaining int
}

func newStrideWalker[T DType](a *Array[T]) *strideWalker {
	return &strideWalker{
		shape:     a.shape,
		strides:   a.strides,
		index:     make([]int, len(a.shape)),
		offset:    a.offset,
		remaining: a.size,
	}
}

func (w *strideWalker) done() bool {
	return w.remaining == 0
}

// step moves to the next logical element.
func (w *strideWalker) step() {
	w.remaining--
	if w.remaining == 0 {
		return
	}
	for d := len(w.shape) - 1; d >= 0; d-- {
		w.index[d]++
		w.offset += w.strides[d]
		if w.index[d] < w.shape[d] {
			return
		}
		w.offset -= w.strides[d] * w.shape[d]
		w.index[d] = 0
	}
}

// next returns the current offset and advances.
func (w *strideWalker) next() (int, bool) {
	if w.done() {
		return 0, false
	}
	off := w.offset
	w.step()
	return off, true
}

// All returns the logical elements of a in row-major order as mutable
// pointers. It walks the strides, so it is correct for any layout.
//
// Example:
//
//	for p := range a.All() {
//	    *p *= 2
//	}
func (a *Array[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		data := a.buf.data
		w := newStrideWalker(a)
		for {
			off, ok := w.next()
			if !ok || !yield(&data[off]) {
				return
			}
		}
	}
}

// AllContiguous walks the buffer linearly from the array's first element
// without multi-index bookkeeping.
//
// The array must be row-major contiguous (every 1-D array with unit stride
// qualifies). This is not checked: on a column-major array the elements come
// out in physical rather than logical order, and on a strided array the walk
// visits elements that do not belong to the view.
func (a *Array[T]) AllContiguous() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		data := a.buf.data
		for i := a.offset; i < a.offset+a.size; i++ {
			if !yield(&data[i]) {
				return
			}
		}
	}
}

// Walk calls fn with the logical position and a pointer to each element,
// stopping early if fn returns false.
func (a *Array[T]) Walk(fn func(i int, p *T) bool) {
	i := 0
	for p := range a.All() {
		if !fn(i, p) {
			return
		}
		i++
	}
}

// Values copies the logical elements into a new slice in row-major order.
func (a *Array[T]) Values() []T {
	out := make([]T, 0, a.size)
	for p := range a.All() {
		out = append(out, *p)
	}
	return out
}

// Zip pairs the logical elements of a and b position by position.
// Both arrays must hold the same number of elements; their shapes may differ.
//
// Example:
//
//	pairs, err := tensor.Zip(dst, src)
//	if err != nil {
//	    return err
//	}
//	for d, s := range pairs {
//	    *d = *s
//	}
func Zip[T DType](a, b *Array[T]) (iter.Seq2[*T, *T], error) {
	if a.size != b.size {
		return nil, fmt.Errorf("cannot pair %d elements with %d: %w", a.size, b.size, ErrShape)
	}
	return func(yield func(*T, *T) bool) {
		da, db := a.buf.data, b.buf.data
		wa, wb := newStrideWalker(a), newStrideWalker(b)
		for {
			oa, ok := wa.next()
			if !ok {
				return
			}
			ob, _ := wb.next()
			if !yield(&da[oa], &db[ob]) {
				return
			}
		}
	}, nil
}

// Equal reports whether a and b have the same shape and equal elements.
func Equal[T DType](a, b *Array[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	pairs, err := Zip(a, b)
	if err != nil {
		return false
	}
	for x, y := range pairs {
		if *x != *y {
			return false
		}
	}
	return true
}
