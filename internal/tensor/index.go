package tensor

import "fmt"

type indexerKind int

const (
	kindWhole indexerKind = iota
	kindIndex
	kindRange
	kindSpan
)

// Indexer selects along one axis: a single position, a bounded range, or
// the whole axis. The zero value selects the whole axis.
type Indexer struct {
	kind indexerKind
	a, b int
}

// Index selects one position and drops the axis from the result.
// Negative values count from the end.
func Index(i int) Indexer {
	return Indexer{kind: kindIndex, a: i}
}

// Range keeps length positions starting at start.
// A negative start counts from the end.
func Range(start, length int) Indexer {
	return Indexer{kind: kindRange, a: start, b: length}
}

// Span keeps the half-open interval [start, stop).
// Negative bounds count from the end.
func Span(start, stop int) Indexer {
	return Indexer{kind: kindSpan, a: start, b: stop}
}

// Whole keeps the whole axis.
func Whole() Indexer {
	return Indexer{kind: kindWhole}
}

// String renders the indexer in slice notation.
func (ix Indexer) String() string {
	switch ix.kind {
	case kindIndex:
		return fmt.Sprint(ix.a)
	case kindRange:
		return fmt.Sprintf("%d:+%d", ix.a, ix.b)
	case kindSpan:
		return fmt.Sprintf("%d:%d", ix.a, ix.b)
	default:
		return ":"
	}
}

// bounds resolves a range or span against an axis of size dim.
func (ix Indexer) bounds(dim, axis int) (start, length int, err error) {
	start = ix.a
	if start < 0 {
		start += dim
	}
	switch ix.kind {
	case kindSpan:
		stop := ix.b
		if stop < 0 {
			stop += dim
		}
		length = stop - start
	default:
		length = ix.b
	}
	if start < 0 || length < 0 || start+length > dim {
		return 0, 0, fmt.Errorf("range %v out of bounds for axis %d (size %d): %w", ix, axis, dim, ErrIndex)
	}
	return start, length, nil
}

// offsetOf resolves a full multi-index to a buffer offset.
func (a *Array[T]) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("expected %d indices, got %d: %w", len(a.shape), len(idx), ErrShape)
	}
	offset := a.offset
	for d, i := range idx {
		i, err := normalizeIndex(i, a.shape[d], d)
		if err != nil {
			return 0, err
		}
		offset += a.strides[d] * i
	}
	return offset, nil
}

// At returns the element at the given multi-index.
//
// Example:
//
//	v, err := a.At(1, -1) // row 1, last column
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.buf.data[off], nil
}

// Set stores value at the given multi-index.
func (a *Array[T]) Set(value T, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return err
	}
	a.buf.data[off] = value
	return nil
}

// Ptr returns a pointer to the element at the given multi-index.
func (a *Array[T]) Ptr(idx ...int) (*T, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return nil, err
	}
	return &a.buf.data[off], nil
}

// Slice returns a view selected by one indexer per leading axis; omitted
// trailing axes are kept whole. Index collapses its axis, Range and Span keep
// it with the stride unchanged. When every axis collapses, the view keeps a
// single axis of length 1 holding the selected element.
//
// Writes through the view land in the shared buffer.
//
// Example:
//
//	// a has shape [4, 5]; v has shape [2] and aliases a[1][1], a[1][2].
//	v, err := a.Slice(tensor.Index(1), tensor.Range(1, 2))
func (a *Array[T]) Slice(idx ...Indexer) (*Array[T], error) {
	ndims := len(a.shape)
	if len(idx) > ndims {
		return nil, fmt.Errorf("%d indexers for %d dimensions: %w", len(idx), ndims, ErrShape)
	}

	shape := make(Shape, 0, ndims)
	strides := make([]int, 0, ndims)
	offset := a.offset
	for d := 0; d < ndims; d++ {
		ix := Whole()
		if d < len(idx) {
			ix = idx[d]
		}
		dim, stride := a.shape[d], a.strides[d]

		switch ix.kind {
		case kindIndex:
			i, err := normalizeIndex(ix.a, dim, d)
			if err != nil {
				return nil, err
			}
			offset += stride * i
		case kindRange, kindSpan:
			start, length, err := ix.bounds(dim, d)
			if err != nil {
				return nil, err
			}
			offset += stride * start
			shape = append(shape, length)
			strides = append(strides, stride)
		default:
			shape = append(shape, dim)
			strides = append(strides, stride)
		}
	}

	if len(shape) == 0 {
		shape, strides = Shape{1}, []int{1}
	}
	return a.newView(offset, shape, strides), nil
}

// Assign copies src into the region selected by idx, element by element in
// logical order. The region and src must hold the same number of elements.
// A src that aliases a is copied out first.
func (a *Array[T]) Assign(src *Array[T], idx ...Indexer) error {
	dst, err := a.Slice(idx...)
	if err != nil {
		return err
	}
	defer dst.Release() //nolint:errcheck // view release cannot fail

	if src.SharesBuffer(a) {
		src, err = src.Duplicate(KeepOrder)
		if err != nil {
			return err
		}
	}

	pairs, err := Zip(dst, src)
	if err != nil {
		return fmt.Errorf("assign %v into %v: %w", []int(src.shape), []int(dst.shape), err)
	}
	for d, s := range pairs {
		*d = *s
	}
	return nil
}

// Fill stores value at every position of the region selected by idx.
func (a *Array[T]) Fill(value T, idx ...Indexer) error {
	dst, err := a.Slice(idx...)
	if err != nil {
		return err
	}
	defer dst.Release() //nolint:errcheck // view release cannot fail

	for p := range dst.All() {
		*p = value
	}
	return nil
}
