package tensor

import "fmt"

// BinaryOp combines two elements. Reductions call op(acc, x); accumulations
// call op(previous, current) and store the result in current.
type BinaryOp[T DType] func(a, b T) T

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Max returns the larger of a and b.
func Max[T Number](a, b T) T { return max(a, b) }

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T { return min(a, b) }

// axisSelector selects position k along axis and keeps every other axis.
func axisSelector(ndims, axis, k int) []Indexer {
	idx := make([]Indexer, ndims)
	idx[axis] = Index(k)
	return idx
}

// ReduceAxis folds the array along axis with op and returns an owning array
// without that axis (a 1-D input reduces to shape [1]). The accumulator
// starts as a copy of position 0; each later position is combined into it
// element by element.
//
// Example:
//
//	// a has shape [2, 3]; sums has shape [3].
//	sums, err := a.ReduceAxis(0, tensor.Add[float64])
func (a *Array[T]) ReduceAxis(axis int, op BinaryOp[T]) (*Array[T], error) {
	ndims := len(a.shape)
	axis, err := normalizeAxis(axis, ndims)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}

	first, err := a.Slice(axisSelector(ndims, axis, 0)...)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	acc, err := first.Duplicate(KeepOrder)
	first.Release() //nolint:errcheck,gosec // view release cannot fail
	if err != nil {
		return nil, err
	}

	for k := 1; k < a.shape[axis]; k++ {
		s, err := a.Slice(axisSelector(ndims, axis, k)...)
		if err != nil {
			return nil, err
		}
		pairs, err := Zip(acc, s)
		if err != nil {
			return nil, err
		}
		for p, x := range pairs {
			*p = op(*p, *x)
		}
		s.Release() //nolint:errcheck,gosec // view release cannot fail
	}
	return acc, nil
}

// AccumulateAxis returns an owning copy of the array where every position
// along axis holds op applied to the running value at the previous position
// and its own value, e.g. a cumulative sum for Add.
func (a *Array[T]) AccumulateAxis(axis int, op BinaryOp[T]) (*Array[T], error) {
	ndims := len(a.shape)
	axis, err := normalizeAxis(axis, ndims)
	if err != nil {
		return nil, fmt.Errorf("accumulate: %w", err)
	}

	out, err := a.Duplicate(KeepOrder)
	if err != nil {
		return nil, err
	}

	for k := 1; k < a.shape[axis]; k++ {
		prev, err := out.Slice(axisSelector(ndims, axis, k-1)...)
		if err != nil {
			return nil, err
		}
		cur, err := out.Slice(axisSelector(ndims, axis, k)...)
		if err != nil {
			return nil, err
		}
		pairs, err := Zip(cur, prev)
		if err != nil {
			return nil, err
		}
		for c, p := range pairs {
			*c = op(*p, *c)
		}
		prev.Release() //nolint:errcheck,gosec // view release cannot fail
		cur.Release()  //nolint:errcheck,gosec // view release cannot fail
	}
	return out, nil
}

// Sum reduces along axis with addition.
func Sum[T Number](a *Array[T], axis int) (*Array[T], error) {
	return a.ReduceAxis(axis, Add[T])
}

// CumSum accumulates along axis with addition.
func CumSum[T Number](a *Array[T], axis int) (*Array[T], error) {
	return a.AccumulateAxis(axis, Add[T])
}
