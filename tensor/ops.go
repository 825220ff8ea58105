// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/strided/internal/tensor"
)

// Indexing

// Index selects one position along an axis and drops the axis.
func Index(i int) Indexer { return tensor.Index(i) }

// Range keeps length positions starting at start.
func Range(start, length int) Indexer { return tensor.Range(start, length) }

// Span keeps the half-open interval [start, stop).
func Span(start, stop int) Indexer { return tensor.Span(start, stop) }

// Whole keeps the whole axis.
func Whole() Indexer { return tensor.Whole() }

// Traversal

// Zip pairs the logical elements of a and b, which must have equal size.
//
// Example:
//
//	pairs, err := tensor.Zip(dst, src)
//	for d, s := range pairs {
//	    *d += *s
//	}
func Zip[T DType](a, b *Array[T]) (iter.Seq2[*T, *T], error) {
	return tensor.Zip(a, b)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T DType](a, b *Array[T]) bool {
	return tensor.Equal(a, b)
}

// Reductions

// Add returns a + b.
func Add[T Number](a, b T) T { return tensor.Add(a, b) }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return tensor.Mul(a, b) }

// Max returns the larger of a and b.
func Max[T Number](a, b T) T { return tensor.Max(a, b) }

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T { return tensor.Min(a, b) }

// Sum reduces a along axis with addition.
//
// Example:
//
//	m, _ := tensor.FromRows([][]int{{1, 2}, {3, 4}})
//	s, _ := tensor.Sum(m, 0) // [4 6]
func Sum[T Number](a *Array[T], axis int) (*Array[T], error) {
	return tensor.Sum(a, axis)
}

// CumSum accumulates a along axis with addition.
func CumSum[T Number](a *Array[T], axis int) (*Array[T], error) {
	return tensor.CumSum(a, axis)
}
