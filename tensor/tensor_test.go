// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strided/tensor"
)

func identity(i int) int { return i }

func TestCollapsedSliceScenario(t *testing.T) {
	a, err := tensor.NewFunc(tensor.Shape{2, 2, 3}, tensor.RowMajor, identity)
	require.NoError(t, err)

	v, err := a.Slice(tensor.Index(1))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, v.Shape())
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, v.Values())
}

func TestDiagonalScenario(t *testing.T) {
	eye, err := tensor.NewFuncIndex(tensor.Shape{3, 3}, tensor.RowMajor, func(idx []int) int {
		if idx[0] == idx[1] {
			return 1
		}
		return 0
	})
	require.NoError(t, err)

	d, err := eye.Diagonal()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, d.Values())
}

func TestReshapeScenario(t *testing.T) {
	a, err := tensor.NewFunc(tensor.Shape{2, 4, 3}, tensor.RowMajor, identity)
	require.NoError(t, err)

	r, err := a.Reshape(2, 2, 2, 3)
	require.NoError(t, err)

	flat, err := r.Ravel()
	require.NoError(t, err)
	for k := 0; k < flat.Size(); k++ {
		v, err := flat.At(k)
		require.NoError(t, err)
		assert.Equal(t, k, v)
	}
}

func TestOneDimIndexing(t *testing.T) {
	a, err := tensor.Arange[float64](5)
	require.NoError(t, err)

	last, err := a.At(-1)
	require.NoError(t, err)
	end, err := a.At(4)
	require.NoError(t, err)
	assert.Equal(t, end, last)

	_, err = a.At(5)
	assert.True(t, errors.Is(err, tensor.ErrIndex))
}

func TestEmptyArray(t *testing.T) {
	a, err := tensor.New[int32](tensor.Shape{}, tensor.KeepOrder)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{0}, a.Shape())
	assert.Equal(t, []int{1}, a.Strides())
	assert.Equal(t, 1, a.NDims())
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 0, a.ByteSize())
	assert.Equal(t, tensor.Int32, a.DType())
	assert.True(t, a.Flags().OwnsBuffer)
	assert.NotEmpty(t, a.String())
}

func TestPublicErrors(t *testing.T) {
	a, err := tensor.Zeros[float32](tensor.Shape{2, 3})
	require.NoError(t, err)

	_, err = a.Duplicate(tensor.Order(9))
	require.ErrorIs(t, err, tensor.ErrValue)

	_, err = a.Transpose(0, 0)
	require.ErrorIs(t, err, tensor.ErrShape)

	_, err = a.Reshape(4, -1)
	require.ErrorIs(t, err, tensor.ErrShape)

	_, err = tensor.ParseOrder("X")
	require.ErrorIs(t, err, tensor.ErrValue)

	_, err = tensor.FromRows([][]float32{})
	require.ErrorIs(t, err, tensor.ErrShape)
}

func TestPublicReductions(t *testing.T) {
	m, err := tensor.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	s, err := tensor.Sum(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, s.Values())

	c, err := tensor.CumSum(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 3, 7}, c.Values())

	mx, err := m.ReduceAxis(1, tensor.Max[int])
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, mx.Values())
}

func TestPublicAssignAndZip(t *testing.T) {
	dst := tensor.Must(tensor.Full(tensor.Shape{2, 2}, 0.5))
	src := tensor.Must(tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, tensor.RowMajor))

	require.NoError(t, dst.Assign(src, tensor.Whole(), tensor.Index(0)))
	assert.Equal(t, []float64{1, 0.5, 2, 0.5}, dst.Values())

	require.NoError(t, dst.Fill(0, tensor.Span(-1, 2)))
	assert.Equal(t, []float64{1, 0.5, 0, 0}, dst.Values())

	pairs, err := tensor.Zip(dst, tensor.Must(tensor.Eye[float64](2)))
	require.NoError(t, err)
	for d, s := range pairs {
		*d += *s
	}
	assert.Equal(t, []float64{2, 0.5, 0, 1}, dst.Values())
	assert.True(t, tensor.Equal(dst, dst.ViewDuplicate()))
}
