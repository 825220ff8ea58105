package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		order Order
		want  []int
	}{
		{Shape{5}, RowMajor, []int{1}},
		{Shape{3, 4}, RowMajor, []int{4, 1}},
		{Shape{3, 4}, ColumnMajor, []int{1, 3}},
		{Shape{2, 3, 4}, RowMajor, []int{12, 4, 1}},
		{Shape{2, 3, 4}, ColumnMajor, []int{1, 2, 6}},
		{Shape{2, 3, 4}, KeepOrder, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.ComputeStrides(tt.order), "Shape%v order %s", tt.shape, tt.order)
	}
}

func TestConstructionStridesAreContiguous(t *testing.T) {
	shapes := []Shape{
		{}, {0}, {1}, {7}, {1, 1}, {3, 1}, {1, 3}, {3, 4}, {0, 4}, {4, 0},
		{2, 3, 4}, {2, 1, 4}, {5, 4, 3, 2}, {1, 1, 1, 1},
	}

	for _, shape := range shapes {
		row := Must(New[float32](shape, RowMajor))
		assert.True(t, isRowMajorContiguous(row.shape, row.strides), "row-major %v", shape)
		assert.True(t, row.Flags().RowMajorContiguous(), "row-major flag %v", shape)

		col := Must(New[float32](shape, ColumnMajor))
		assert.True(t, isColumnMajorContiguous(col.shape, col.strides), "column-major %v", shape)
		assert.True(t, col.Flags().Contiguous(), "column-major flag %v", shape)
	}
}

func TestFlagsExclusiveAboveOneDim(t *testing.T) {
	cases := []struct {
		shape   Shape
		strides []int
		want    Layout
	}{
		{Shape{1, 1}, []int{1, 1}, LayoutRowMajor},
		{Shape{0, 3}, []int{3, 1}, LayoutRowMajor},
		{Shape{3, 4}, []int{4, 1}, LayoutRowMajor},
		{Shape{3, 4}, []int{1, 3}, LayoutColumnMajor},
		{Shape{3, 2}, []int{4, 1}, LayoutNone},
		{Shape{2, 2}, []int{2, 2}, LayoutNone},
	}

	for _, c := range cases {
		f := computeFlags(c.shape, c.strides, false)
		assert.Equal(t, c.want, f.Layout, "Shape%v strides %v", c.shape, c.strides)
		assert.False(t, f.Layout == LayoutBoth, "Shape%v reported both layouts", c.shape)
	}
}

func TestFlagsOneDim(t *testing.T) {
	assert.Equal(t, LayoutBoth, computeFlags(Shape{5}, []int{1}, true).Layout)
	assert.Equal(t, LayoutBoth, computeFlags(Shape{1}, []int{7}, true).Layout)
	assert.Equal(t, LayoutBoth, computeFlags(Shape{0}, []int{1}, true).Layout)
	assert.Equal(t, LayoutNone, computeFlags(Shape{5}, []int{2}, true).Layout)

	f := computeFlags(Shape{5}, []int{1}, true)
	assert.True(t, f.RowMajorContiguous())
	assert.True(t, f.ColumnMajorContiguous())
	assert.True(t, f.OwnsBuffer)
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
	}{
		{"C", RowMajor},
		{"c", RowMajor},
		{"F", ColumnMajor},
		{"", KeepOrder},
		{"A", KeepOrder},
		{"K", KeepOrder},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseOrder("Z")
	require.ErrorIs(t, err, ErrValue)
}

func TestOrderValidate(t *testing.T) {
	require.NoError(t, KeepOrder.validate())
	require.NoError(t, RowMajor.validate())
	require.NoError(t, ColumnMajor.validate())
	require.ErrorIs(t, Order(42).validate(), ErrValue)
	assert.Equal(t, "Order(42)", Order(42).String())
}
