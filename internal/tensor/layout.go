package tensor

import (
	"fmt"
	"strings"
)

// Order is a memory layout marker used when allocating or duplicating.
type Order int

// Layout markers.
const (
	// KeepOrder leaves the choice to the operation: construction uses
	// row-major, Duplicate keeps the source's current contiguity.
	KeepOrder Order = iota
	// RowMajor lays out the last axis fastest (C order).
	RowMajor
	// ColumnMajor lays out the first axis fastest (Fortran order).
	ColumnMajor
)

// String returns the conventional single-letter marker.
func (o Order) String() string {
	switch o {
	case KeepOrder:
		return "K"
	case RowMajor:
		return "C"
	case ColumnMajor:
		return "F"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func (o Order) validate() error {
	switch o {
	case KeepOrder, RowMajor, ColumnMajor:
		return nil
	default:
		return fmt.Errorf("unknown order %s: %w", o, ErrValue)
	}
}

// ParseOrder converts a marker string into an Order.
// "C" is row-major, "F" column-major, and "", "A" or "K" keep the current order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToUpper(s) {
	case "C":
		return RowMajor, nil
	case "F":
		return ColumnMajor, nil
	case "", "A", "K":
		return KeepOrder, nil
	default:
		return KeepOrder, fmt.Errorf("unknown order marker %q: %w", s, ErrValue)
	}
}

// Layout classifies the memory layout of an array.
// Only one-dimensional arrays can be LayoutBoth.
type Layout int

// Layout classes.
const (
	LayoutNone Layout = iota
	LayoutRowMajor
	LayoutColumnMajor
	LayoutBoth
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRowMajor:
		return "row-major"
	case LayoutColumnMajor:
		return "column-major"
	case LayoutBoth:
		return "contiguous"
	default:
		return "strided"
	}
}

// Flags describes an array's layout and ownership.
type Flags struct {
	Layout     Layout
	OwnsBuffer bool
}

// RowMajorContiguous reports whether the strides match the row-major layout.
func (f Flags) RowMajorContiguous() bool {
	return f.Layout == LayoutRowMajor || f.Layout == LayoutBoth
}

// ColumnMajorContiguous reports whether the strides match the column-major layout.
func (f Flags) ColumnMajorContiguous() bool {
	return f.Layout == LayoutColumnMajor || f.Layout == LayoutBoth
}

// Contiguous reports whether the array is contiguous in either order.
func (f Flags) Contiguous() bool {
	return f.Layout != LayoutNone
}

// computeFlags is the only place layout flags are derived.
// For more than one dimension the two contiguities are exclusive;
// row-major wins when both tests pass.
func computeFlags(shape Shape, strides []int, owns bool) Flags {
	f := Flags{OwnsBuffer: owns}

	if len(shape) == 1 {
		if shape[0] <= 1 || strides[0] == 1 {
			f.Layout = LayoutBoth
		}
		return f
	}

	switch {
	case isRowMajorContiguous(shape, strides):
		f.Layout = LayoutRowMajor
	case isColumnMajorContiguous(shape, strides):
		f.Layout = LayoutColumnMajor
	}
	return f
}

// isRowMajorContiguous scans from the last axis; the expected stride starts at
// one and grows by each dimension. A zero-sized dimension means nothing is
// addressed, so the layout counts as contiguous.
func isRowMajorContiguous(shape Shape, strides []int) bool {
	expected := 1
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] == 0 {
			return true
		}
		if strides[d] != expected {
			return false
		}
		expected *= shape[d]
	}
	return true
}

// isColumnMajorContiguous is the first-to-last mirror of isRowMajorContiguous.
func isColumnMajorContiguous(shape Shape, strides []int) bool {
	expected := 1
	for d := 0; d < len(shape); d++ {
		if shape[d] == 0 {
			return true
		}
		if strides[d] != expected {
			return false
		}
		expected *= shape[d]
	}
	return true
}
