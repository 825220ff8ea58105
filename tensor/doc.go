// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided N-dimensional arrays.
//
// # Overview
//
// An Array[T] is a typed buffer plus a shape and per-axis strides. Slicing,
// transposing, reshaping a contiguous array and taking a diagonal all produce
// views that alias the original buffer; Duplicate produces an independent copy.
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/tensor"
//
//	func main() {
//	    a, _ := tensor.NewFunc(tensor.Shape{2, 2, 3}, tensor.RowMajor, func(i int) int { return i })
//
//	    row, _ := a.Slice(tensor.Index(1))         // shape [2 3], values 6..11
//	    block, _ := a.Slice(tensor.Whole(), tensor.Range(0, 1))
//	    flat, _ := a.Reshape(-1)                    // zero-copy, shape [12]
//	    dup, _ := row.Duplicate(tensor.ColumnMajor)  // owns its data
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int, int32, int64, uint8 and bool.
//
// # Layout
//
// Every array carries Flags recomputed from its shape and strides after each
// operation: row-major contiguous, column-major contiguous (exclusive above
// one dimension) or neither, plus whether it owns its buffer.
//
// # Iteration
//
// All walks any array in logical row-major order using its strides.
// AllContiguous walks the buffer linearly and is only valid on row-major
// contiguous arrays: on a column-major array it yields physical order
// (a 2×3 array 0..5 comes out as 0 3 1 4 2 5), so the two strategies agree
// only when Flags().RowMajorContiguous() holds. Zip pairs two arrays of equal
// size element by element.
//
// # Memory Management
//
// Views keep a reference to their root array, so the root outlives them.
// Release gives up a hold on the buffer explicitly; releasing a root while
// views are still live fails with ErrLiveViews. A view dropped without
// Release counts as live until the garbage collector cleans it up, so
// release intermediate views before releasing their root.
//
// # Errors
//
// Failures wrap ErrShape, ErrIndex or ErrValue; match them with errors.Is.
package tensor
