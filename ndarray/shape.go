// SPDX-License-Identifier: MIT
// Package ndarray: shape arithmetic helpers (internal).
//
// Purpose:
//   - Centralize element counting, row-major stride computation, flat-offset
//     mapping, coordinate unraveling and broadcast resolution.
//   - Keep operation files free of ad hoc index math.
//
// Determinism & Performance:
//   - All helpers are pure, deterministic, and allocate at most one slice.
//   - Broadcasting follows the standard right-aligned rule: shorter shapes are
//     padded with 1s on the left; dimensions match when equal or one of them is 1.

package ndarray

// Rank bounds supported by the package. The surface models 1D vectors,
// 2D tables and 3D stacks; higher ranks are rejected at construction.
const (
	// MinRank is the smallest supported array rank.
	MinRank = 1

	// MaxRank is the largest supported array rank.
	MaxRank = 3
)

// cloneInts returns a defensive copy of s (nil stays nil).
func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// numElements returns the product of all dimension sizes.
// A zero dimension yields zero; an empty shape yields zero.
func numElements(shape []int) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// rowMajorStrides computes element strides for a row-major layout:
// strides[last] = 1; strides[i] = strides[i+1] * shape[i+1].
// Complexity: O(rank).
func rowMajorStrides(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	strides := make([]int, len(shape))
	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}

	return strides
}

// offsetOf maps validated per-dimension indices to a flat offset.
// Callers MUST bounds-check first; this helper performs no validation.
// Complexity: O(rank).
func offsetOf(strides, indices []int) int {
	off := 0
	for d, i := range indices {
		off += i * strides[d]
	}

	return off
}

// unravel converts a flat row-major position into per-dimension indices.
// Callers MUST ensure 0 ≤ flat < numElements(shape). Complexity: O(rank).
func unravel(flat int, shape []int) []int {
	idx := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d] = flat % shape[d]
		flat /= shape[d]
	}

	return idx
}

// broadcastShapes resolves the common shape of a and b under right-aligned
// broadcasting, or returns ErrBroadcast when no such shape exists.
// Stage 1 (Align): pad the shorter shape with 1s on the left.
// Stage 2 (Resolve): per dimension, equal sizes stay; size 1 expands; else fail.
// Complexity: O(max rank).
func broadcastShapes(a, b []int) ([]int, error) {
	// Determine the output rank.
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int, n)

	// Walk dimensions right-to-left, reading 1 for missing leading dims.
	for i := 1; i <= n; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db:
			out[n-i] = da
		case da == 1:
			out[n-i] = db
		case db == 1:
			out[n-i] = da
		default:
			return nil, ErrBroadcast
		}
	}

	return out, nil
}

// broadcastOffset maps an output coordinate to the flat offset inside an
// operand of shape src (right-aligned against the output shape).
// Dimensions of size 1 in src pin their index to 0 (the broadcast rule).
// Callers MUST pass a coordinate valid for the output shape. Complexity: O(rank).
func broadcastOffset(coord []int, src, srcStrides []int) int {
	shift := len(coord) - len(src) // leading output dims absent from src
	off := 0
	for d := 0; d < len(src); d++ {
		i := coord[shift+d]
		if src[d] == 1 {
			i = 0 // broadcast dimension: every output index reads element 0
		}
		off += i * srcStrides[d]
	}

	return off
}
