// SPDX-License-Identifier: MIT
// Package ndarray: per-dimension selection (Get and Slice).
//
// Purpose:
//   - Resolve a list of Selectors against the receiver's shape into explicit
//     per-dimension source-index lists, then copy the selection into a fresh
//     array (copy-by-default; the receiver is never aliased).
//
// Semantics:
//   - Missing trailing selectors behave as All().
//   - Index(i) collapses its dimension; Span/All keep theirs.
//   - A full-rank pure-Index selection yields a rank-1, length-1 array; use
//     At for a scalar read.
//
// Determinism & Performance:
//   - Odometer traversal in row-major order; output order equals source order.
//   - O(rank) validation, O(result) copy, one allocation for the result.

package ndarray

// Operation name constants for unified error wrapping.
const (
	opGet   = "Get"
	opSlice = "Slice"
)

// resolved holds the explicit source indices selected along one dimension,
// plus whether the dimension survives in the output shape.
type resolved struct {
	indices []int
	keep    bool
}

// resolveSelector validates sel against dimension size dim and expands it
// into explicit source indices.
// Stage 1 (Validate): bounds per selector kind; step ≥ 1 for spans.
// Stage 2 (Expand): enumerate selected indices in ascending order.
func resolveSelector(sel Selector, dim int) (resolved, error) {
	switch sel.kind {
	case selIndex:
		if sel.start < 0 || sel.start >= dim {
			return resolved{}, ErrOutOfRange
		}

		return resolved{indices: []int{sel.start}, keep: false}, nil

	case selSpan:
		if sel.step < 1 {
			return resolved{}, ErrOutOfDomain
		}
		if sel.start < 0 || sel.stop > dim || sel.start > sel.stop {
			return resolved{}, ErrOutOfRange
		}
		idx := make([]int, 0, (sel.stop-sel.start+sel.step-1)/sel.step)
		for i := sel.start; i < sel.stop; i += sel.step {
			idx = append(idx, i)
		}

		return resolved{indices: idx, keep: true}, nil

	default: // selAll
		idx := make([]int, dim)
		for i := range idx {
			idx[i] = i
		}

		return resolved{indices: idx, keep: true}, nil
	}
}

// selectCopy implements the shared Get/Slice machinery.
func (a *Array) selectCopy(tag string, selectors []Selector) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	// More selectors than dimensions is a rank violation, not an index one.
	if len(selectors) > len(a.shape) {
		return nil, arrayErrorf(tag, ErrRank)
	}

	// Resolve every dimension; unspecified trailing dimensions select all.
	res := make([]resolved, len(a.shape))
	for d := range a.shape {
		sel := All()
		if d < len(selectors) {
			sel = selectors[d]
		}
		r, err := resolveSelector(sel, a.shape[d])
		if err != nil {
			return nil, arrayErrorf(tag, err)
		}
		res[d] = r
	}

	// Build the output shape from surviving dimensions. A fully collapsed
	// selection degrades to a rank-1, length-1 array.
	outShape := make([]int, 0, len(a.shape))
	for _, r := range res {
		if r.keep {
			outShape = append(outShape, len(r.indices))
		}
	}
	if len(outShape) == 0 {
		outShape = append(outShape, 1)
	}

	out := a.derive(outShape)

	// Odometer over the resolved per-dimension index lists, row-major.
	// The visit order matches the output's row-major order, so the copy
	// writes sequentially.
	coord := make([]int, len(res)) // position within each resolved list
	src := make([]int, len(res))   // source index per dimension
	for pos := 0; pos < len(out.data); pos++ {
		for d := range res {
			src[d] = res[d].indices[coord[d]]
		}
		out.data[pos] = a.data[offsetOf(a.strides, src)]

		// Advance the odometer (rightmost dimension spins fastest).
		for d := len(res) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < len(res[d].indices) {
				break
			}
			coord[d] = 0
		}
	}

	return out, nil
}

// Get returns a copy of the sub-array at the given per-dimension selectors.
// Fails with ErrRank when more selectors than dimensions are given, with
// ErrOutOfRange when a selector violates its dimension's bounds, and with
// ErrOutOfDomain for a non-positive span step. Complexity: O(result).
func (a *Array) Get(selectors ...Selector) (*Array, error) {
	return a.selectCopy(opGet, selectors)
}

// Slice returns a copy of the sub-array described by mixed index, span and
// step selectors. Identical semantics and failure modes as Get; kept as the
// named entry point for range selection. Complexity: O(result).
func (a *Array) Slice(selectors ...Selector) (*Array, error) {
	return a.selectCopy(opSlice, selectors)
}
