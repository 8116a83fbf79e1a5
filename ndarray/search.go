// SPDX-License-Identifier: MIT
// Package ndarray: search, sort and filter.
//
// Purpose:
//   - Find/FindFunc: ordered index-tuple lookup; "nothing matched" is an
//     empty result, never an error.
//   - SortedCopy/SortInPlace: stable per-lane ordering along an axis, in
//     both directions. Stability is a documented commitment (reproducible
//     results under ties).
//   - Filter: predicate selection flattened in row-major order.
//
// Determinism & Performance:
//   - All traversals run in fixed row-major order.
//   - Sorting gathers each lane into a scratch buffer, orders it with a
//     stable sort, and writes back: O(n log L) per axis with lane length L.
//   - SortInPlace validates fully before touching the receiver
//     (all-or-nothing per call).

package ndarray

import "sort"

// Operation name constants for unified error wrapping.
const (
	opSortedCopy  = "SortedCopy"
	opSortInPlace = "SortInPlace"
	opFind        = "Find"
)

// Find returns the ordered (row-major) index tuples of every element equal
// to value within the array's configured epsilon (WithEpsilon; default
// exact). An empty result is nil, not a failure. Complexity: O(n·rank).
func (a *Array) Find(value float64) ([][]int, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opFind, err)
	}
	eps := a.opts.eps

	return a.findFunc(func(v float64) bool {
		d := v - value
		if d < 0 {
			d = -d
		}

		return d <= eps
	}), nil
}

// FindFunc returns the ordered (row-major) index tuples of every element
// satisfying pred. An empty result is nil, not a failure. Complexity: O(n·rank).
func (a *Array) FindFunc(pred func(float64) bool) ([][]int, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opFind, err)
	}

	return a.findFunc(pred), nil
}

// findFunc is the shared match loop; the flat position of each hit is
// unraveled into a per-dimension index tuple.
func (a *Array) findFunc(pred func(float64) bool) [][]int {
	var hits [][]int
	for pos, v := range a.data {
		if pred(v) {
			hits = append(hits, unravel(pos, a.shape))
		}
	}

	return hits
}

// Filter returns the elements satisfying pred, flattened in row-major
// order. An empty result is nil, not a failure. Complexity: O(n).
func (a *Array) Filter(pred func(float64) bool) []float64 {
	var out []float64
	for _, v := range a.data {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// forEachLane visits the base offset of every lane running along axis, in
// row-major order of the remaining dimensions. A lane's elements sit at
// base, base+strides[axis], ... (shape[axis] of them). Assumes a validated
// axis. Complexity: O(n/L) visits.
func (a *Array) forEachLane(axis int, visit func(base int)) {
	// Odometer over all dimensions with the axis pinned to zero.
	coord := make([]int, len(a.shape))
	lanes := 1
	for d, s := range a.shape {
		if d != axis {
			lanes *= s
		}
	}
	for l := 0; l < lanes; l++ {
		visit(offsetOf(a.strides, coord))

		for d := len(a.shape) - 1; d >= 0; d-- {
			if d == axis {
				continue // the axis dimension stays pinned
			}
			coord[d]++
			if coord[d] < a.shape[d] {
				break
			}
			coord[d] = 0
		}
	}
}

// sortLanes orders every lane along axis using a stable sort.
func (a *Array) sortLanes(axis int, order Order) {
	laneLen := a.shape[axis]
	step := a.strides[axis]
	buf := make([]float64, laneLen) // scratch reused across lanes

	a.forEachLane(axis, func(base int) {
		// Gather the lane.
		for i := 0; i < laneLen; i++ {
			buf[i] = a.data[base+i*step]
		}
		// Order it stably in the requested direction.
		if order == Ascending {
			sort.SliceStable(buf, func(i, j int) bool { return buf[i] < buf[j] })
		} else {
			sort.SliceStable(buf, func(i, j int) bool { return buf[i] > buf[j] })
		}
		// Scatter it back.
		for i := 0; i < laneLen; i++ {
			a.data[base+i*step] = buf[i]
		}
	})
}

// validateSort shares the Sort* guard sequence.
func (a *Array) validateSort(tag string, axis int, order Order) error {
	if err := validateNotNil(a); err != nil {
		return arrayErrorf(tag, err)
	}
	if order != Ascending && order != Descending {
		return arrayErrorf(tag, ErrOutOfDomain)
	}
	if err := validateAxis(a, axis); err != nil {
		return arrayErrorf(tag, err)
	}

	return nil
}

// SortedCopy returns a new array with every lane along axis ordered in the
// given direction; the receiver is unchanged. Errors: ErrAxis for an
// invalid axis, ErrOutOfDomain for an unknown order.
// Complexity: O(n log L) with lane length L.
func (a *Array) SortedCopy(axis int, order Order) (*Array, error) {
	if err := a.validateSort(opSortedCopy, axis, order); err != nil {
		return nil, err
	}

	out := a.Clone()
	out.sortLanes(axis, order)

	return out, nil
}

// SortInPlace orders every lane along axis in the given direction, mutating
// the receiver. Validation precedes any write; on error the receiver is
// untouched. Same failure modes as SortedCopy. Complexity: O(n log L).
func (a *Array) SortInPlace(axis int, order Order) error {
	if err := a.validateSort(opSortInPlace, axis, order); err != nil {
		return err
	}
	a.sortLanes(axis, order)

	return nil
}
