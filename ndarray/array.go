// SPDX-License-Identifier: MIT
// Package ndarray: the Array value type and its constructors.
//
// Array is a dense, row-major collection of float64 elements with a fixed
// shape of rank 1–3. The shape is immutable once constructed; every
// shape-changing operation returns a new Array. The only in-place mutations
// on the surface are SetAt and SortInPlace, both of which validate fully
// before writing (all-or-nothing per call).
//
// Concurrency: an Array carries no internal locking. Concurrent reads are
// safe only while no mutation (SetAt, SortInPlace) is in flight; callers
// must serialize mutations externally.
//
// Numeric policy: by default, constructors and SetAt reject NaN/±Inf with
// ErrNaNInf; opt out with WithValidateNaNInf(false). Derived arrays inherit
// the options of the array they were derived from.

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFromNested = "FromNested"
	opFromFlat   = "FromFlat"
	opFilled     = "Filled"
	opRange      = "Range"
	opReshape    = "Reshape"
	opAt         = "At"
	opSetAt      = "SetAt"
	opAllClose   = "AllClose"
)

// Array is a dense row-major n-dimensional (rank 1–3) array of float64.
// shape holds the dimension sizes, strides the row-major element strides,
// and data the flat backing storage of length numElements(shape).
type Array struct {
	shape   []int     // dimension sizes, len in [MinRank, MaxRank]
	strides []int     // row-major element strides, len == len(shape)
	data    []float64 // flat backing storage
	opts    options   // resolved numeric policy, fixed at construction
}

// newArray allocates a zeroed array for an already-validated shape.
// Zero-size shapes (a 0 dimension) are legal here; constructors that must
// reject them do so before calling.
func newArray(shape []int, o options) *Array {
	return &Array{
		shape:   cloneInts(shape),
		strides: rowMajorStrides(shape),
		data:    make([]float64, numElements(shape)),
		opts:    o,
	}
}

// derive allocates a zeroed array with the receiver's options.
func (a *Array) derive(shape []int) *Array {
	return newArray(shape, a.opts)
}

// ingest applies the numeric policy to freshly constructed data.
func ingest(a *Array, tag string) (*Array, error) {
	if a.opts.validateNaNInf {
		if err := validateFiniteSlice(a.data); err != nil {
			return nil, arrayErrorf(tag, err)
		}
	}

	return a, nil
}

// FromNested1D builds a rank-1 array from a flat list of elements.
// An empty list yields a legal zero-size array (reductions over it fail
// with ErrEmptyArray). Complexity: O(n).
func FromNested1D(data []float64, opts ...Option) (*Array, error) {
	a := newArray([]int{len(data)}, gatherOptions(opts...))
	copy(a.data, data)

	return ingest(a, opFromNested)
}

// FromNested2D builds a rank-2 array from nested rows.
// Stage 1 (Validate): all rows must share one length, else ErrRagged.
// Stage 2 (Execute): copy rows into the flat row-major buffer.
// Stage 3 (Finalize): apply the numeric policy. Complexity: O(r*c).
func FromNested2D(rows [][]float64, opts ...Option) (*Array, error) {
	// Derive the column count from the first row (zero rows ⇒ zero cols).
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	// Reject ragged input before any allocation-dependent work.
	for _, row := range rows {
		if len(row) != cols {
			return nil, arrayErrorf(opFromNested, ErrRagged)
		}
	}

	a := newArray([]int{len(rows), cols}, gatherOptions(opts...))
	for i, row := range rows {
		copy(a.data[i*cols:(i+1)*cols], row)
	}

	return ingest(a, opFromNested)
}

// FromNested3D builds a rank-3 array from nested layers of rows.
// Every layer must hold the same number of rows and every row the same
// number of columns, else ErrRagged. Complexity: O(d*r*c).
func FromNested3D(layers [][][]float64, opts ...Option) (*Array, error) {
	// Derive rows/cols from the first layer (zero layers ⇒ zero rows/cols).
	rows, cols := 0, 0
	if len(layers) > 0 {
		rows = len(layers[0])
		if rows > 0 {
			cols = len(layers[0][0])
		}
	}
	// Reject ragged input at any nesting level.
	for _, layer := range layers {
		if len(layer) != rows {
			return nil, arrayErrorf(opFromNested, ErrRagged)
		}
		for _, row := range layer {
			if len(row) != cols {
				return nil, arrayErrorf(opFromNested, ErrRagged)
			}
		}
	}

	a := newArray([]int{len(layers), rows, cols}, gatherOptions(opts...))
	for l, layer := range layers {
		for r, row := range layer {
			base := l*rows*cols + r*cols
			copy(a.data[base:base+cols], row)
		}
	}

	return ingest(a, opFromNested)
}

// FromFlat builds an array of the given shape from flat row-major data.
// Stage 1 (Validate): shape must be supported and strictly positive;
// len(data) must equal the shape's element count.
// Stage 2 (Execute): copy data. Complexity: O(n).
func FromFlat(data []float64, shape []int, opts ...Option) (*Array, error) {
	if err := validateShape(shape); err != nil {
		return nil, arrayErrorf(opFromFlat, err)
	}
	if len(data) != numElements(shape) {
		return nil, arrayErrorf(opFromFlat, ErrBadShape)
	}

	a := newArray(shape, gatherOptions(opts...))
	copy(a.data, data)

	return ingest(a, opFromFlat)
}

// Filled builds an array of the given shape with every element equal to value.
// Non-positive dimensions and unsupported ranks fail with ErrBadShape.
// Complexity: O(n).
func Filled(shape []int, value float64, opts ...Option) (*Array, error) {
	if err := validateShape(shape); err != nil {
		return nil, arrayErrorf(opFilled, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(value); err != nil {
			return nil, arrayErrorf(opFilled, err)
		}
	}

	a := newArray(shape, o)
	for i := range a.data {
		a.data[i] = value
	}

	return a, nil
}

// Zeros builds an array of the given shape filled with 0.
func Zeros(shape []int, opts ...Option) (*Array, error) {
	return Filled(shape, 0, opts...)
}

// Ones builds an array of the given shape filled with 1.
func Ones(shape []int, opts ...Option) (*Array, error) {
	return Filled(shape, 1, opts...)
}

// Range builds a rank-1 array holding the half-open arithmetic sequence
// start, start+step, ... bounded by stop. step must be non-zero
// (ErrBadShape) and all parameters finite (ErrNaNInf). A sequence that
// cannot reach stop yields a legal zero-size array. Complexity: O(n).
//
// Combine with Reshape to obtain the classic "range reshaped to a target
// shape" constructor: Range(0, 12, 1) then Reshape(3, 4).
func Range(start, stop, step float64, opts ...Option) (*Array, error) {
	// Parameters are user data, not programmer constants: return, don't panic.
	if err := validateFinite(start); err != nil {
		return nil, arrayErrorf(opRange, err)
	}
	if err := validateFinite(stop); err != nil {
		return nil, arrayErrorf(opRange, err)
	}
	if err := validateFinite(step); err != nil {
		return nil, arrayErrorf(opRange, err)
	}
	if step == 0 {
		return nil, arrayErrorf(opRange, ErrBadShape)
	}

	// Count elements without accumulating float drift.
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}

	a := newArray([]int{n}, gatherOptions(opts...))
	for i := 0; i < n; i++ {
		a.data[i] = start + float64(i)*step
	}

	return a, nil
}

// Reshape returns a new array with the same elements in row-major order and
// the given shape. The element count must match exactly, else ErrBadShape.
// The result is a copy; the receiver is unchanged. Complexity: O(n).
func (a *Array) Reshape(shape ...int) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opReshape, err)
	}
	if err := validateShape(shape); err != nil {
		return nil, arrayErrorf(opReshape, err)
	}
	if numElements(shape) != len(a.data) {
		return nil, arrayErrorf(opReshape, ErrBadShape)
	}

	out := a.derive(shape)
	copy(out.data, a.data)

	return out, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Shape returns a copy of the dimension sizes (callers cannot mutate the
// array's shape through it).
func (a *Array) Shape() []int {
	return cloneInts(a.shape)
}

// Flatten returns a copy of the elements in row-major order.
func (a *Array) Flatten() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// indexOffset validates full-rank indices and maps them to a flat offset.
// Stage 1 (Validate): index count must equal rank; each index in bounds.
// Stage 2 (Execute): compute the row-major offset. Complexity: O(rank).
func (a *Array) indexOffset(indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, ErrRank
	}
	for d, i := range indices {
		if i < 0 || i >= a.shape[d] {
			return 0, ErrOutOfRange
		}
	}

	return offsetOf(a.strides, indices), nil
}

// At returns the element at the given full-rank indices.
// Fails with ErrRank when the index count differs from the rank and with
// ErrOutOfRange when any index is out of bounds. Complexity: O(rank).
func (a *Array) At(indices ...int) (float64, error) {
	if err := validateNotNil(a); err != nil {
		return 0, arrayErrorf(opAt, err)
	}
	off, err := a.indexOffset(indices)
	if err != nil {
		return 0, arrayErrorf(opAt, err)
	}

	return a.data[off], nil
}

// SetAt assigns v at the given full-rank indices, subject to the numeric
// policy. Validation precedes the write (all-or-nothing). Complexity: O(rank).
func (a *Array) SetAt(v float64, indices ...int) error {
	if err := validateNotNil(a); err != nil {
		return arrayErrorf(opSetAt, err)
	}
	if a.opts.validateNaNInf {
		if err := validateFinite(v); err != nil {
			return arrayErrorf(opSetAt, err)
		}
	}
	off, err := a.indexOffset(indices)
	if err != nil {
		return arrayErrorf(opSetAt, err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(n).
func (a *Array) Clone() *Array {
	out := a.derive(a.shape)
	copy(out.data, a.data)

	return out
}

// Equal reports whether b has the same shape and exactly equal elements.
// A nil argument is never equal. Complexity: O(n).
func (a *Array) Equal(b *Array) bool {
	if b == nil || len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) when all elements satisfy the relation; (false, nil)
// otherwise. Non-finite tolerances fail with ErrNaNInf; negative tolerances
// are normalized to their absolute values. Complexity: O(n).
func (a *Array) AllClose(b *Array, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, arrayErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := validateNotNil(a); err != nil {
		return false, arrayErrorf(opAllClose, err)
	}
	if err := validateNotNil(b); err != nil {
		return false, arrayErrorf(opAllClose, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return false, arrayErrorf(opAllClose, err)
	}

	// Single pass over the flat buffers; early-exit on the first violation.
	for i := range a.data {
		diff := a.data[i] - b.data[i]
		if diff < 0 {
			diff = -diff
		}
		absb := b.data[i]
		if absb < 0 {
			absb = -absb
		}
		if diff > atol+rtol*absb {
			return false, nil
		}
	}

	return true, nil
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, rank-3 layers separated by a blank line. Complexity: O(n).
func (a *Array) String() string {
	var b strings.Builder
	switch len(a.shape) {
	case 1:
		writeRow(&b, a.data)
	case 2:
		for i := 0; i < a.shape[0]; i++ {
			writeRow(&b, a.data[i*a.shape[1]:(i+1)*a.shape[1]])
		}
	default: // rank 3
		layer := a.shape[1] * a.shape[2]
		for l := 0; l < a.shape[0]; l++ {
			if l > 0 {
				b.WriteByte('\n') // blank line between layers
			}
			for i := 0; i < a.shape[1]; i++ {
				base := l*layer + i*a.shape[2]
				writeRow(&b, a.data[base:base+a.shape[2]])
			}
		}
	}

	return b.String()
}

// writeRow renders one bracketed, comma-separated row followed by a newline.
func writeRow(b *strings.Builder, row []float64) {
	b.WriteByte('[')
	for j, v := range row {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%g", v)
	}
	b.WriteString("]\n")
}
