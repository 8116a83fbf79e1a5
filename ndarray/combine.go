// SPDX-License-Identifier: MIT
// Package ndarray: combination and splitting along an axis.
//
// Purpose:
//   - Concat joins two arrays of equal rank along one axis; every non-axis
//     dimension must match exactly.
//   - Split divides an array into even parts along one axis; Concat followed
//     by Split with matching parameters reconstructs the operands.
//
// Determinism & Performance:
//   - Both operations copy in row-major block order: O(n) time, one
//     allocation per result array, no aliasing of the inputs.

package ndarray

// Operation name constants for unified error wrapping.
const (
	opConcat = "Concat"
	opSplit  = "Split"
)

// Concat returns a new array with the receiver and other joined along axis.
// Stage 1 (Validate): non-nil operands, equal rank, axis within rank, all
// non-axis dimensions equal.
// Stage 2 (Execute): interleave row-major blocks from both operands.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrAxis. Complexity: O(n+m).
func (a *Array) Concat(other *Array, axis int) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opConcat, err)
	}
	if err := validateNotNil(other); err != nil {
		return nil, arrayErrorf(opConcat, err)
	}
	if len(a.shape) != len(other.shape) {
		return nil, arrayErrorf(opConcat, ErrDimensionMismatch)
	}
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opConcat, err)
	}
	for d := range a.shape {
		if d != axis && a.shape[d] != other.shape[d] {
			return nil, arrayErrorf(opConcat, ErrDimensionMismatch)
		}
	}

	// Output shape: receiver's shape with the axis dimension summed.
	outShape := cloneInts(a.shape)
	outShape[axis] += other.shape[axis]
	out := a.derive(outShape)

	// Row-major layout decomposes as outer × axis × inner blocks:
	// outer = product of dims before axis, inner = product of dims after.
	inner := a.strides[axis]
	outer := 1
	for d := 0; d < axis; d++ {
		outer *= a.shape[d]
	}
	blockA := a.shape[axis] * inner     // contiguous chunk from the receiver
	blockB := other.shape[axis] * inner // contiguous chunk from other

	pos := 0
	for o := 0; o < outer; o++ {
		copy(out.data[pos:pos+blockA], a.data[o*blockA:(o+1)*blockA])
		pos += blockA
		copy(out.data[pos:pos+blockB], other.data[o*blockB:(o+1)*blockB])
		pos += blockB
	}

	return out, nil
}

// Split divides the array into parts equal pieces along axis, returned in
// order. Stage 1 (Validate): non-nil receiver, parts ≥ 1 (ErrBadShape),
// axis within rank (ErrAxis), axis dimension evenly divisible
// (ErrUnevenSplit). Stage 2 (Execute): each piece is an independent copy
// carved out via span selection. Complexity: O(n) total.
func (a *Array) Split(parts, axis int) ([]*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opSplit, err)
	}
	if parts < 1 {
		return nil, arrayErrorf(opSplit, ErrBadShape)
	}
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opSplit, err)
	}
	if a.shape[axis]%parts != 0 {
		return nil, arrayErrorf(opSplit, ErrUnevenSplit)
	}

	// Reuse the selection machinery: every piece is a span along the axis.
	size := a.shape[axis] / parts
	selectors := make([]Selector, len(a.shape))
	for d := range selectors {
		selectors[d] = All()
	}

	out := make([]*Array, parts)
	for p := 0; p < parts; p++ {
		selectors[axis] = Span(p*size, (p+1)*size)
		piece, err := a.selectCopy(opSplit, selectors)
		if err != nil {
			return nil, err // unreachable after validation, kept for safety
		}
		out[p] = piece
	}

	return out, nil
}
