// SPDX-License-Identifier: MIT
// Package ndarray: element-wise arithmetic with broadcasting.
//
// Purpose:
//   - Provide Add/Sub/Mul/Div between arrays of broadcast-compatible shapes,
//     plus scalar forms, through one shared binary kernel.
//   - Keep the zero-divisor policy explicit: DivideStrict pre-scans every
//     divisor that participates in the result and fails with
//     ErrDivisionByZero before a single output element is written;
//     DivideIEEE propagates ±Inf/NaN per float64 semantics.
//
// Determinism & Performance:
//   - Same-shape fast path runs a single flat pass over both buffers.
//   - The broadcast path walks the output row-major with an odometer and
//     maps each coordinate into both operands (size-1 dims pin to 0).
//   - O(result) time, one allocation for the output.
//
// Policy note:
//   - Results are computed, not ingested: the numeric policy's NaN/Inf
//     ingestion guard does not re-scan arithmetic outputs. Under DivideIEEE
//     a result may contain ±Inf/NaN by design of that policy.

package ndarray

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMulScalar = "MulScalar"
	opDivScalar = "DivScalar"
)

// binaryOp applies f element-wise over the broadcast of a and b.
// The output inherits the receiver's options and carries the broadcast shape.
func (a *Array) binaryOp(tag string, b *Array, f func(x, y float64) float64) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	outShape, err := broadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, arrayErrorf(tag, err)
	}

	out := a.derive(outShape)

	// Fast path: identical shapes need no coordinate mapping at all.
	if len(a.data) == len(out.data) && len(b.data) == len(out.data) &&
		validateSameShape(a, b) == nil {
		for i := range out.data {
			out.data[i] = f(a.data[i], b.data[i])
		}

		return out, nil
	}

	// Broadcast path: odometer over the output coordinates.
	coord := make([]int, len(outShape))
	for pos := 0; pos < len(out.data); pos++ {
		x := a.data[broadcastOffset(coord, a.shape, a.strides)]
		y := b.data[broadcastOffset(coord, b.shape, b.strides)]
		out.data[pos] = f(x, y)

		for d := len(coord) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < outShape[d] {
				break
			}
			coord[d] = 0
		}
	}

	return out, nil
}

// Add returns the element-wise sum of the receiver and b under broadcasting.
// Fails with ErrBroadcast for incompatible shapes. Complexity: O(result).
func (a *Array) Add(b *Array) (*Array, error) {
	return a.binaryOp(opAdd, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a-b under broadcasting.
func (a *Array) Sub(b *Array) (*Array, error) {
	return a.binaryOp(opSub, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the element-wise (Hadamard) product under broadcasting.
func (a *Array) Mul(b *Array) (*Array, error) {
	return a.binaryOp(opMul, b, func(x, y float64) float64 { return x * y })
}

// Div returns the element-wise quotient a/b under broadcasting.
// Under DivideStrict (the default) any zero element of b fails the whole
// call with ErrDivisionByZero before the output is written; under
// DivideIEEE zeros propagate ±Inf/NaN. Complexity: O(result).
func (a *Array) Div(b *Array) (*Array, error) {
	// Strict policy: every element of b that broadcasting can select is a
	// divisor, so a flat pre-scan of b is exact.
	if a != nil && b != nil && a.opts.divide == DivideStrict {
		for _, v := range b.data {
			if v == 0 {
				return nil, arrayErrorf(opDiv, ErrDivisionByZero)
			}
		}
	}

	return a.binaryOp(opDiv, b, func(x, y float64) float64 { return x / y })
}

// scalarOp applies f with a fixed scalar operand over a flat pass.
func (a *Array) scalarOp(tag string, f func(x float64) float64) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(tag, err)
	}

	out := a.derive(a.shape)
	for i := range a.data {
		out.data[i] = f(a.data[i])
	}

	return out, nil
}

// AddScalar returns a copy with s added to every element.
func (a *Array) AddScalar(s float64) (*Array, error) {
	return a.scalarOp(opAddScalar, func(x float64) float64 { return x + s })
}

// SubScalar returns a copy with s subtracted from every element.
func (a *Array) SubScalar(s float64) (*Array, error) {
	return a.scalarOp(opSubScalar, func(x float64) float64 { return x - s })
}

// MulScalar returns a copy with every element multiplied by s.
func (a *Array) MulScalar(s float64) (*Array, error) {
	return a.scalarOp(opMulScalar, func(x float64) float64 { return x * s })
}

// DivScalar returns a copy with every element divided by s.
// Under DivideStrict, s == 0 fails with ErrDivisionByZero up front.
func (a *Array) DivScalar(s float64) (*Array, error) {
	if a != nil && a.opts.divide == DivideStrict && s == 0 {
		return nil, arrayErrorf(opDivScalar, ErrDivisionByZero)
	}

	return a.scalarOp(opDivScalar, func(x float64) float64 { return x / s })
}
