// SPDX-License-Identifier: MIT
// Package ndarray: aggregates and statistics.
//
// Purpose:
//   - Whole-array reductions (Sum/Mean/Median/Std/Var/Min/Max/Percentile)
//     returning a scalar, with per-axis companions returning an array of
//     rank one lower (rank-1 input reduces to a rank-1, length-1 array).
//   - Correlation: Pearson coefficient over both operands flattened to 1D.
//
// Semantics:
//   - Std/Var are population statistics (divide by n).
//   - Percentile interpolates linearly between closest ranks, so
//     Percentile(0) == Min and Percentile(100) == Max exactly.
//   - Every reduction over zero elements fails with ErrEmptyArray; nothing
//     silently yields NaN.
//
// Determinism & Performance:
//   - Fixed row-major traversal; per-axis forms reuse the lane walker.
//   - Scalar forms are O(n); Median/Percentile sort a scratch copy,
//     O(n log n). One allocation per axis result plus one scratch buffer.

package ndarray

import (
	"math"
	"sort"
)

// Operation name constants for unified error wrapping.
const (
	opSum         = "Sum"
	opMean        = "Mean"
	opMedian      = "Median"
	opStd         = "Std"
	opVar         = "Var"
	opMin         = "Min"
	opMax         = "Max"
	opPercentile  = "Percentile"
	opCorrelation = "Correlation"
)

// ---------- scalar kernels over one lane (len ≥ 1, pre-validated) ----------

func laneSum(lane []float64) float64 {
	s := 0.0
	for _, v := range lane {
		s += v
	}

	return s
}

func laneMean(lane []float64) float64 {
	return laneSum(lane) / float64(len(lane))
}

// laneVar is the population variance: mean of squared deviations.
func laneVar(lane []float64) float64 {
	m := laneMean(lane)
	s := 0.0
	for _, v := range lane {
		d := v - m
		s += d * d
	}

	return s / float64(len(lane))
}

func laneStd(lane []float64) float64 {
	return math.Sqrt(laneVar(lane))
}

func laneMin(lane []float64) float64 {
	m := lane[0]
	for _, v := range lane[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

func laneMax(lane []float64) float64 {
	m := lane[0]
	for _, v := range lane[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// lanePercentile computes the q-th percentile (0 ≤ q ≤ 100, pre-validated)
// by linear interpolation between closest ranks. scratch must have the lane's
// length; the lane itself is not modified.
func lanePercentile(lane, scratch []float64, q float64) float64 {
	copy(scratch, lane)
	sort.Float64s(scratch)

	// Fractional rank in [0, n-1]; interpolate between its neighbors.
	rank := q / 100 * float64(len(scratch)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return scratch[lo]
	}
	frac := rank - float64(lo)

	return scratch[lo]*(1-frac) + scratch[hi]*frac
}

// laneMedian is the 50th percentile.
func laneMedian(lane, scratch []float64) float64 {
	return lanePercentile(lane, scratch, 50)
}

// ---------- whole-array reductions ----------

// reduce shares the scalar-form guard sequence and kernel dispatch.
func (a *Array) reduce(tag string, kernel func(lane []float64) float64) (float64, error) {
	if err := validateNotNil(a); err != nil {
		return 0, arrayErrorf(tag, err)
	}
	if err := validateNonEmpty(a); err != nil {
		return 0, arrayErrorf(tag, err)
	}

	return kernel(a.data), nil
}

// Sum returns the sum of all elements. Fails with ErrEmptyArray on a
// zero-size array. Complexity: O(n).
func (a *Array) Sum() (float64, error) { return a.reduce(opSum, laneSum) }

// Mean returns the arithmetic mean of all elements.
// Fails with ErrEmptyArray on a zero-size array. Complexity: O(n).
func (a *Array) Mean() (float64, error) { return a.reduce(opMean, laneMean) }

// Var returns the population variance of all elements.
// Fails with ErrEmptyArray on a zero-size array. Complexity: O(n).
func (a *Array) Var() (float64, error) { return a.reduce(opVar, laneVar) }

// Std returns the population standard deviation of all elements.
// Fails with ErrEmptyArray on a zero-size array. Complexity: O(n).
func (a *Array) Std() (float64, error) { return a.reduce(opStd, laneStd) }

// Min returns the smallest element. Fails with ErrEmptyArray on a
// zero-size array. Complexity: O(n).
func (a *Array) Min() (float64, error) { return a.reduce(opMin, laneMin) }

// Max returns the largest element. Fails with ErrEmptyArray on a
// zero-size array. Complexity: O(n).
func (a *Array) Max() (float64, error) { return a.reduce(opMax, laneMax) }

// Median returns the middle value (mean of the two middles for even
// counts). Fails with ErrEmptyArray on a zero-size array. Complexity: O(n log n).
func (a *Array) Median() (float64, error) {
	return a.reduce(opMedian, func(lane []float64) float64 {
		return laneMedian(lane, make([]float64, len(lane)))
	})
}

// Percentile returns the q-th percentile of all elements by linear
// interpolation between closest ranks. Fails with ErrOutOfDomain when q is
// outside [0, 100] or NaN, and with ErrEmptyArray on a zero-size array.
// Complexity: O(n log n).
func (a *Array) Percentile(q float64) (float64, error) {
	// Parameter domain outranks emptiness in the guard sequence.
	if q < 0 || q > 100 || math.IsNaN(q) {
		return 0, arrayErrorf(opPercentile, ErrOutOfDomain)
	}

	return a.reduce(opPercentile, func(lane []float64) float64 {
		return lanePercentile(lane, make([]float64, len(lane)), q)
	})
}

// ---------- per-axis reductions ----------

// reduceAxis collapses the given axis with kernel, producing an array of
// rank one lower (a rank-1 receiver produces a rank-1, length-1 result).
func (a *Array) reduceAxis(tag string, axis int, kernel func(lane []float64) float64) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	if err := validateNonEmpty(a); err != nil {
		return nil, arrayErrorf(tag, err)
	}

	// Output shape: receiver's shape without the collapsed axis.
	outShape := make([]int, 0, len(a.shape)-1)
	for d, s := range a.shape {
		if d != axis {
			outShape = append(outShape, s)
		}
	}
	if len(outShape) == 0 {
		outShape = append(outShape, 1)
	}
	out := a.derive(outShape)

	// Gather each lane and reduce it; lane visit order matches the output's
	// row-major order, so results are written sequentially.
	laneLen := a.shape[axis]
	step := a.strides[axis]
	lane := make([]float64, laneLen)
	pos := 0
	a.forEachLane(axis, func(base int) {
		for i := 0; i < laneLen; i++ {
			lane[i] = a.data[base+i*step]
		}
		out.data[pos] = kernel(lane)
		pos++
	})

	return out, nil
}

// SumAxis reduces with Sum along axis. Fails with ErrAxis for an invalid
// axis and ErrEmptyArray for a zero-size array. Complexity: O(n).
func (a *Array) SumAxis(axis int) (*Array, error) {
	return a.reduceAxis(opSum, axis, laneSum)
}

// MeanAxis reduces with Mean along axis.
func (a *Array) MeanAxis(axis int) (*Array, error) {
	return a.reduceAxis(opMean, axis, laneMean)
}

// VarAxis reduces with the population variance along axis.
func (a *Array) VarAxis(axis int) (*Array, error) {
	return a.reduceAxis(opVar, axis, laneVar)
}

// StdAxis reduces with the population standard deviation along axis.
func (a *Array) StdAxis(axis int) (*Array, error) {
	return a.reduceAxis(opStd, axis, laneStd)
}

// MinAxis reduces with Min along axis.
func (a *Array) MinAxis(axis int) (*Array, error) {
	return a.reduceAxis(opMin, axis, laneMin)
}

// MaxAxis reduces with Max along axis.
func (a *Array) MaxAxis(axis int) (*Array, error) {
	return a.reduceAxis(opMax, axis, laneMax)
}

// MedianAxis reduces with Median along axis. Complexity: O(n log L).
func (a *Array) MedianAxis(axis int) (*Array, error) {
	var scratch []float64
	return a.reduceAxis(opMedian, axis, func(lane []float64) float64 {
		if scratch == nil {
			scratch = make([]float64, len(lane))
		}

		return laneMedian(lane, scratch)
	})
}

// PercentileAxis reduces with the q-th percentile along axis. Same failure
// modes as Percentile plus ErrAxis. Complexity: O(n log L).
func (a *Array) PercentileAxis(q float64, axis int) (*Array, error) {
	if q < 0 || q > 100 || math.IsNaN(q) {
		return nil, arrayErrorf(opPercentile, ErrOutOfDomain)
	}

	var scratch []float64
	return a.reduceAxis(opPercentile, axis, func(lane []float64) float64 {
		if scratch == nil {
			scratch = make([]float64, len(lane))
		}

		return lanePercentile(lane, scratch, q)
	})
}

// ---------- correlation ----------

// Correlation returns the Pearson correlation coefficient between the
// receiver and b, both flattened to 1D in row-major order.
// Stage 1 (Validate): non-nil operands, equal element counts
// (ErrDimensionMismatch), at least one element (ErrEmptyArray).
// Stage 2 (Execute): two passes — means, then centered products.
// Stage 3 (Finalize): zero variance in either operand is mathematically
// undefined → ErrDegenerate. Complexity: O(n).
func (a *Array) Correlation(b *Array) (float64, error) {
	if err := validateNotNil(a); err != nil {
		return 0, arrayErrorf(opCorrelation, err)
	}
	if err := validateNotNil(b); err != nil {
		return 0, arrayErrorf(opCorrelation, err)
	}
	if len(a.data) != len(b.data) {
		return 0, arrayErrorf(opCorrelation, ErrDimensionMismatch)
	}
	if err := validateNonEmpty(a); err != nil {
		return 0, arrayErrorf(opCorrelation, err)
	}

	n := float64(len(a.data))
	meanA := laneSum(a.data) / n
	meanB := laneSum(b.data) / n

	// Accumulate centered cross products and squared deviations together.
	var cov, varA, varB float64
	for i := range a.data {
		da := a.data[i] - meanA
		db := b.data[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0, arrayErrorf(opCorrelation, ErrDegenerate)
	}

	return cov / math.Sqrt(varA*varB), nil
}
