// SPDX-License-Identifier: MIT
// Package ndarray: centralized validation helpers.
//
// Purpose:
//   - Provide a single, canonical source of truth for common guard checks.
//   - Keep operation files minimal by delegating nil/rank/axis/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly via arrayErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Finite-value scans run a single O(n) pass over the flat buffer.
//
// Note:
//   - Each composite operation follows a fixed guard sequence
//     (nil → parameter domain → rank/axis → shape → index → emptiness),
//     matching the documented error priority in errors.go.

package ndarray

import (
	"fmt"
	"math"
)

// arrayErrorf wraps err with an operation tag, preserving the original error
// via %w for errors.Is/errors.As matching. Use only when err != nil.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray otherwise. Complexity: O(1).
func validateNotNil(a *Array) error {
	if a == nil {
		return ErrNilArray
	}

	return nil
}

// validateShape ensures the requested shape has a supported rank and strictly
// positive dimensions. Returns ErrBadShape otherwise. Complexity: O(rank).
func validateShape(shape []int) error {
	if len(shape) < MinRank || len(shape) > MaxRank {
		return ErrBadShape
	}
	for _, d := range shape {
		if d <= 0 {
			return ErrBadShape
		}
	}

	return nil
}

// validateAxis ensures 0 ≤ axis < rank. Returns ErrAxis otherwise.
// Assumes a non-nil receiver. Complexity: O(1).
func validateAxis(a *Array, axis int) error {
	if axis < 0 || axis >= len(a.shape) {
		return ErrAxis
	}

	return nil
}

// validateSameShape ensures a and b have identical shapes.
// Returns ErrDimensionMismatch otherwise. Assumes non-nil operands.
// Complexity: O(rank).
func validateSameShape(a, b *Array) error {
	if len(a.shape) != len(b.shape) {
		return ErrDimensionMismatch
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// validateFinite rejects NaN and ±Inf. Returns ErrNaNInf otherwise nil.
// Complexity: O(1).
func validateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}

// validateFiniteSlice scans data for NaN/±Inf in one deterministic pass.
// Returns ErrNaNInf on the first violation. Complexity: O(n).
func validateFiniteSlice(data []float64) error {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// validateNonEmpty ensures the array holds at least one element.
// Returns ErrEmptyArray otherwise. Assumes a non-nil receiver. Complexity: O(1).
func validateNonEmpty(a *Array) error {
	if len(a.data) == 0 {
		return ErrEmptyArray
	}

	return nil
}
