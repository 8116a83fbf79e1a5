// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ndarray
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option setters.

package ndarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with arrayErrorf("Op", ErrX) at the
// public boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> parameter domain -> rank/axis -> shape -> index ->
// emptiness -> numeric degeneracy.

var (
	// ErrBadShape is returned when a requested shape is invalid (non-positive
	// dimension, unsupported rank, reshape element-count mismatch, zero step).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrRagged indicates nested input whose inner sequences disagree in length.
	ErrRagged = errors.New("ndarray: ragged nested data")

	// ErrBroadcast indicates shapes that cannot be aligned under right-aligned
	// broadcasting rules for an element-wise operation.
	ErrBroadcast = errors.New("ndarray: shapes are not broadcast-compatible")

	// ErrUnevenSplit indicates that a dimension does not divide evenly into the
	// requested number of parts.
	ErrUnevenSplit = errors.New("ndarray: axis does not split evenly")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Concat with differing non-axis dimensions, or MatMul inner mismatch.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrRank signals that an operation received more selectors/indices than
	// the array's rank, or an operand of unsupported rank.
	ErrRank = errors.New("ndarray: invalid rank")

	// ErrAxis signals that a requested axis is outside [0, rank).
	ErrAxis = errors.New("ndarray: axis out of range")

	// ErrOutOfRange indicates that an index or span bound is outside the valid
	// bounds of its dimension. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrOutOfDomain indicates a numeric parameter outside its valid domain,
	// e.g. a percentile rank outside [0, 100] or a non-positive span step.
	ErrOutOfDomain = errors.New("ndarray: parameter out of domain")

	// ErrEmptyArray is returned when a reduction is requested over zero elements.
	ErrEmptyArray = errors.New("ndarray: empty array")

	// ErrDivisionByZero is returned by strict-policy division when any divisor
	// element is zero. No output is produced in that case.
	ErrDivisionByZero = errors.New("ndarray: division by zero")

	// ErrDegenerate signals a statistic that is mathematically undefined for
	// the given input, e.g. correlation of a zero-variance operand.
	ErrDegenerate = errors.New("ndarray: degenerate input")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, SetAt, numeric parameters).
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("ndarray: nil array")
)
