// SPDX-License-Identifier: MIT
// Package ndarray: public value types shared across the operation surface.
// This file defines the sort order enum, the division policy enum and the
// per-dimension Selector used by Get/Slice. Behavior lives in the dedicated
// operation files; this file holds type declarations and their constructors.

package ndarray

// Order controls the direction of Sort operations.
//
//   - Ascending  — smallest element first.
//   - Descending — largest element first.
type Order int

const (
	// Ascending sorts each lane from smallest to largest.
	Ascending Order = iota

	// Descending sorts each lane from largest to smallest.
	Descending
)

// DividePolicy controls how element-wise division treats zero divisors.
//
//   - DivideStrict — any zero divisor fails the whole call with
//     ErrDivisionByZero before a single output element is written.
//   - DivideIEEE   — zero divisors propagate per IEEE-754 (±Inf, NaN).
type DividePolicy int

const (
	// DivideStrict rejects zero divisors up front (fail-fast, all-or-nothing).
	DivideStrict DividePolicy = iota

	// DivideIEEE lets ±Inf/NaN flow through, mirroring float64 semantics.
	DivideIEEE
)

// selectorKind discriminates the three Selector forms.
type selectorKind int

const (
	selIndex selectorKind = iota // single index; collapses its dimension
	selSpan                      // half-open [start, stop) with step ≥ 1
	selAll                       // whole dimension, step 1
)

// Selector is a per-dimension selection used by Get and Slice.
//
// A Selector is one of:
//   - Index(i)                  — picks a single position and collapses the dimension.
//   - Span(start, stop)         — half-open contiguous range, keeps the dimension.
//   - SpanStep(start, stop, k)  — like Span but taking every k-th element (k ≥ 1).
//   - All()                     — the entire dimension, unchanged.
//
// Selectors are plain values; construct them with the functions below.
// Validation happens inside Get/Slice against the target array's shape.
type Selector struct {
	kind  selectorKind
	start int // Index position, or span start (inclusive)
	stop  int // span stop (exclusive); unused for Index/All
	step  int // span stride; 1 for Span/All, ≥ 1 for SpanStep
}

// Index selects the single position i along one dimension.
// The selected dimension is collapsed in the result.
func Index(i int) Selector {
	return Selector{kind: selIndex, start: i}
}

// Span selects the half-open range [start, stop) along one dimension.
// The dimension is kept with length stop-start.
func Span(start, stop int) Selector {
	return Selector{kind: selSpan, start: start, stop: stop, step: 1}
}

// SpanStep selects every step-th element of [start, stop) along one dimension.
// step must be ≥ 1; Get/Slice reject other values with ErrOutOfDomain.
func SpanStep(start, stop, step int) Selector {
	return Selector{kind: selSpan, start: start, stop: stop, step: step}
}

// All selects an entire dimension, keeping it unchanged.
// Trailing dimensions without an explicit Selector behave as All().
func All() Selector {
	return Selector{kind: selAll, step: 1}
}
