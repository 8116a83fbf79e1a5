// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for the array numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; constructors accept `...Option`
//     and derived arrays inherit the receiver's resolved options.
//
// Notes:
//   - The numeric policy is per-array, fixed at construction:
//   - validateNaNInf controls whether ingestion and SetAt reject NaN/±Inf.
//   - eps widens value matching in Find and structural comparison in AllClose.
//   - divide selects the zero-divisor behavior of Div/DivScalar (see §Div docs).
//   - Results of arithmetic are computed, not ingested: under DivideIEEE an
//     output may legally contain ±Inf/NaN even when validateNaNInf is true.

package ndarray

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by Find value
	// matching. Zero means exact equality.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and SetAt.
	DefaultValidateNaNInf = true

	// DefaultDividePolicy is the zero-divisor behavior of element-wise
	// division: strict fail-fast.
	DefaultDividePolicy = DivideStrict
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid      = "ndarray: WithEpsilon: eps must be finite, non-negative"
	panicDividePolicyInvalid = "ndarray: WithDivisionPolicy: unknown policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type options struct {
	eps            float64      // ≥ 0; DefaultEpsilon
	validateNaNInf bool         // DefaultValidateNaNInf
	divide         DividePolicy // DefaultDividePolicy
}

// WithEpsilon sets the non-negative tolerance used by Find value matching.
// Panics if eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	// Validate eagerly so misuse surfaces at the call site, not deep inside Find.
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf at ingestion and SetAt.
// Disabling it admits non-finite data; reductions then follow float64 rules.
func WithValidateNaNInf(validate bool) Option {
	return func(o *options) { o.validateNaNInf = validate }
}

// WithDivisionPolicy selects the zero-divisor behavior of Div/DivScalar.
// Panics on an unknown policy value (programmer error).
func WithDivisionPolicy(p DividePolicy) Option {
	if p != DivideStrict && p != DivideIEEE {
		panic(panicDividePolicyInvalid)
	}

	return func(o *options) { o.divide = p }
}

// gatherOptions resolves defaults then applies each Option in order.
// Deterministic: the same Option list always yields the same options value.
func gatherOptions(opts ...Option) options {
	// Start from the documented defaults.
	o := options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		divide:         DefaultDividePolicy,
	}
	// Apply user setters in declaration order.
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
