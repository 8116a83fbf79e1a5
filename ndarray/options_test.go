// Package ndarray_test contains unit tests for the functional options and
// their inheritance by derived arrays.
package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlarr/ndarray"
	"github.com/stretchr/testify/require"
)

// TestDefaultPolicyIsStrict ensures the zero-option construction uses the
// documented defaults (strict division, finite ingestion, exact Find).
func TestDefaultPolicyIsStrict(t *testing.T) {
	a := must1D(t, []float64{1, 2})

	_, err := a.DivScalar(0) // DefaultDividePolicy == DivideStrict
	require.ErrorIs(t, err, ndarray.ErrDivisionByZero)

	_, err = ndarray.FromNested1D([]float64{math.Inf(1)}) // DefaultValidateNaNInf == true
	require.ErrorIs(t, err, ndarray.ErrNaNInf)

	hits, err := a.Find(1.0000001) // DefaultEpsilon == 0: exact matching
	require.NoError(t, err)
	require.Empty(t, hits)
}

// TestOptionInheritance ensures derived arrays carry the receiver's options.
func TestOptionInheritance(t *testing.T) {
	a := must1D(t, []float64{1, 2}, ndarray.WithDivisionPolicy(ndarray.DivideIEEE))

	b, err := a.AddScalar(1) // derived array inherits the IEEE policy
	require.NoError(t, err)

	c, err := b.DivScalar(0) // would fail under the default strict policy
	require.NoError(t, err)
	require.True(t, math.IsInf(c.Flatten()[0], 1))
}

// TestWithEpsilonPanics ensures nonsensical epsilons panic at the call site.
func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { ndarray.WithEpsilon(-1) })
	require.Panics(t, func() { ndarray.WithEpsilon(math.NaN()) })
}

// TestWithDivisionPolicyPanics ensures unknown policies panic at the call site.
func TestWithDivisionPolicyPanics(t *testing.T) {
	require.Panics(t, func() { ndarray.WithDivisionPolicy(ndarray.DividePolicy(42)) })
}
