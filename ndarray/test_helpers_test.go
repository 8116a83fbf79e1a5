// Package ndarray_test: shared construction helpers for the test suite.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/lvlarr/ndarray"
	"github.com/stretchr/testify/require"
)

// must1D builds a rank-1 array or fails the test.
func must1D(t *testing.T, data []float64, opts ...ndarray.Option) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromNested1D(data, opts...)
	require.NoError(t, err) // construction must succeed for valid fixtures

	return a
}

// must2D builds a rank-2 array or fails the test.
func must2D(t *testing.T, rows [][]float64, opts ...ndarray.Option) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromNested2D(rows, opts...)
	require.NoError(t, err)

	return a
}

// must3D builds a rank-3 array or fails the test.
func must3D(t *testing.T, layers [][][]float64, opts ...ndarray.Option) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromNested3D(layers, opts...)
	require.NoError(t, err)

	return a
}

// mustEmpty1D builds a legal zero-size rank-1 array.
func mustEmpty1D(t *testing.T) *ndarray.Array {
	t.Helper()

	return must1D(t, nil)
}
