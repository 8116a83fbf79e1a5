// Package ndarray_test contains unit tests for Concat and Split.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/lvlarr/ndarray"
	"github.com/stretchr/testify/require"
)

// TestConcatAxis0 verifies vertical stacking of rank-2 arrays.
func TestConcatAxis0(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2}, {3, 4}})
	b := must2D(t, [][]float64{{5, 6}})

	c, err := a.Concat(b, 0)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, c.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, c.Flatten())
}

// TestConcatAxis1 verifies horizontal stacking of rank-2 arrays.
func TestConcatAxis1(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2}, {3, 4}})
	b := must2D(t, [][]float64{{5}, {6}})

	c, err := a.Concat(b, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, c.Shape())
	require.Equal(t, []float64{1, 2, 5, 3, 4, 6}, c.Flatten())
}

// TestConcat1D verifies joining vectors.
func TestConcat1D(t *testing.T) {
	a := must1D(t, []float64{1, 2})
	b := must1D(t, []float64{3})

	c, err := a.Concat(b, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, c.Flatten())
}

// TestConcatValidation covers the failure taxonomy of Concat.
func TestConcatValidation(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2}, {3, 4}})

	_, err := a.Concat(nil, 0) // nil operand
	require.ErrorIs(t, err, ndarray.ErrNilArray)

	_, err = a.Concat(must1D(t, []float64{1, 2}), 0) // rank mismatch
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	_, err = a.Concat(a, 2) // axis beyond rank
	require.ErrorIs(t, err, ndarray.ErrAxis)

	_, err = a.Concat(must2D(t, [][]float64{{1, 2, 3}}), 0) // non-axis dims differ
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}

// TestSplitEven verifies even division along both axes of a rank-2 array.
func TestSplitEven(t *testing.T) {
	a := must2D(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	})

	parts, err := a.Split(2, 1)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	require.Equal(t, []float64{1, 2, 5, 6}, parts[0].Flatten()) // left half
	require.Equal(t, []float64{3, 4, 7, 8}, parts[1].Flatten()) // right half

	parts, err = a.Split(2, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, parts[0].Flatten()) // top row
	require.Equal(t, []float64{5, 6, 7, 8}, parts[1].Flatten()) // bottom row
}

// TestSplitValidation covers the failure taxonomy of Split.
func TestSplitValidation(t *testing.T) {
	a := must1D(t, []float64{1, 2, 3})

	_, err := a.Split(0, 0) // non-positive part count
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	_, err = a.Split(2, 1) // axis beyond rank
	require.ErrorIs(t, err, ndarray.ErrAxis)

	_, err = a.Split(2, 0) // 3 does not divide by 2
	require.ErrorIs(t, err, ndarray.ErrUnevenSplit)
}

// TestConcatSplitRoundTrip verifies that Split undoes Concat with matching
// parameters, element for element.
func TestConcatSplitRoundTrip(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2}, {3, 4}})
	b := must2D(t, [][]float64{{5, 6}, {7, 8}})

	for axis := 0; axis < 2; axis++ {
		joined, err := a.Concat(b, axis)
		require.NoError(t, err)

		parts, err := joined.Split(2, axis)
		require.NoError(t, err)
		require.Len(t, parts, 2)
		require.True(t, parts[0].Equal(a)) // first piece reconstructs a
		require.True(t, parts[1].Equal(b)) // second piece reconstructs b
	}
}
