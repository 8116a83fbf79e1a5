// Package ndarray_test contains unit tests for per-dimension selection
// (Get and Slice).
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/lvlarr/ndarray"
	"github.com/stretchr/testify/require"
)

// TestGetRowAndElement verifies single-index collapsing and trailing All.
func TestGetRowAndElement(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	// Index(1) collapses the row dimension; the trailing dimension defaults
	// to All, yielding the full second row as a rank-1 array.
	row, err := a.Get(ndarray.Index(1))
	require.NoError(t, err)
	require.Equal(t, []int{3}, row.Shape())
	require.Equal(t, []float64{4, 5, 6}, row.Flatten())

	// Full-rank pure-index selection yields a rank-1, length-1 array.
	cell, err := a.Get(ndarray.Index(0), ndarray.Index(2))
	require.NoError(t, err)
	require.Equal(t, []int{1}, cell.Shape())
	require.Equal(t, []float64{3}, cell.Flatten())
}

// TestSliceSpans verifies contiguous and stepped spans.
func TestSliceSpans(t *testing.T) {
	r, err := ndarray.Range(0, 10, 1) // [0..9]
	require.NoError(t, err)

	s, err := r.Slice(ndarray.Span(2, 6))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 4, 5}, s.Flatten()) // half-open range

	s, err = r.Slice(ndarray.SpanStep(1, 8, 3))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 7}, s.Flatten()) // every third element

	// An empty span is a legal zero-size result, not an error.
	s, err = r.Slice(ndarray.Span(4, 4))
	require.NoError(t, err)
	require.Equal(t, 0, s.Size())
}

// TestSliceMixedSelectors verifies mixing indices and spans across dimensions.
func TestSliceMixedSelectors(t *testing.T) {
	a := must2D(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	// Rows [0,2), columns fixed to 1 → rank-1 column fragment.
	s, err := a.Slice(ndarray.Span(0, 2), ndarray.Index(1))
	require.NoError(t, err)
	require.Equal(t, []int{2}, s.Shape())
	require.Equal(t, []float64{2, 6}, s.Flatten())

	// Sub-table: rows [1,3), columns [1,3).
	s, err = a.Slice(ndarray.Span(1, 3), ndarray.Span(1, 3))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, s.Shape())
	require.Equal(t, []float64{6, 7, 10, 11}, s.Flatten())
}

// TestSlice3D exercises selection on a rank-3 array.
func TestSlice3D(t *testing.T) {
	r, err := ndarray.Range(0, 24, 1)
	require.NoError(t, err)
	a, err := r.Reshape(2, 3, 4)
	require.NoError(t, err)

	// Fix the layer, keep rows, take two columns.
	s, err := a.Slice(ndarray.Index(1), ndarray.All(), ndarray.Span(0, 2))
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, s.Shape())
	require.Equal(t, []float64{12, 13, 16, 17, 20, 21}, s.Flatten())
}

// TestSliceValidation covers the failure taxonomy of selection.
func TestSliceValidation(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2}, {3, 4}})

	_, err := a.Slice(ndarray.Index(0), ndarray.Index(0), ndarray.Index(0)) // rank exceeded
	require.ErrorIs(t, err, ndarray.ErrRank)

	_, err = a.Get(ndarray.Index(2)) // index beyond the dimension
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = a.Slice(ndarray.Span(0, 3)) // span stop beyond the dimension
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = a.Slice(ndarray.Span(1, 0)) // inverted span
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	_, err = a.Slice(ndarray.SpanStep(0, 2, 0)) // non-positive step
	require.ErrorIs(t, err, ndarray.ErrOutOfDomain)
}

// TestSliceIsACopy ensures selection never aliases the source storage.
func TestSliceIsACopy(t *testing.T) {
	a := must2D(t, [][]float64{{1, 2}, {3, 4}})
	s, err := a.Slice(ndarray.Span(0, 1))
	require.NoError(t, err)

	require.NoError(t, s.SetAt(9, 0, 0)) // mutate the slice copy

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // source unaffected
}
