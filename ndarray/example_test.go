// Package ndarray_test provides runnable examples for the Array surface.
package ndarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvlarr/ndarray"
)

// ExampleFromNested2D demonstrates construction and scalar arithmetic.
func ExampleFromNested2D() {
	a, _ := ndarray.FromNested2D([][]float64{{1, 2}, {3, 4}})
	b, _ := a.AddScalar(1)

	fmt.Print(b)
	// Output:
	// [2, 3]
	// [4, 5]
}

// ExampleRange demonstrates the range constructor paired with Reshape.
func ExampleRange() {
	r, _ := ndarray.Range(0, 6, 1)
	a, _ := r.Reshape(2, 3)

	fmt.Print(a)
	// Output:
	// [0, 1, 2]
	// [3, 4, 5]
}

// ExampleArray_Slice demonstrates mixed per-dimension selection.
func ExampleArray_Slice() {
	a, _ := ndarray.FromNested2D([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	s, _ := a.Slice(ndarray.Span(1, 3), ndarray.Index(2))

	fmt.Println(s.Flatten())
	// Output:
	// [7 11]
}

// ExampleArray_Concat demonstrates joining and even splitting.
func ExampleArray_Concat() {
	a, _ := ndarray.FromNested1D([]float64{1, 2})
	b, _ := ndarray.FromNested1D([]float64{3, 4})

	joined, _ := a.Concat(b, 0)
	parts, _ := joined.Split(2, 0)

	fmt.Println(joined.Flatten())
	fmt.Println(parts[0].Flatten(), parts[1].Flatten())
	// Output:
	// [1 2 3 4]
	// [1 2] [3 4]
}

// ExampleArray_MatMul demonstrates the 2D matrix product.
func ExampleArray_MatMul() {
	a, _ := ndarray.FromNested2D([][]float64{{1, 2}, {3, 4}})
	b, _ := ndarray.FromNested2D([][]float64{{0, 1}, {1, 0}})

	c, _ := a.MatMul(b)
	fmt.Print(c)
	// Output:
	// [2, 1]
	// [4, 3]
}

// ExampleArray_SortInPlace demonstrates in-place ascending ordering.
func ExampleArray_SortInPlace() {
	a, _ := ndarray.FromNested1D([]float64{3, 1, 2})
	_ = a.SortInPlace(0, ndarray.Ascending)

	fmt.Println(a.Flatten())
	// Output:
	// [1 2 3]
}

// ExampleArray_Correlation demonstrates the Pearson coefficient.
func ExampleArray_Correlation() {
	x, _ := ndarray.FromNested1D([]float64{1, 2, 3})
	y, _ := ndarray.FromNested1D([]float64{3, 2, 1})

	r, _ := x.Correlation(y)
	fmt.Println(r)
	// Output:
	// -1
}

// ExampleArray_Percentile demonstrates interpolated percentiles.
func ExampleArray_Percentile() {
	a, _ := ndarray.FromNested1D([]float64{4, 1, 3, 2})

	p, _ := a.Percentile(50)
	fmt.Println(p)
	// Output:
	// 2.5
}
