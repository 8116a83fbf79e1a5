// Package ndarray provides a validated facade over dense n-dimensional
// (rank 1–3) arrays of float64: construction, indexing and slicing,
// concatenation and splitting, element-wise arithmetic with broadcasting,
// dot/matrix products, search/sort/filter, and axis-aware statistics.
//
// 🚀 What is ndarray?
//
//	One value type — Array — and a method surface where every operation
//	validates its inputs up front and signals failure through a small set
//	of sentinel errors (errors.Is-matchable):
//	  • Construction: FromNested1D/2D/3D, FromFlat, Filled, Zeros, Ones,
//	    Range (+ Reshape)
//	  • Access: At, SetAt, Get, Slice with Index/Span/SpanStep/All selectors
//	  • Combination: Concat, Split
//	  • Arithmetic: Add/Sub/Mul/Div (+Scalar forms), NumPy-style broadcasting
//	  • Linear algebra: Dot (1D), MatMul (2D and batched 3D)
//	  • Search/sort/filter: Find, FindFunc, Filter, SortedCopy, SortInPlace
//	  • Statistics: Sum, Mean, Median, Std, Var, Min, Max, Percentile
//	    (whole-array and per-axis forms) and Pearson Correlation
//
// ✨ Design guarantees:
//
//   - Copy-by-default – every operation returns a fresh array; the only
//     in-place mutations are SetAt and SortInPlace, and both validate fully
//     before writing (all-or-nothing per call).
//   - Fail-fast – invalid shapes, ranks, axes, indices and parameter
//     domains are rejected with sentinel errors before any work happens.
//   - Deterministic – fixed row-major traversal, stable sorting, no global
//     state, no logging.
//
// Concurrency: no internal locking. Concurrent reads of one Array are safe
// only while no mutation is in flight; callers serialize mutations.
//
// Numeric policy is configured per array through functional options:
// WithValidateNaNInf (finite-ingestion guard, on by default),
// WithDivisionPolicy (strict vs IEEE zero-divisor handling) and
// WithEpsilon (Find value-matching tolerance). Derived arrays inherit the
// options of the array they were derived from.
//
// Quick example:
//
//	a, _ := ndarray.FromNested2D([][]float64{{1, 2}, {3, 4}})
//	b, _ := a.AddScalar(1)    // [[2, 3], [4, 5]]
//	s, _ := b.Sum()           // 14
//	_, err := b.DivScalar(0)  // ErrDivisionByZero under DivideStrict
//
// See example_test.go for runnable examples.
package ndarray
