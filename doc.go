// Package lvlarr is your in-memory toolkit for building, slicing,
// combining and analyzing dense n-dimensional numeric arrays — from
// construction primitives to broadcasting arithmetic and statistics.
//
// 🚀 What is lvlarr?
//
//	A modern, zero-dependency library that brings together:
//		• Construction: nested data, fills, ranges with reshape
//		• Indexing & slicing: per-dimension selectors (index, span, step)
//		• Combination: concatenation and even splitting along any axis
//		• Arithmetic: element-wise ops with NumPy-style broadcasting
//		• Linear algebra: dot product and (batched) matrix multiplication
//		• Search, sort, filter: index lookup, stable per-axis sorting
//		• Statistics: sum/mean/median/std/var/min/max/percentile/correlation
//
// ✨ Why choose lvlarr?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict fail-fast validation, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – copy-by-default, fixed row-major traversal everywhere
//
// Everything lives in a single subpackage:
//
//	ndarray/ — the Array value type, its constructors and every operation
//
// Quick ASCII example:
//
//	    1 2 3        [[1, 2, 3]
//	    4 5 6   ⇒     [4, 5, 6]]   shape (2,3), row-major
//
// Dive into the ndarray package documentation for the full operation
// catalogue, error taxonomy and usage examples.
//
//	go get github.com/katalvlaran/lvlarr/ndarray
package lvlarr
