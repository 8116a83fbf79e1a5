// SPDX-License-Identifier: MIT
// Package ndarray: linear-algebra kernels (dot product and matrix product).
//
// Purpose:
//   - Dot: 1D·1D inner product with strict length validation.
//   - MatMul: 2D×2D matrix product, or 3D×3D batched product over a shared
//     leading dimension.
//
// Determinism & Performance:
//   - Classic i→k→j loop order over row-major buffers (cache-friendly
//     accumulation into the output row).
//   - Dot: O(n). MatMul: O(b·m·k·n) time, one allocation for the result.

package ndarray

// Operation name constants for unified error wrapping.
const (
	opDot    = "Dot"
	opMatMul = "MatMul"
)

// Dot returns the inner product of two rank-1 arrays.
// Stage 1 (Validate): both operands non-nil and rank 1 (ErrRank), equal
// length (ErrDimensionMismatch).
// Stage 2 (Execute): single multiply-accumulate pass.
// Two zero-length vectors legally yield 0. Complexity: O(n).
func (a *Array) Dot(b *Array) (float64, error) {
	if err := validateNotNil(a); err != nil {
		return 0, arrayErrorf(opDot, err)
	}
	if err := validateNotNil(b); err != nil {
		return 0, arrayErrorf(opDot, err)
	}
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return 0, arrayErrorf(opDot, ErrRank)
	}
	if a.shape[0] != b.shape[0] {
		return 0, arrayErrorf(opDot, ErrDimensionMismatch)
	}

	sum := 0.0
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}

// matMul2D multiplies the m×k block of x by the k×n block of y into the m×n
// block of out, all given as flat row-major slices.
func matMul2D(out, x, y []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		outRow := out[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			xv := x[i*k+p] // reuse x(i,p) across the whole output row
			yRow := y[p*n : (p+1)*n]
			for j := 0; j < n; j++ {
				outRow[j] += xv * yRow[j]
			}
		}
	}
}

// MatMul returns the matrix product of the receiver and b.
// Accepted operand ranks:
//   - 2D×2D: (m,k)·(k,n) → (m,n).
//   - 3D×3D: (b,m,k)·(b,k,n) → (b,m,n), multiplied per layer over a shared
//     leading dimension.
//
// Errors: ErrRank for any other rank pairing, ErrDimensionMismatch when the
// inner dimensions (or the batch dimension) disagree.
// Complexity: O(b·m·k·n).
func (a *Array) MatMul(b *Array) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opMatMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, arrayErrorf(opMatMul, err)
	}

	switch {
	case len(a.shape) == 2 && len(b.shape) == 2:
		m, k := a.shape[0], a.shape[1]
		if b.shape[0] != k {
			return nil, arrayErrorf(opMatMul, ErrDimensionMismatch)
		}
		n := b.shape[1]

		out := a.derive([]int{m, n})
		matMul2D(out.data, a.data, b.data, m, k, n)

		return out, nil

	case len(a.shape) == 3 && len(b.shape) == 3:
		if a.shape[0] != b.shape[0] {
			return nil, arrayErrorf(opMatMul, ErrDimensionMismatch)
		}
		batch, m, k := a.shape[0], a.shape[1], a.shape[2]
		if b.shape[1] != k {
			return nil, arrayErrorf(opMatMul, ErrDimensionMismatch)
		}
		n := b.shape[2]

		out := a.derive([]int{batch, m, n})
		for l := 0; l < batch; l++ {
			matMul2D(
				out.data[l*m*n:(l+1)*m*n],
				a.data[l*m*k:(l+1)*m*k],
				b.data[l*k*n:(l+1)*k*n],
				m, k, n,
			)
		}

		return out, nil

	default:
		return nil, arrayErrorf(opMatMul, ErrRank)
	}
}
