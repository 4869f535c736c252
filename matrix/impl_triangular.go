// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Project computes z = Qᵀy, the coordinates of y in the basis spanned by Q's columns.
// z[k] = Σ_i Q[i,k]·y[i] for k = 0..p-1.
//
// Errors: ErrNilMatrix (nil Q or y), ErrDimensionMismatch (len(y) != Q.Rows()).
// Complexity: Time O(n·p), Space O(p).
func Project(q Matrix, y []float64) ([]float64, error) {
	return transposeMatVec(opProject, q, y)
}

// BackSubstitute solves the upper-triangular system R·c = z.
// Implementation:
//   - Stage 1: Validate R (not nil, square) and len(z) == R.Rows().
//   - Stage 2: For k = p-1 down to 0: c[k] = (z[k] − Σ_{j>k} R[k,j]·c[j]) / R[k,k].
//
// Behavior highlights:
//   - Strictly decreasing k: c[k] reads only c[j] for j > k, already final.
//   - Entries below the diagonal are never read.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed k↓, j↑ order; the subtraction sequence matches a textbook solve.
//
// Complexity:
//   - Time O(p²), Space O(p).
//
// Notes:
//   - A zero or tiny R[k,k] is divided through as is (±Inf/NaN result);
//     callers that need a guard run ValidatePivots first.
func BackSubstitute(r Matrix, z []float64) ([]float64, error) {
	if err := ValidateNotNil(r); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}
	if err := ValidateSquare(r); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}
	if err := ValidateVecLen(z, r.Rows()); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}

	p := r.Rows()
	c := make([]float64, p)
	var j, k int
	var acc float64

	if d, ok := r.(*Dense); ok {
		var base int
		for k = p - 1; k >= 0; k-- {
			base = k * p
			acc = z[k]
			for j = k + 1; j < p; j++ {
				acc -= d.data[base+j] * c[j]
			}
			c[k] = acc / d.data[base+k]
		}

		return c, nil
	}

	var rkj, rkk float64
	var err error
	for k = p - 1; k >= 0; k-- {
		acc = z[k]
		for j = k + 1; j < p; j++ {
			rkj, err = r.At(k, j)
			if err != nil {
				return nil, matrixErrorf(opBackSubstitute, fmt.Errorf("At(%d,%d): %w", k, j, err))
			}
			acc -= rkj * c[j]
		}
		rkk, err = r.At(k, k)
		if err != nil {
			return nil, matrixErrorf(opBackSubstitute, fmt.Errorf("At(%d,%d): %w", k, k, err))
		}
		c[k] = acc / rkk
	}

	return c, nil
}
