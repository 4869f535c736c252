// SPDX-License-Identifier: MIT

package matrix

import "math"

// GramSchmidt computes the thin QR factorization X = Q·R by modified Gram-Schmidt.
// Implementation:
//   - Stage 1: Validate X (not nil); copy it into a private working Dense that becomes Q.
//   - Stage 2: For k = 0..p-1:
//     R[k,k] = ‖q_k‖₂ of the current, already deflated column;
//     q_k /= R[k,k];
//     for every j > k: R[k,j] = ⟨q_k, q_j⟩ and q_j -= R[k,j]·q_k immediately.
//
// Behavior highlights:
//   - Later columns are deflated as soon as q_k is final, so each later norm
//     already reflects every earlier projection (modified, not classical, MGS).
//   - X is never mutated; Q and R are fresh allocations.
//
// Inputs:
//   - m: design matrix X with n ≥ 1 rows and p ≥ 1 columns. p > n is accepted.
//
// Returns:
//   - Matrix: Q (n×p, orthonormal columns for full-column-rank X).
//   - Matrix: R (p×p, upper triangular, non-negative diagonal).
//
// Errors:
//   - ErrNilMatrix; At errors from a non-Dense input during the copy.
//
// Determinism:
//   - Fixed k→j→i visitation; sums accumulate rows in ascending order.
//
// Complexity:
//   - Time O(n·p²), Space O(n·p + p²).
//
// Notes:
//   - Pivots are not checked: a zero column norm divides through and leaves
//     NaN/Inf in Q and R. Use ValidatePivots on R when that matters.
func GramSchmidt(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opGramSchmidt, err)
	}

	Qraw, err := denseCopyOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opGramSchmidt, err)
	}
	n, p := Qraw.r, Qraw.c
	Rraw, err := NewDense(p, p)
	if err != nil {
		return nil, nil, matrixErrorf(opGramSchmidt, err)
	}

	q, r := Qraw.data, Rraw.data
	var (
		i, j, k   int
		norm, rkk float64
		dot, qik  float64
	)
	for k = 0; k < p; k++ {
		// column norm of the deflated working column
		norm = NormZero
		for i = 0; i < n; i++ {
			qik = q[i*p+k]
			norm += qik * qik
		}
		rkk = math.Sqrt(norm)
		r[k*p+k] = rkk

		// normalize in place: column k is now q_k
		for i = 0; i < n; i++ {
			q[i*p+k] /= rkk
		}

		// deflate every later column against q_k right away
		for j = k + 1; j < p; j++ {
			dot = ZeroSum
			for i = 0; i < n; i++ {
				dot += q[i*p+k] * q[i*p+j]
			}
			r[k*p+j] = dot
			for i = 0; i < n; i++ {
				q[i*p+j] -= dot * q[i*p+k]
			}
		}
	}

	return Qraw, Rraw, nil
}
