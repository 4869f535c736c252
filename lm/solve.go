// SPDX-License-Identifier: MIT

package lm

import "github.com/katalvlaran/olsqr/matrix"

// Solve computes the ordinary least-squares coefficients c minimizing ‖X·c − y‖₂.
// Implementation:
//   - Stage 1: Validate X (not nil) and len(y) == X.Rows(); nothing is allocated on failure.
//   - Stage 2: Factorize X (modified Gram-Schmidt + rank policy).
//   - Stage 3: Project y onto Q and back-substitute.
//
// Inputs:
//   - x: n×p design matrix; never mutated.
//   - y: response vector of length n; never mutated.
//   - opts: rank policy (default RankPolicyIgnore).
//
// Returns:
//   - []float64: coefficients of length p. Under the default policy a degenerate
//     X (collinear columns, p > n) yields ±Inf/NaN entries instead of an error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - *DegeneracyError (ErrRankDeficient) with WithRankCheck/WithRankTolerance.
//
// Determinism:
//   - Bit-identical output for identical inputs.
//
// Complexity:
//   - Time O(n·p²), Space O(n·p + p²).
func Solve(x matrix.Matrix, y []float64, opts ...Option) ([]float64, error) {
	if err := validateProblem(x, y); err != nil {
		return nil, lmErrorf(opSolve, err)
	}
	f, err := factorize(x, gatherOptions(opts...))
	if err != nil {
		return nil, lmErrorf(opSolve, err)
	}

	return f.Solve(y)
}

// validateProblem – Composite: NotNil(X) → VecLen(y, X.Rows()).
func validateProblem(x matrix.Matrix, y []float64) error {
	if err := matrix.ValidateNotNil(x); err != nil {
		return err
	}

	return matrix.ValidateVecLen(y, x.Rows())
}
