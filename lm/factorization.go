// SPDX-License-Identifier: MIT

package lm

import (
	"errors"
	"math"

	"github.com/katalvlaran/olsqr/matrix"
)

// Operation tags.
const (
	opFactorize = "Factorize"
	opSolve     = "Solve"
	opFit       = "Fit"
	opPredict   = "Predict"
	opPolyFit   = "PolyFit"
)

// Factorization holds X = Q·R for one design matrix.
// It is immutable after Factorize; Q and R return copies.
type Factorization struct {
	q, r       matrix.Matrix
	rows, cols int
}

// Factorize orthogonalizes X by modified Gram-Schmidt and applies the rank policy.
// Implementation:
//   - Stage 1: Validate X (not nil).
//   - Stage 2: Under RankPolicyError, reject p > n before factoring.
//   - Stage 3: matrix.GramSchmidt on a private copy of X.
//   - Stage 4: Under RankPolicyError, matrix.ValidatePivots(R, tol).
//
// Errors:
//   - ErrNilMatrix.
//   - *DegeneracyError (ErrRankDeficient) under RankPolicyError only.
//
// Complexity:
//   - Time O(n·p²), Space O(n·p + p²).
func Factorize(x matrix.Matrix, opts ...Option) (*Factorization, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, lmErrorf(opFactorize, err)
	}

	f, err := factorize(x, gatherOptions(opts...))
	if err != nil {
		return nil, lmErrorf(opFactorize, err)
	}

	return f, nil
}

// factorize assumes x is not nil. Errors are returned untagged; callers add their own operation tag.
func factorize(x matrix.Matrix, o Options) (*Factorization, error) {
	n, p := x.Rows(), x.Cols()
	if o.policy == RankPolicyError && p > n {
		return nil, &DegeneracyError{
			Reason: ReasonTooFewRows,
			Rows:   n,
			Cols:   p,
			Column: -1,
		}
	}

	q, r, err := matrix.GramSchmidt(x)
	if err != nil {
		return nil, err
	}

	if o.policy == RankPolicyError {
		if err = matrix.ValidatePivots(r, o.tol); err != nil {
			var pe *matrix.PivotError
			if !errors.As(err, &pe) {
				return nil, err
			}
			reason := ReasonSmallPivot
			if math.IsNaN(pe.Value) || math.IsInf(pe.Value, 0) {
				reason = ReasonNonFinitePivot
			}

			return nil, &DegeneracyError{
				Reason:    reason,
				Rows:      n,
				Cols:      p,
				Column:    pe.Index,
				Pivot:     pe.Value,
				Threshold: pe.Threshold,
			}
		}
	}

	return &Factorization{q: q, r: r, rows: n, cols: p}, nil
}

// Rows returns n, the number of observations.
func (f *Factorization) Rows() int { return f.rows }

// Cols returns p, the number of predictors.
func (f *Factorization) Cols() int { return f.cols }

// Q returns a copy of the n×p orthonormal-column factor.
func (f *Factorization) Q() matrix.Matrix { return f.q.Clone() }

// R returns a copy of the p×p upper-triangular factor.
func (f *Factorization) R() matrix.Matrix { return f.r.Clone() }

// Solve returns the least-squares coefficients for response y:
// z = Qᵀy, then R·c = z by back substitution.
//
// Errors: ErrNilMatrix (nil y), ErrDimensionMismatch (len(y) != Rows()).
// Complexity: O(n·p + p²).
func (f *Factorization) Solve(y []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(y, f.rows); err != nil {
		return nil, lmErrorf(opSolve, err)
	}
	z, err := matrix.Project(f.q, y)
	if err != nil {
		return nil, lmErrorf(opSolve, err)
	}
	c, err := matrix.BackSubstitute(f.r, z)
	if err != nil {
		return nil, lmErrorf(opSolve, err)
	}

	return c, nil
}
