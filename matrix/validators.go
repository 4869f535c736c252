// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/pivot checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateUpperTriangular – Composite: NotNil → Square → |m[i,j]| ≤ tol for all i > j.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square or a sub-diagonal entry above tol).
// Complexity: O(n²).
func ValidateUpperTriangular(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateUpperTriangular", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateUpperTriangular", err)
	}

	n := m.Rows()
	var i, j int
	var v float64
	var err error
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateUpperTriangular", err)
			}
			if math.Abs(v) > tol || math.IsNaN(v) {
				return validatorErrorf(fmt.Sprintf("ValidateUpperTriangular: [%d,%d]=%g", i, j, v), ErrDimensionMismatch)
			}
		}
	}

	return nil
}

// ValidatePivots – Composite: NotNil → Square → every diagonal entry is a usable pivot.
//
// Implementation:
//   - Stage 1: scan the diagonal once for max|R[k,k]|; any NaN/Inf pivot fails immediately.
//   - Stage 2: scan again in k order; the first |R[k,k]| ≤ tol·max|R[i,i]| fails.
//
// Behavior highlights:
//   - tol is relative to the largest pivot, so rescaling the design matrix does not flip the verdict.
//   - An all-zero diagonal fails at k = 0 for any tol.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - *PivotError wrapping ErrRankDeficient.
//
// Complexity:
//   - Time O(n), Space O(1).
func ValidatePivots(r Matrix, tol float64) error {
	if err := ValidateNotNil(r); err != nil {
		return validatorErrorf("ValidatePivots", err)
	}
	if err := ValidateSquare(r); err != nil {
		return validatorErrorf("ValidatePivots", err)
	}

	n := r.Rows()
	var k int
	var v, maxAbs float64
	var err error
	for k = 0; k < n; k++ {
		v, err = r.At(k, k)
		if err != nil {
			return validatorErrorf("ValidatePivots", err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidatePivots", &PivotError{Index: k, Value: v, Threshold: math.Inf(1)})
		}
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}

	threshold := tol * maxAbs
	for k = 0; k < n; k++ {
		v, _ = r.At(k, k) // indices validated in the first pass
		if math.Abs(v) <= threshold {
			return validatorErrorf("ValidatePivots", &PivotError{Index: k, Value: v, Threshold: threshold})
		}
	}

	return nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries satisfies |a-b| ≤ eps·max(1, |b|). eps comes from WithEpsilon.
//
// Errors: ErrNilMatrix (either operand nil). A shape difference is (false, nil).
// Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		if errors.Is(err, ErrNilMatrix) {
			return false, validatorErrorf("AllClose", err)
		}
		return false, nil
	}

	eps := gatherOptions(opts...).eps
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, validatorErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, validatorErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > eps*math.Max(1, math.Abs(bv)) || math.IsNaN(av) != math.IsNaN(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
