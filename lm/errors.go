// SPDX-License-Identifier: MIT

package lm

import (
	"fmt"

	"github.com/katalvlaran/olsqr/matrix"
)

// The closed set of error kinds returned by this package.
var (
	// ErrDimensionMismatch: the response length differs from the design row count,
	// or a prediction matrix has the wrong column count.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix: a nil design matrix or response vector.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrRankDeficient: reported only under a rank check (see WithRankCheck).
	ErrRankDeficient = matrix.ErrRankDeficient
)

// DegeneracyReason classifies a DegeneracyError.
type DegeneracyReason int

const (
	// ReasonTooFewRows: more predictors than observations (p > n).
	ReasonTooFewRows DegeneracyReason = iota
	// ReasonSmallPivot: |R[k,k]| at or below the relative tolerance.
	ReasonSmallPivot
	// ReasonNonFinitePivot: R[k,k] is NaN or ±Inf.
	ReasonNonFinitePivot
)

// String implements fmt.Stringer.
func (r DegeneracyReason) String() string {
	switch r {
	case ReasonTooFewRows:
		return "too few rows"
	case ReasonSmallPivot:
		return "small pivot"
	case ReasonNonFinitePivot:
		return "non-finite pivot"
	default:
		return fmt.Sprintf("DegeneracyReason(%d)", int(r))
	}
}

// DegeneracyError describes why a factorization was rejected by the rank check.
// It unwraps to ErrRankDeficient.
type DegeneracyError struct {
	Reason     DegeneracyReason
	Rows, Cols int     // design shape n×p
	Column     int     // offending column k; -1 for ReasonTooFewRows
	Pivot      float64 // R[k,k]; 0 for ReasonTooFewRows
	Threshold  float64 // |R[k,k]| had to exceed this value
}

// Error implements error.
func (e *DegeneracyError) Error() string {
	if e.Reason == ReasonTooFewRows {
		return fmt.Sprintf("lm: %s: %d columns exceed %d rows: %v", e.Reason, e.Cols, e.Rows, ErrRankDeficient)
	}

	return fmt.Sprintf("lm: %s: column %d pivot %g (threshold %g): %v", e.Reason, e.Column, e.Pivot, e.Threshold, ErrRankDeficient)
}

// Unwrap exposes ErrRankDeficient to errors.Is.
func (e *DegeneracyError) Unwrap() error { return ErrRankDeficient }

// lmErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func lmErrorf(tag string, err error) error {
	return fmt.Errorf("lm.%s: %w", tag, err)
}
