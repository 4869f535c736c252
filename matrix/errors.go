// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels as "Op: cause";
// callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a vector whose length does not match.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRankDeficient signals a triangular factor whose diagonal carries a zero,
	// tiny or non-finite pivot, or a factorization with more columns than rows.
	ErrRankDeficient = errors.New("matrix: rank deficient")
)

// PivotError reports the first diagonal entry of a triangular factor that
// failed ValidatePivots. It unwraps to ErrRankDeficient.
type PivotError struct {
	Index     int     // diagonal position k of R[k][k]
	Value     float64 // the offending pivot
	Threshold float64 // |pivot| had to exceed this value
}

// Error implements error.
func (e *PivotError) Error() string {
	return fmt.Sprintf("pivot R[%d,%d]=%g not above %g: %v", e.Index, e.Index, e.Value, e.Threshold, ErrRankDeficient)
}

// Unwrap exposes ErrRankDeficient to errors.Is.
func (e *PivotError) Unwrap() error { return ErrRankDeficient }
