// SPDX-License-Identifier: MIT

// Package lm computes ordinary least-squares coefficients for a linear model
// through a QR factorization instead of the normal equations.
//
// What & Why:
//
//	Forming XᵀX squares the condition number of the design matrix. Solve instead
//	factors X = Q·R by modified Gram-Schmidt (matrix.GramSchmidt), projects the
//	response onto Q's columns (z = Qᵀy) and back-substitutes R·c = z.
//
// Surface:
//
//   - Solve(X, y, ...Option) ([]float64, error): the coefficient vector.
//   - Factorize(X, ...Option): a reusable Factorization, one response per Solve call.
//   - Fit(X, y, ...Option): a Model with fitted values, residuals and R².
//   - Vandermonde / PolyFit: polynomial design matrices on top of Fit.
//
// Errors:
//
//	ErrDimensionMismatch is returned before any computation when len(y) != X.Rows().
//	By default numerical degeneracy (zero or tiny pivots, p > n) is NOT an error and
//	surfaces as ±Inf/NaN coefficients. WithRankCheck or WithRankTolerance promote it to
//	ErrRankDeficient, carried by a *DegeneracyError.
//
// Every call is a pure function of its inputs: no caching, no shared state, no goroutines.
package lm
