// SPDX-License-Identifier: MIT

package lm

import (
	"fmt"

	"github.com/katalvlaran/olsqr/matrix"
)

// Vandermonde builds the n×(degree+1) design matrix with rows [1, x, x², …, x^degree].
// Errors: ErrInvalidDimensions when xs is empty or degree < 0; ErrNaNInf on non-finite xs.
func Vandermonde(xs []float64, degree int) (*matrix.Dense, error) {
	if degree < 0 {
		return nil, fmt.Errorf("lm.Vandermonde: degree %d: %w", degree, matrix.ErrInvalidDimensions)
	}
	v, err := matrix.NewDense(len(xs), degree+1)
	if err != nil {
		return nil, fmt.Errorf("lm.Vandermonde: %w", err)
	}
	var j int
	var pw float64
	for i, x := range xs {
		for j, pw = 0, 1.0; j <= degree; j, pw = j+1, pw*x {
			if err = v.Set(i, j, pw); err != nil {
				return nil, fmt.Errorf("lm.Vandermonde: %w", err)
			}
		}
	}

	return v, nil
}

// PolyFit fits y ≈ c[0] + c[1]x + … + c[degree]x^degree by least squares.
// Errors: ErrDimensionMismatch when len(xs) != len(ys); otherwise as Vandermonde and Fit.
func PolyFit(xs, ys []float64, degree int, opts ...Option) (*Model, error) {
	if len(xs) != len(ys) {
		return nil, lmErrorf(opPolyFit, fmt.Errorf("%d x values, %d y values: %w", len(xs), len(ys), ErrDimensionMismatch))
	}
	v, err := Vandermonde(xs, degree)
	if err != nil {
		return nil, lmErrorf(opPolyFit, err)
	}

	return Fit(v, ys, opts...)
}
