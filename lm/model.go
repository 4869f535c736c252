// SPDX-License-Identifier: MIT

package lm

import (
	"math"

	"github.com/katalvlaran/olsqr/matrix"
)

// Model is a fitted linear model y ≈ X·c.
type Model struct {
	Coefficients []float64 // c, length p
	Fitted       []float64 // X·c, length n
	Residuals    []float64 // y − X·c, length n
	RSS          float64   // Σ residual²
	TSS          float64   // Σ (y − ȳ)²
	RSquared     float64   // 1 − RSS/TSS; NaN when TSS == 0
	Rows, Cols   int       // n, p
	DF           int       // residual degrees of freedom n − p (may be ≤ 0)
}

// Fit solves the least-squares problem and derives fitted values and
// goodness-of-fit statistics from the same coefficient vector.
//
// Errors: as Solve.
// Complexity: O(n·p²).
func Fit(x matrix.Matrix, y []float64, opts ...Option) (*Model, error) {
	if err := validateProblem(x, y); err != nil {
		return nil, lmErrorf(opFit, err)
	}
	coef, err := Solve(x, y, opts...)
	if err != nil {
		return nil, err
	}
	fitted, err := matrix.MatVec(x, coef)
	if err != nil {
		return nil, lmErrorf(opFit, err)
	}

	n, p := x.Rows(), x.Cols()
	mdl := &Model{
		Coefficients: coef,
		Fitted:       fitted,
		Residuals:    make([]float64, n),
		Rows:         n,
		Cols:         p,
		DF:           n - p,
	}

	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)

	var d, e float64
	for i := 0; i < n; i++ {
		e = y[i] - fitted[i]
		mdl.Residuals[i] = e
		mdl.RSS += e * e
		d = y[i] - mean
		mdl.TSS += d * d
	}
	if mdl.TSS == 0 {
		mdl.RSquared = math.NaN()
	} else {
		mdl.RSquared = 1 - mdl.RSS/mdl.TSS
	}

	return mdl, nil
}

// Predict evaluates X·c for a new design matrix with the same column count.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Model) Predict(x matrix.Matrix) ([]float64, error) {
	out, err := matrix.MatVec(x, m.Coefficients)
	if err != nil {
		return nil, lmErrorf(opPredict, err)
	}

	return out, nil
}
