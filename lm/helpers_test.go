// SPDX-License-Identifier: MIT
package lm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olsqr/matrix"
)

// mustDense builds a *matrix.Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// toGonum copies rows into a gonum matrix.
func toGonum(rows [][]float64) *mat.Dense {
	g := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		g.SetRow(i, row)
	}

	return g
}

// normalEquations solves (XᵀX)c = Xᵀy with gonum, independently of this module.
func normalEquations(t *testing.T, rows [][]float64, y []float64) []float64 {
	t.Helper()
	x := toGonum(rows)
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var xty mat.VecDense
	xty.MulVec(x.T(), mat.NewVecDense(len(y), y))

	var c mat.VecDense
	require.NoError(t, c.SolveVec(&xtx, &xty))

	return mat.Col(nil, 0, &c)
}

// gonumQR solves the same problem with gonum's Householder QR.
func gonumQR(t *testing.T, rows [][]float64, y []float64) []float64 {
	t.Helper()
	var qr mat.QR
	qr.Factorize(toGonum(rows))
	c := mat.NewVecDense(len(rows[0]), nil)
	require.NoError(t, qr.SolveVecTo(c, false, mat.NewVecDense(len(y), y)))

	return mat.Col(nil, 0, c)
}

// deterministicDesign returns an n×p design with an intercept column and
// smooth, independent predictors.
func deterministicDesign(n, p int) ([][]float64, []float64) {
	rows := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, p)
		rows[i][0] = 1
		for j := 1; j < p; j++ {
			rows[i][j] = math.Sin(float64(i*j)+0.3*float64(j)) + 0.05*float64(i)
		}
		y[i] = 0.5 + 2*rows[i][p-1] - math.Cos(float64(i))
	}

	return rows, y
}

func requireAllFinite(t *testing.T, vs []float64) {
	t.Helper()
	for i, v := range vs {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %d = %v", i, v)
	}
}
