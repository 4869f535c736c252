// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/olsqr/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: value count")
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// tallPattern returns a deterministic, full-column-rank n×p matrix.
func tallPattern(t testing.TB, n, p int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, p)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			// distinct powers of shifted abscissae keep the columns independent
			MustSet(t, m, i, j, math.Pow(float64(i+1)/float64(n), float64(j))+0.1*float64((i*j)%3))
		}
	}

	return m
}

// propOrthonormal asserts QᵀQ ≈ I_p within delta for an n×p Q.
func propOrthonormal(t *testing.T, q matrix.Matrix, delta float64) {
	t.Helper()

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)

	p := q.Cols()
	var i, j int
	var want float64
	for i = 0; i < p; i++ {
		for j = 0; j < p; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, MustAt(t, qtq, i, j), delta, "QᵀQ[%d,%d]", i, j)
		}
	}
}

// propUpperTriangular asserts every entry below the diagonal is exactly zero.
func propUpperTriangular(t *testing.T, r matrix.Matrix) {
	t.Helper()
	require.Equal(t, r.Rows(), r.Cols(), "R must be square")
	var i, j int
	for i = 1; i < r.Rows(); i++ {
		for j = 0; j < i; j++ {
			require.Zero(t, MustAt(t, r, i, j), "R[%d,%d] below diagonal", i, j)
		}
	}
}

// propReconstructionQR asserts A ≈ Q·R within a relative tolerance.
func propReconstructionQR(t *testing.T, a, q, r matrix.Matrix, rtol float64) {
	t.Helper()
	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	require.Equal(t, a.Rows(), qr.Rows())
	require.Equal(t, a.Cols(), qr.Cols())

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, qr, i, j)
			require.InDelta(t, av, bv, rtol*math.Max(1, math.Abs(av)), "A vs Q·R at [%d,%d]", i, j)
		}
	}
}

// requireSameMatrix asserts bit-identical contents.
func requireSameMatrix(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			require.Equal(t, math.Float64bits(MustAt(t, want, i, j)), math.Float64bits(MustAt(t, got, i, j)), "[%d,%d]", i, j)
		}
	}
}
