// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/olsqr/matrix"
)

func TestProject(t *testing.T) {
	t.Parallel()

	q := NewFilledDense(t, 3, 2, []float64{1, 0, 0, 1, 0, 0})
	z, err := matrix.Project(q, []float64{4, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 7}, z)

	_, err = matrix.Project(q, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Project(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// R = [[2, 1, -1], [0, 3, 2], [0, 0, 4]], c = [1, -2, 0.5] ⇒ z = R·c.
func TestBackSubstitute_Known(t *testing.T) {
	t.Parallel()

	r := NewFilledDense(t, 3, 3, []float64{2, 1, -1, 0, 3, 2, 0, 0, 4})
	want := []float64{1, -2, 0.5}
	z, err := matrix.MatVec(r, want)
	require.NoError(t, err)

	for _, m := range []matrix.Matrix{r, hide{r}} {
		c, err := matrix.BackSubstitute(m, z)
		require.NoError(t, err)
		require.Len(t, c, 3)
		for k := range want {
			assert.InDelta(t, want[k], c[k], 1e-15, "c[%d]", k)
		}
	}
}

// Entries below the diagonal are never read.
func TestBackSubstitute_IgnoresLowerTriangle(t *testing.T) {
	r := NewFilledDense(t, 2, 2, []float64{2, 1, 99, 4})
	c, err := matrix.BackSubstitute(r, []float64{4, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, c)
}

func TestBackSubstitute_ZeroPivotDividesThrough(t *testing.T) {
	r := NewFilledDense(t, 2, 2, []float64{1, 1, 0, 0})

	c, err := matrix.BackSubstitute(r, []float64{1, 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(c[1], 1))

	c, err = matrix.BackSubstitute(r, []float64{1, 0})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(c[1]))
	assert.True(t, math.IsNaN(c[0]))
}

func TestBackSubstitute_Errors(t *testing.T) {
	_, err := matrix.BackSubstitute(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.BackSubstitute(MustDense(t, 2, 3), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.BackSubstitute(MustDense(t, 2, 2), []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// Factor, project, back-substitute: the full pipeline on the textbook line fit.
func TestQRPipeline_LineFit(t *testing.T) {
	t.Parallel()

	x := NewFilledDense(t, 3, 2, []float64{1, 1, 1, 2, 1, 3})
	q, r, err := matrix.GramSchmidt(x)
	require.NoError(t, err)
	z, err := matrix.Project(q, []float64{2, 3, 5})
	require.NoError(t, err)
	c, err := matrix.BackSubstitute(r, z)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, c[0], 1e-12)
	assert.InDelta(t, 1.5, c[1], 1e-12)
}
