// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/olsqr/matrix"
)

func TestOptions_DefaultNaNPolicyRejects(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestOptions_LastWriterWins(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{math.Inf(1)}},
		matrix.WithNoValidateNaNInf(), matrix.WithEpsilon(1e-3), matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFrom([][]float64{{math.Inf(1)}},
		matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
}

func TestOptions_EpsilonDrivesAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 5e-4, 2})

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	assert.False(t, ok, "default epsilon %g", matrix.DefaultEpsilon)

	ok, err = matrix.AllClose(a, b, matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}
