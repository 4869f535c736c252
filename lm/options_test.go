// SPDX-License-Identifier: MIT
package lm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/olsqr/lm"
)

func TestOptions_Defaults(t *testing.T) {
	o := lm.NewOptions()
	assert.Equal(t, lm.RankPolicyIgnore, o.Policy())
	assert.Equal(t, lm.DefaultRankTolerance, o.Tolerance())
}

func TestOptions_Override(t *testing.T) {
	o := lm.NewOptions(lm.WithRankCheck())
	assert.Equal(t, lm.RankPolicyError, o.Policy())
	assert.Equal(t, lm.DefaultRankTolerance, o.Tolerance())

	o = lm.NewOptions(lm.WithRankTolerance(1e-6))
	assert.Equal(t, lm.RankPolicyError, o.Policy())
	assert.Equal(t, 1e-6, o.Tolerance())

	o = lm.NewOptions(lm.WithRankTolerance(0), lm.WithoutRankCheck())
	assert.Equal(t, lm.RankPolicyIgnore, o.Policy())
}

func TestOptions_ToleranceGuards(t *testing.T) {
	for _, tol := range []float64{-1e-9, 1, 2, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { lm.WithRankTolerance(tol) }, "tol %v", tol)
	}
	assert.NotPanics(t, func() { lm.WithRankTolerance(0) })
}

func TestDegeneracyReason_String(t *testing.T) {
	assert.Equal(t, "too few rows", lm.ReasonTooFewRows.String())
	assert.Equal(t, "small pivot", lm.ReasonSmallPivot.String())
	assert.Equal(t, "non-finite pivot", lm.ReasonNonFinitePivot.String())
	assert.Equal(t, "DegeneracyReason(9)", lm.DegeneracyReason(9).String())
}
