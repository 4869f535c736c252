// SPDX-License-Identifier: MIT

// Package lm: functional configuration for the rank policy.
//
// Defaults reproduce the unchecked algorithm: a degenerate factorization
// still yields a coefficient vector (possibly ±Inf/NaN). Checked mode turns
// the same situations into ErrRankDeficient without changing any signature.
package lm

import "math"

// RankPolicy selects what happens when the factorization is numerically degenerate.
type RankPolicy int

const (
	// RankPolicyIgnore divides through every pivot; degeneracy shows up in the numbers.
	RankPolicyIgnore RankPolicy = iota
	// RankPolicyError rejects p > n and pivots failing matrix.ValidatePivots.
	RankPolicyError
)

// Defaults (single source of truth).
const (
	// DefaultRankPolicy keeps the unchecked behavior.
	DefaultRankPolicy = RankPolicyIgnore

	// DefaultRankTolerance is the relative pivot threshold used by WithRankCheck:
	// |R[k,k]| must exceed DefaultRankTolerance·max|R[i,i]|.
	DefaultRankTolerance = 1e-10
)

const panicRankToleranceInvalid = "lm: WithRankTolerance: tol must be finite, in [0, 1)"

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	policy RankPolicy
	tol    float64
}

// Policy returns the effective rank policy.
func (o Options) Policy() RankPolicy { return o.policy }

// Tolerance returns the effective relative pivot tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// WithRankCheck enables RankPolicyError with DefaultRankTolerance.
func WithRankCheck() Option {
	return func(o *Options) {
		o.policy = RankPolicyError
		o.tol = DefaultRankTolerance
	}
}

// WithRankTolerance enables RankPolicyError with a custom relative tolerance.
// tol = 0 rejects only exactly-zero and non-finite pivots.
// Panics when tol is NaN, infinite, negative or ≥ 1 (programmer error).
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) {
		o.policy = RankPolicyError
		o.tol = tol
	}
}

// WithoutRankCheck restores RankPolicyIgnore.
func WithoutRankCheck() Option {
	return func(o *Options) { o.policy = RankPolicyIgnore }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{policy: DefaultRankPolicy, tol: DefaultRankTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
