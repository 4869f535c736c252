// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/olsqr/lm"
	"github.com/katalvlaran/olsqr/matrix"
)

// number encodes NaN and ±Inf as JSON null; degenerate solves produce them.
type number float64

// MarshalJSON implements json.Marshaler.
func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(vs []float64) []number {
	out := make([]number, len(vs))
	for i, v := range vs {
		out[i] = number(v)
	}

	return out
}

type coefficientOut struct {
	Name  string `json:"name"`
	Value number `json:"value"`
}

type solveOut struct {
	Coefficients []coefficientOut `json:"coefficients"`
}

type fitOut struct {
	Coefficients []coefficientOut `json:"coefficients"`
	Fitted       []number         `json:"fitted"`
	Residuals    []number         `json:"residuals"`
	RSS          number           `json:"rss"`
	TSS          number           `json:"tss"`
	RSquared     number           `json:"r_squared"`
	DF           int              `json:"df"`
}

type factorOut struct {
	Q             [][]number `json:"q"`
	R             [][]number `json:"r"`
	Reconstructed bool       `json:"reconstructed"`
	Orthonormal   bool       `json:"orthonormal"`
}

type crossOut struct {
	CrossProduct []number `json:"cross_product"`
}

// load reads the problem and builds the design matrix and solver options.
func (a *app) load(cmd *cobra.Command) (*Problem, *matrix.Dense, []lm.Option, error) {
	p, err := LoadProblem(a.input, cmd.InOrStdin())
	if err != nil {
		return nil, nil, nil, err
	}
	x, err := p.Matrix()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid design: %w", err)
	}
	opts, err := a.lmOptions(cmd, p)
	if err != nil {
		return nil, nil, nil, err
	}
	o := lm.NewOptions(opts...)
	a.log.Debug().
		Str("input", a.input).
		Int("rows", x.Rows()).
		Int("cols", x.Cols()).
		Int("response", len(p.Response)).
		Bool("rank_check", o.Policy() == lm.RankPolicyError).
		Float64("rank_tol", o.Tolerance()).
		Msg("problem loaded")

	return p, x, opts, nil
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	p, x, opts, err := a.load(cmd)
	if err != nil {
		return err
	}
	coef, err := lm.Solve(x, p.Response, opts...)
	if err != nil {
		a.logSolveError(err)
		return err
	}
	a.warnNonFinite(coef)

	out := solveOut{Coefficients: labelled(p.Labels(len(coef)), coef)}
	if a.asJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	writeCoefficients(cmd.OutOrStdout(), out.Coefficients)

	return nil
}

func (a *app) runFit(cmd *cobra.Command, _ []string) error {
	p, x, opts, err := a.load(cmd)
	if err != nil {
		return err
	}
	mdl, err := lm.Fit(x, p.Response, opts...)
	if err != nil {
		a.logSolveError(err)
		return err
	}
	a.warnNonFinite(mdl.Coefficients)
	a.log.Info().Float64("rss", mdl.RSS).Float64("r_squared", mdl.RSquared).Int("df", mdl.DF).Msg("model fitted")

	out := fitOut{
		Coefficients: labelled(p.Labels(len(mdl.Coefficients)), mdl.Coefficients),
		Fitted:       numbers(mdl.Fitted),
		Residuals:    numbers(mdl.Residuals),
		RSS:          number(mdl.RSS),
		TSS:          number(mdl.TSS),
		RSquared:     number(mdl.RSquared),
		DF:           mdl.DF,
	}
	if a.asJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	w := cmd.OutOrStdout()
	writeCoefficients(w, out.Coefficients)
	fmt.Fprintf(w, "rss\t%g\ntss\t%g\nr_squared\t%g\ndf\t%d\n", mdl.RSS, mdl.TSS, mdl.RSquared, mdl.DF)
	fmt.Fprintf(w, "residuals\t%s\n", joinFloats(mdl.Residuals))

	return nil
}

func (a *app) runFactor(cmd *cobra.Command, _ []string) error {
	_, x, opts, err := a.load(cmd)
	if err != nil {
		return err
	}
	f, err := lm.Factorize(x, opts...)
	if err != nil {
		a.logSolveError(err)
		return err
	}
	q, r := f.Q(), f.R()
	qr, err := matrix.Mul(q, r)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(qr, x, matrix.WithEpsilon(a.eps))
	if err != nil {
		return err
	}
	if !ok {
		a.log.Warn().Float64("eps", a.eps).Msg("Q·R does not reconstruct X within tolerance")
	}
	orth, err := orthonormal(q, a.eps)
	if err != nil {
		return err
	}
	if !orth {
		a.log.Warn().Float64("eps", a.eps).Msg("QᵀQ is not the identity within tolerance")
	}

	out := factorOut{Q: rowSlices(q), R: rowSlices(r), Reconstructed: ok, Orthonormal: orth}
	if a.asJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Q\n%sR\n%sreconstructed\t%t\northonormal\t%t\n", q, r, ok, orth)

	return nil
}

// orthonormal reports whether QᵀQ equals the p×p identity within eps.
// Degenerate columns leave NaN in Q and fail the check.
func orthonormal(q matrix.Matrix, eps float64) (bool, error) {
	qt, err := matrix.Transpose(q)
	if err != nil {
		return false, err
	}
	qtq, err := matrix.Mul(qt, q)
	if err != nil {
		return false, err
	}
	id, err := matrix.NewIdentity(q.Cols())
	if err != nil {
		return false, err
	}

	return matrix.AllClose(qtq, id, matrix.WithEpsilon(eps))
}

func (a *app) runCrossProduct(cmd *cobra.Command, _ []string) error {
	p, x, _, err := a.load(cmd)
	if err != nil {
		return err
	}
	xty, err := matrix.CrossProduct(x, p.Response)
	if err != nil {
		return err
	}

	if a.asJSON {
		return writeJSON(cmd.OutOrStdout(), crossOut{CrossProduct: numbers(xty)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), joinFloats(xty))

	return nil
}

func (a *app) logSolveError(err error) {
	var de *lm.DegeneracyError
	if errors.As(err, &de) {
		a.log.Error().
			Str("reason", de.Reason.String()).
			Int("column", de.Column).
			Float64("pivot", de.Pivot).
			Float64("threshold", de.Threshold).
			Msg("design matrix is rank deficient")
		return
	}
	a.log.Error().Err(err).Msg("solve failed")
}

// warnNonFinite flags the unchecked degenerate case, where the solver returns numbers anyway.
func (a *app) warnNonFinite(coef []float64) {
	for j, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			a.log.Warn().Int("column", j).Float64("value", c).Msg("non-finite coefficient; rerun with --rank-check")
			return
		}
	}
}

func labelled(names []string, values []float64) []coefficientOut {
	out := make([]coefficientOut, len(values))
	for j, v := range values {
		out[j] = coefficientOut{Name: names[j], Value: number(v)}
	}

	return out
}

func rowSlices(m matrix.Matrix) [][]number {
	out := make([][]number, m.Rows())
	var v float64
	for i := range out {
		out[i] = make([]number, m.Cols())
		for j := range out[i] {
			v, _ = m.At(i, j) // indices are in range
			out[i][j] = number(v)
		}
	}

	return out
}

func writeCoefficients(w io.Writer, coef []coefficientOut) {
	for _, c := range coef {
		fmt.Fprintf(w, "%s\t%g\n", c.Name, float64(c.Value))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return strings.Join(parts, " ")
}
