// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/olsqr/lm"
	"github.com/katalvlaran/olsqr/matrix"
)

// Problem is the YAML input of every subcommand.
// Exactly one of Design or X (with Degree) describes the design matrix.
type Problem struct {
	Names    []string    `yaml:"names"`    // optional coefficient labels, one per column
	Design   [][]float64 `yaml:"design"`   // explicit n×p design matrix, row per observation
	X        []float64   `yaml:"x"`        // single predictor expanded by Vandermonde
	Degree   *int        `yaml:"degree"`   // polynomial degree for X; omitted means 1 (intercept + slope)
	Response []float64   `yaml:"response"` // y, one value per observation

	RankCheck     bool    `yaml:"rank_check"`     // promote degeneracy to an error
	RankTolerance float64 `yaml:"rank_tolerance"` // relative pivot tolerance; 0 = lm default
}

const defaultDegree = 1

var (
	errNoDesign      = errors.New("problem: one of design or x is required")
	errBothDesigns   = errors.New("problem: design and x are mutually exclusive")
	errNoResponse    = errors.New("problem: response is required")
	errNamesMismatch = errors.New("problem: names must match the column count")
)

// LoadProblem reads a YAML problem from path, or from stdin when path is "-".
func LoadProblem(path string, stdin io.Reader) (*Problem, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}

	return ParseProblem(data)
}

// ParseProblem decodes and validates a YAML problem.
func ParseProblem(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}

	return &p, nil
}

// Validate checks the structural rules that do not need the design matrix.
// Row/response length agreement is left to lm so the error is the solver's own.
func (p *Problem) Validate() error {
	switch {
	case len(p.Design) == 0 && len(p.X) == 0:
		return errNoDesign
	case len(p.Design) > 0 && len(p.X) > 0:
		return errBothDesigns
	case len(p.Response) == 0:
		return errNoResponse
	case math.IsNaN(p.RankTolerance) || p.RankTolerance < 0 || p.RankTolerance >= 1:
		return fmt.Errorf("problem: rank_tolerance %g outside [0, 1)", p.RankTolerance)
	}

	return nil
}

// Matrix builds the design matrix.
func (p *Problem) Matrix() (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	if len(p.Design) > 0 {
		m, err = matrix.NewDenseFrom(p.Design)
	} else {
		m, err = lm.Vandermonde(p.X, p.degree())
	}
	if err != nil {
		return nil, err
	}
	if len(p.Names) > 0 && len(p.Names) != m.Cols() {
		return nil, fmt.Errorf("%w: %d names, %d columns", errNamesMismatch, len(p.Names), m.Cols())
	}

	return m, nil
}

// degree returns the polynomial degree, defaulting to a straight line.
func (p *Problem) degree() int {
	if p.Degree == nil {
		return defaultDegree
	}

	return *p.Degree
}

// Labels returns a label per coefficient, defaulting to b0, b1, ….
func (p *Problem) Labels(cols int) []string {
	if len(p.Names) == cols {
		return p.Names
	}
	out := make([]string, cols)
	for j := range out {
		out[j] = fmt.Sprintf("b%d", j)
	}

	return out
}

// Options translates the rank settings into lm options.
func (p *Problem) Options() []lm.Option {
	switch {
	case p.RankTolerance > 0:
		return []lm.Option{lm.WithRankTolerance(p.RankTolerance)}
	case p.RankCheck:
		return []lm.Option{lm.WithRankCheck()}
	default:
		return nil
	}
}
