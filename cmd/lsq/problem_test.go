// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/olsqr/lm"
)

const lineProblem = `
names: [intercept, slope]
design:
  - [1, 1]
  - [1, 2]
  - [1, 3]
response: [2, 3, 5]
`

func TestParseProblem(t *testing.T) {
	p, err := ParseProblem([]byte(lineProblem))
	require.NoError(t, err)
	assert.Equal(t, []string{"intercept", "slope"}, p.Names)
	assert.Equal(t, []float64{2, 3, 5}, p.Response)

	x, err := p.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 3, x.Rows())
	assert.Equal(t, 2, x.Cols())
	assert.Nil(t, p.Options())
}

func TestParseProblem_Invalid(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"no design":    {"response: [1, 2]", errNoDesign},
		"both designs": {"design: [[1]]\nx: [1]\nresponse: [1]", errBothDesigns},
		"no response":  {"design: [[1], [2]]", errNoResponse},
	}
	for name, tc := range cases {
		_, err := ParseProblem([]byte(tc.doc))
		require.ErrorIs(t, err, tc.want, name)
	}

	for _, tol := range []string{"1.5", "-0.5", ".nan"} {
		_, err := ParseProblem([]byte("design: [[1]]\nresponse: [1]\nrank_tolerance: " + tol))
		require.ErrorContains(t, err, "rank_tolerance", tol)
	}

	_, err := ParseProblem([]byte("design: [[1, oops]]"))
	require.ErrorContains(t, err, "failed to parse problem")
}

func TestProblem_Polynomial(t *testing.T) {
	p, err := ParseProblem([]byte("x: [0, 1, 2, 3]\ndegree: 2\nresponse: [1, 3, 7, 13]"))
	require.NoError(t, err)
	x, err := p.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 3, x.Cols())
	assert.Equal(t, []string{"b0", "b1", "b2"}, p.Labels(x.Cols()))
}

func TestProblem_PolynomialDegreeDefault(t *testing.T) {
	p, err := ParseProblem([]byte("x: [0, 1, 2]\nresponse: [1, 3, 5]"))
	require.NoError(t, err)
	x, err := p.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 2, x.Cols(), "omitted degree fits a line")

	p, err = ParseProblem([]byte("x: [0, 1, 2]\ndegree: 0\nresponse: [1, 3, 5]"))
	require.NoError(t, err)
	x, err = p.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 1, x.Cols(), "explicit degree 0 fits an intercept")
}

func TestProblem_MatrixErrors(t *testing.T) {
	p, err := ParseProblem([]byte("names: [a]\ndesign: [[1, 2], [3, 4]]\nresponse: [1, 2]"))
	require.NoError(t, err)
	_, err = p.Matrix()
	require.ErrorIs(t, err, errNamesMismatch)

	p, err = ParseProblem([]byte("design: [[1, 2], [3]]\nresponse: [1, 2]"))
	require.NoError(t, err)
	_, err = p.Matrix()
	require.Error(t, err)
}

func TestProblem_Options(t *testing.T) {
	p := &Problem{RankCheck: true}
	assert.Equal(t, lm.RankPolicyError, lm.NewOptions(p.Options()...).Policy())

	p = &Problem{RankTolerance: 1e-4}
	o := lm.NewOptions(p.Options()...)
	assert.Equal(t, lm.RankPolicyError, o.Policy())
	assert.Equal(t, 1e-4, o.Tolerance())
}

func TestLoadProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lineProblem), 0o600))

	p, err := LoadProblem(path, nil)
	require.NoError(t, err)
	assert.Len(t, p.Design, 3)

	p, err = LoadProblem("-", strings.NewReader(lineProblem))
	require.NoError(t, err)
	assert.Len(t, p.Design, 3)

	_, err = LoadProblem(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.ErrorContains(t, err, "failed to read problem")
}
