// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/olsqr/lm"
)

// app carries the resolved flags and the logger shared by subcommands.
type app struct {
	input     string
	asJSON    bool
	logLevel  string
	rankCheck bool
	rankTol   float64
	eps       float64

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "QR-based ordinary least squares",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Long: `lsq computes least-squares coefficients for a linear model.

The design matrix is factored by modified Gram-Schmidt (X = Q·R) and the
coefficients come from back substitution of R·c = Qᵀy; XᵀX is never formed.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.input, "input", "i", "", "Problem YAML file (- for stdin)")
	pf.BoolVar(&a.asJSON, "json", false, "Print results as JSON")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level (debug|info|warn|error|disabled)")
	pf.BoolVar(&a.rankCheck, "rank-check", false, "Report rank deficiency as an error")
	pf.Float64Var(&a.rankTol, "rank-tol", lm.DefaultRankTolerance, "Relative pivot tolerance (implies --rank-check)")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the least-squares coefficients",
		Args:  cobra.NoArgs,
		RunE:  a.runSolve,
	}

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "Print coefficients, residuals and goodness of fit",
		Args:  cobra.NoArgs,
		RunE:  a.runFit,
	}

	factorCmd := &cobra.Command{
		Use:   "factor",
		Short: "Print the Q and R factors and verify X ≈ Q·R",
		Args:  cobra.NoArgs,
		RunE:  a.runFactor,
	}
	factorCmd.Flags().Float64Var(&a.eps, "eps", 1e-9, "Tolerance for the reconstruction check")

	crossCmd := &cobra.Command{
		Use:   "crossprod",
		Short: "Print Xᵀy (does not solve anything)",
		Args:  cobra.NoArgs,
		RunE:  a.runCrossProduct,
	}

	rootCmd.AddCommand(solveCmd, fitCmd, factorCmd, crossCmd)

	return rootCmd
}

// setupLogger writes human-readable logs to the command's stderr.
func (a *app) setupLogger(cmd *cobra.Command) error {
	level, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen, NoColor: true}
	a.log = zerolog.New(out).Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()

	return nil
}

// lmOptions merges the problem file settings with flags; flags win.
func (a *app) lmOptions(cmd *cobra.Command, p *Problem) ([]lm.Option, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("rank-tol"):
		if math.IsNaN(a.rankTol) || a.rankTol < 0 || a.rankTol >= 1 {
			return nil, fmt.Errorf("invalid --rank-tol %g: want a value in [0, 1)", a.rankTol)
		}
		return []lm.Option{lm.WithRankTolerance(a.rankTol)}, nil
	case flags.Changed("rank-check") && a.rankCheck:
		return []lm.Option{lm.WithRankCheck()}, nil
	case flags.Changed("rank-check"):
		return []lm.Option{lm.WithoutRankCheck()}, nil
	default:
		return p.Options(), nil
	}
}
