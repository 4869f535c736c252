// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage and linear-algebra kernels behind
// the least-squares solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - General kernels: Mul, Transpose, MatVec and CrossProduct (Xᵀy).
//   - GramSchmidt, a thin QR factorization by modified Gram-Schmidt that
//     never touches the caller's matrix.
//   - Project (Qᵀy) and BackSubstitute (R·c = z) to finish a QR solve.
//   - Central validators, including ValidatePivots for rank checks.
//
// All kernels return sentinel errors (see errors.go) wrapped with an
// operation tag, so callers match them via errors.Is. Loop orders are fixed;
// repeated calls on identical inputs give bit-identical results.
package matrix
