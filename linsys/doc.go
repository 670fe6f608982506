// SPDX-License-Identifier: MIT
// Package linsys provides the sparse symmetric linear system used by the
// quadratic placement engine: a Laplacian accumulator plus a conjugate-
// gradient solver.
//
// What & Why
//
//   - A quadratic wirelength model turns every two-pin interaction into a
//     spring. The matrix of the resulting normal equations is a weighted
//     graph Laplacian plus anchor diagonals: symmetric, diagonally
//     dominant, hence positive semi-definite — and positive definite as
//     soon as one anchor or fixed cell pins the system per axis.
//
//   - System accumulates those contributions through a small stamping
//     API (AddTriplet, AddDoublet, AddAnchor, AddFixedForce, AddForce)
//     and solves with Jacobi-preconditioned conjugate gradient. Entries
//     are kept per row in insertion order and never merged, so the
//     floating-point summation order — and therefore the solution — is
//     deterministic for a fixed assembly sequence.
//
//   - A System is built fresh for every outer placement iteration and
//     dropped after its solve; nothing is retained across solves.
//
// Contract discipline
//
// Out-of-range variable indices and invalid shapes are programmer errors
// and panic. The assembler owns index generation; there is no user input
// to validate at this level. Solver non-convergence within the iteration
// cap is NOT an error: whatever CG produced is returned, and outer loops
// are responsible for quality.
//
// Dense (gonum mat.SymDense export) exists for diagnostics and tests —
// symmetry and positive-definiteness checks run against it.
package linsys
