// SPDX-License-Identifier: MIT
package linsys

import "gonum.org/v1/gonum/mat"

// Dense exports the accumulated matrix as a gonum symmetric dense matrix.
// Intended for diagnostics and property tests (symmetry by construction,
// positive-definiteness via Cholesky); never used on the solve path.
//
// Time: O(Size()² + nnz). Space: O(Size()²).
func (s *System) Dense() *mat.SymDense {
	n := len(s.diag)
	a := mat.NewSymDense(n, nil)
	for i, d := range s.diag {
		a.SetSym(i, i, d)
	}
	// Each Laplacian edge was stamped on both rows; visiting only the
	// upper-triangle entries of each row accumulates every edge once.
	for i, row := range s.rows {
		for _, c := range row {
			if c.col > i {
				a.SetSym(i, c.col, a.At(i, c.col)+c.val)
			}
		}
	}
	return a
}

// RHS returns a copy of the right-hand side vector.
func (s *System) RHS() []float64 {
	return append([]float64(nil), s.rhs...)
}
