// SPDX-License-Identifier: MIT
package linsys

import "fmt"

// coef is one off-diagonal entry of a row: the stored value is the final
// matrix coefficient (already negated for Laplacian edges).
type coef struct {
	col int
	val float64
}

// System is a symmetric, diagonally dominant linear system accumulator
// over a set of variables. The first InternalSize variables are the
// "real" ones (one per cell); AddVariables appends auxiliary variables
// (star centers) beyond them.
type System struct {
	internal int
	diag     []float64
	rhs      []float64
	rows     [][]coef
}

// New returns an empty system over n variables. Panics if n is negative.
func New(n int) *System {
	if n < 0 {
		panic(fmt.Sprintf("linsys: New: negative size %d", n))
	}
	return &System{
		internal: n,
		diag:     make([]float64, n),
		rhs:      make([]float64, n),
		rows:     make([][]coef, n),
	}
}

// Size returns the current number of variables, auxiliaries included.
func (s *System) Size() int { return len(s.diag) }

// InternalSize returns the number of non-auxiliary variables the system
// was created with. Writeback reads only this prefix of a solution.
func (s *System) InternalSize() int { return s.internal }

// AddVariables enlarges the system by k fresh auxiliary variables with
// empty rows. Panics if k is negative.
func (s *System) AddVariables(k int) {
	if k < 0 {
		panic(fmt.Sprintf("linsys: AddVariables: negative count %d", k))
	}
	s.diag = append(s.diag, make([]float64, k)...)
	s.rhs = append(s.rhs, make([]float64, k)...)
	s.rows = append(s.rows, make([][]coef, k)...)
}

func (s *System) check(op string, i int) {
	if i < 0 || i >= len(s.diag) {
		panic(fmt.Sprintf("linsys: %s: variable %d out of range [0,%d)", op, i, len(s.diag)))
	}
}

// AddTriplet stamps a Laplacian edge of weight w between variables i and
// j: +w on both diagonal entries, −w on the symmetric off-diagonal pair.
// The degenerate call with i == j adds w to the diagonal entry only,
// which is how fixed cells and stabilization diagonals are seeded.
func (s *System) AddTriplet(i, j int, w float64) {
	s.check("AddTriplet", i)
	s.check("AddTriplet", j)
	if i == j {
		s.diag[i] += w
		return
	}
	s.diag[i] += w
	s.diag[j] += w
	s.rows[i] = append(s.rows[i], coef{col: j, val: -w})
	s.rows[j] = append(s.rows[j], coef{col: i, val: -w})
}

// AddDoublet adds b to the right-hand side at row i.
func (s *System) AddDoublet(i int, b float64) {
	s.check("AddDoublet", i)
	s.rhs[i] += b
}

// AddAnchor pulls variable i toward target with stiffness w: a Laplacian
// edge to an implicit fixed auxiliary, fused with its RHS contribution.
func (s *System) AddAnchor(w float64, i int, target float64) {
	s.check("AddAnchor", i)
	s.diag[i] += w
	s.rhs[i] += w * target
}

// AddFixedForce connects movable variable i to a fixed endpoint: an
// anchor centered at fixedPos − movOffset with stiffness w.
func (s *System) AddFixedForce(w float64, i int, fixedPos, movOffset float64) {
	s.check("AddFixedForce", i)
	s.diag[i] += w
	s.rhs[i] += w * (fixedPos - movOffset)
}

// AddForce stamps a Laplacian edge of weight w between two movable
// variables whose pin offsets are offI and offJ; the offset difference
// is absorbed asymmetrically by the two RHS rows.
func (s *System) AddForce(w float64, i, j int, offI, offJ float64) {
	s.AddTriplet(i, j, w)
	s.rhs[i] += w * (offJ - offI)
	s.rhs[j] += w * (offI - offJ)
}
