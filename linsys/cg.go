// SPDX-License-Identifier: MIT
package linsys

import (
	"fmt"
	"math"
)

// cgTolerance sets the residual threshold ‖r‖₂ ≤ cgTolerance·max(‖b‖₂, 1)
// below which the solve stops early: relative to the right-hand side
// when ‖b‖₂ ≥ 1, absolute below that. The iteration cap passed by the
// caller is the other bound; whichever is hit first wins.
const cgTolerance = 1e-8

// SolveCG solves the accumulated system with Jacobi-preconditioned
// conjugate gradient, starting from guess. The guess must cover either
// the internal variables (auxiliaries start at zero) or every variable.
// The returned slice has Size() entries; auxiliary rows carry the star
// centers and are meaningless as placement output.
//
// The solve is deterministic for a fixed assembly sequence: rows keep
// insertion order, so every dot product sums in the same order on every
// run. Non-convergence within maxIters is not an error.
//
// Time: O(maxIters · nnz). Space: O(Size()).
func (s *System) SolveCG(guess []float64, maxIters int) []float64 {
	n := len(s.diag)
	if len(guess) != s.internal && len(guess) != n {
		panic(fmt.Sprintf("linsys: SolveCG: guess length %d, want %d or %d", len(guess), s.internal, n))
	}

	x := make([]float64, n)
	copy(x, guess)

	// Jacobi preconditioner. A zero diagonal means a variable with no
	// contribution at all; unit fallback keeps the iteration finite.
	inv := make([]float64, n)
	for i, d := range s.diag {
		if d != 0 {
			inv[i] = 1.0 / d
		} else {
			inv[i] = 1.0
		}
	}

	r := make([]float64, n)
	s.mulVec(x, r)
	for i := range r {
		r[i] = s.rhs[i] - r[i]
	}
	z := make([]float64, n)
	p := make([]float64, n)
	for i := range z {
		z[i] = inv[i] * r[i]
		p[i] = z[i]
	}
	rz := dot(r, z)

	threshold := cgTolerance * math.Max(norm2(s.rhs), 1)

	ap := make([]float64, n)
	for iter := 0; iter < maxIters && norm2(r) > threshold; iter++ {
		s.mulVec(p, ap)
		pap := dot(p, ap)
		if pap <= 0 {
			// Numerical breakdown; the current iterate is the best answer.
			break
		}
		alpha := rz / pap
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		for i := range z {
			z[i] = inv[i] * r[i]
		}
		rzNext := dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
	return x
}

// MulVec returns A·x. Diagnostic companion to Dense: symmetry and
// positive-definiteness can be probed through products without forming
// the dense matrix. Panics unless x covers every variable.
func (s *System) MulVec(x []float64) []float64 {
	if len(x) != len(s.diag) {
		panic(fmt.Sprintf("linsys: MulVec: vector length %d, want %d", len(x), len(s.diag)))
	}
	dst := make([]float64, len(x))
	s.mulVec(x, dst)
	return dst
}

// mulVec computes dst = A·x using the diagonal plus the per-row entries.
func (s *System) mulVec(x, dst []float64) {
	for i := range dst {
		acc := s.diag[i] * x[i]
		for _, c := range s.rows[i] {
			acc += c.val * x[c.col]
		}
		dst[i] = acc
	}
}

func dot(a, b []float64) float64 {
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

func norm2(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
