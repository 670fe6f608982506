// Package gplace is the analytical core of a global VLSI placer: given a
// netlist and a current placement, it assembles quadratic wirelength
// models into sparse linear systems, solves the two coordinate axes in
// parallel with conjugate gradient, and reconciles the result with an
// external rough legalizer.
//
// What lives where:
//
//	geom/      — points, integer extents and boxes shared by every layer
//	netlist/   — immutable CSR circuit store: cells, nets, pins, offsets
//	placement/ — mutable per-cell positions and orientations
//	linsys/    — Laplacian accumulator + Jacobi-preconditioned CG solver
//	topology/  — rectilinear MST and Steiner topology builders & lengths
//	qp/        — pin projectors, the six wirelength-model assemblers,
//	             pulling forces, the parallel solve driver, wirelength metrics
//	legalizer/ — bridge to the external region-distribution legalizer,
//	             disruption metrics
//
// One outer iteration of the classical lower-bound/upper-bound loop:
//
//	sys := qp.BuildHPWLF(nl, lb, tol, 2, qp.NoMaxPins)
//	qp.AddB2BPulling(sys, nl, ub, lb, force, minDist)
//	qp.Solve(sys, nl, lb, maxIters)          // new lower bound
//	legalizer.Run(nl, ub, surface, dist)     // new upper bound
//
// The core is re-entrant across independent (netlist, placement) pairs,
// holds no global state, and persists nothing; every system lives for
// one iteration.
package gplace
