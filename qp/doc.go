// Package qp is the quadratic placement engine: it turns a netlist and a
// current placement into a pair of sparse linear systems (one per axis),
// adds pulling forces, solves both axes concurrently, and writes the
// solution back into the placement.
//
// Wirelength models
//
// Each net is translated into spring forces under one of six models,
// dispatched by caller choice:
//
//   - BuildHPWLF — bound-to-bound "fast": every pin connects to the
//     extreme (min and max position) pins with weight 1/(n−1). O(n)
//     edges approximating the HPWL gradient.
//   - BuildHPWLR — bound-to-bound "sorted chain": pins sorted by
//     position, pin k connects to pin k+2 with weight ½, extremes to
//     their direct neighbour.
//   - BuildStar — one auxiliary variable per net, each pin connected to
//     it with weight 1/n. Auxiliary rows of nets outside the window get
//     a unit diagonal so the matrix stays invertible, and are discarded
//     on writeback.
//   - BuildClique — all pin pairs with weight 1/(n−1); O(n²), for small
//     nets only.
//   - BuildMST / BuildRSMT — unit-weight forces along the rectilinear
//     spanning/Steiner tree edges from package topology.
//
// All builders take a (minPins, maxPins) window: only nets with
// minPins ≤ pinCount < maxPins contribute, which is how mixed strategies
// (clique below a threshold, star above) are composed. Distances are
// floored at tol when converting to weights, so coincident pins cannot
// blow the system up; tol must be strictly positive.
//
// Pulling forces
//
// AddQuadraticPulling anchors every cell at its current position with
// stiffness areaScale/typicalDistance. AddB2BPulling implements the
// classical linearized bound-to-bound reweighting between a legalized
// upper-bound and a quadratic lower-bound placement, the step that makes
// iterated quadratic solves approximate L1 (HPWL) minimization.
//
// Solving
//
// Solve runs conjugate gradient on the two axes concurrently (they share
// no data) and writes back only the coordinates whose movability bit is
// set. Fixed cells are additionally pinned by unit diagonals seeded in
// EmptySystems, so even a mispropagated flag cannot move them far.
//
// The entire package except Solve is single-threaded and allocation-
// conscious; systems live for one outer iteration and are dropped.
package qp
