// Package placement holds the mutable placement state of a circuit: one
// 2-D position and one 2-D orientation vector per cell, indexed by the
// cell's internal netlist index.
//
// A Placement is the only mutable store in the core. Every coordinate
// must remain finite at every observable moment; Selfcheck panics when
// that invariant is broken, since only a programmer error (a diverging
// solve written back unchecked, an unvalidated host input) can break it.
//
// The upper-bound/lower-bound iteration of the embedding placer keeps two
// placements of the same netlist alive at once; Clone produces the deep
// copy that bookkeeping needs.
package placement
