// Package netlist provides the immutable circuit store consumed by the
// global placement core: cells, nets, and pins held in parallel arrays
// indexed by dense internal integers.
//
// What & Why
//
//   - A netlist is a hypergraph: cells are vertices, nets are hyperedges,
//     and pins are the incidences between them. Each pin carries a finite
//     2-D offset from its cell's reference point.
//
//   - The store is CSR-shaped: two boundary arrays of lengths cellCnt+1
//     and netCnt+1 partition the pin range [0, pinCnt) into each cell's
//     pins and each net's pins. All cross-references are small integer
//     indices, never pointers, so a full sweep over every pin of every
//     net touches memory sequentially. This is what lets the quadratic
//     assembler in package qp sustain millions of pin lookups per solve.
//
//   - External identifiers (the names of the host design) are mapped to
//     internal indices by a bijection held in the Builder; the core never
//     sees external names on its hot path.
//
// Construction
//
//	b := netlist.NewBuilder()
//	b.AddCell("a11", netlist.CellSpec{Area: 1, Attributes: netlist.Movable})
//	b.AddCell("pad", netlist.CellSpec{Area: 4})
//	b.AddNet("n1", 1.0, []netlist.PinSpec{{Cell: "a11"}, {Cell: "pad"}})
//	nl, err := b.Build()
//
// AddCell and AddNet validate user input and return sentinel errors
// (ErrUnknownCell, ErrDuplicateCell, ErrBadWeight, ErrNotFinite), matched
// with errors.Is; Build itself reports no error on input they accepted.
// Once built, a Netlist is immutable; Selfcheck panics on any violation
// of the internal invariants, because after a successful Build those can
// only be programmer errors.
//
// Degenerate nets (pin count ≤ 1) are legal and contribute nothing to
// wirelength; the assemblers skip them.
package netlist
