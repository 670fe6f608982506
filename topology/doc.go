// Package topology builds rectilinear interconnect topologies over pin
// positions: minimum spanning trees and Steiner-tree approximations,
// plus their Manhattan lengths.
//
// The quadratic assembler consumes these as pure functions: MST returns
// one edge list used on both axes, RSMT returns two axis-specific edge
// lists (a Steiner tree may route the two axes through different
// neighbours). Edges reference pin indices of the input slice and are
// normalized with From < To.
//
// Algorithms
//
//   - MST runs Prim's algorithm on the complete Manhattan-distance graph
//     in O(n²) time and O(n) extra space — for placement nets (tens of
//     pins at most after windowing) the dense variant beats heap-based
//     Prim, and it needs no adjacency build.
//
//   - RSMT is exact for nets of up to three pins, where the Steiner tree
//     degenerates to the half-perimeter: two pins connect directly and
//     three pins route through the (median x, median y) corner, which
//     the axis decomposition expresses by chaining through the median
//     pin per axis. Larger nets fall back to the MST topology on both
//     axes. The accuracy parameter selects the effort of table-driven
//     plug-in builders and is accepted for signature stability; the
//     fallback ignores it.
//
// Determinism: ties in Prim's growth and in median selection break on
// the lowest pin index, so identical inputs always produce identical
// edge lists.
package topology
