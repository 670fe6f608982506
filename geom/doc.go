// Package geom provides the small geometric vocabulary shared by the
// placement core: real-valued 2-D points for positions and pin offsets,
// integer points for cell sizes, and axis-aligned boxes for placement
// surfaces.
//
// All types are plain value types with no invariants of their own; the
// packages that consume them (netlist, placement, qp, legalizer) enforce
// finiteness where their contracts require it.
package geom
