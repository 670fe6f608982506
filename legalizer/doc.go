// Package legalizer bridges the quadratic core to an external rough
// legalizer. The legalizer itself — a region-distribution pass that
// spreads movable cells across a surface until density constraints hold
// — is a collaborator behind the Distributor interface and is treated as
// a pure function of its input.
//
// The bridge does three things:
//
//   - MakeInput partitions cells into movable (any movability bit set)
//     and fixed, and marshals areas, sizes and current positions
//     together with the bounding surface.
//   - ApplyOutput writes the spread positions a Distributor exported
//     back into the placement, by cell index.
//   - MeanLinearDisruption / MeanQuadraticDisruption measure how far the
//     legalized (upper-bound) placement moved away from the quadratic
//     (lower-bound) one, area-weighted. The embedding outer loop uses
//     them to decide convergence; the core only computes them.
//
// Run composes the three with a shared logger for hosts that want the
// one-call form.
package legalizer
