package legalizer

import (
	"fmt"
	"math"

	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// disruptionTerms accumulates the area-weighted displacement between two
// placements of the same netlist. power selects the L1 (1) or squared
// (2) accumulation. A displacement on an immovable axis is a programmer
// error in flag propagation and panics.
func disruptionTerms(nl *netlist.Netlist, lb, ub *placement.Placement, power int) (cost, area float64) {
	if lb.CellCnt() != nl.CellCnt() || ub.CellCnt() != nl.CellCnt() {
		panic(fmt.Sprintf("legalizer: disruption: placements cover %d/%d cells, netlist %d",
			lb.CellCnt(), ub.CellCnt(), nl.CellCnt()))
	}
	for i := 0; i < nl.CellCnt(); i++ {
		c := nl.Cell(i)
		diff := lb.Positions[i].Sub(ub.Positions[i])
		if !c.Attributes.Has(netlist.XMovable) && diff.X != 0 {
			panic(fmt.Sprintf("legalizer: disruption: x-fixed cell %d moved by %g", i, diff.X))
		}
		if !c.Attributes.Has(netlist.YMovable) && diff.Y != 0 {
			panic(fmt.Sprintf("legalizer: disruption: y-fixed cell %d moved by %g", i, diff.Y))
		}
		manhattan := diff.Manhattan()
		if power == 2 {
			manhattan *= manhattan
		}
		cost += float64(c.Area) * manhattan
		area += float64(c.Area)
	}
	return cost, area
}

// MeanLinearDisruption returns the area-weighted mean Manhattan
// displacement between a lower-bound and an upper-bound placement:
// Σ areaᵢ·(|Δxᵢ|+|Δyᵢ|) / Σ areaᵢ. Zero iff the placements coincide.
func MeanLinearDisruption(nl *netlist.Netlist, lb, ub *placement.Placement) float64 {
	cost, area := disruptionTerms(nl, lb, ub, 1)
	if area == 0 {
		return 0
	}
	return cost / area
}

// MeanQuadraticDisruption returns the square root of the area-weighted
// mean squared Manhattan displacement:
// sqrt(Σ areaᵢ·(|Δxᵢ|+|Δyᵢ|)² / Σ areaᵢ).
func MeanQuadraticDisruption(nl *netlist.Netlist, lb, ub *placement.Placement) float64 {
	cost, area := disruptionTerms(nl, lb, ub, 2)
	if area == 0 {
		return 0
	}
	return math.Sqrt(cost / area)
}
