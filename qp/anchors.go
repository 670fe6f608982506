package qp

import (
	"fmt"
	"math"

	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// AreaScales returns each cell's area divided by the average cell area.
// Pulling forces multiply their stiffness by this scale so heavy cells
// are not dominated by light ones.
func AreaScales(nl *netlist.Netlist) []float64 {
	n := nl.CellCnt()
	scales := make([]float64, n)
	if n == 0 {
		return scales
	}
	var total int64
	for i := 0; i < n; i++ {
		a := nl.Cell(i).Area
		scales[i] = float64(a)
		total += a
	}
	avg := float64(total) / float64(n)
	for i := range scales {
		scales[i] /= avg
	}
	return scales
}

// AddQuadraticPulling anchors every cell at its current position with
// stiffness areaScale/typicalDistance, in place on both axis systems.
// It regularizes an otherwise unconstrained system; typicalDistance
// must be strictly positive.
func AddQuadraticPulling(sys *SystemPair, nl *netlist.Netlist, pl *placement.Placement, typicalDistance float64) {
	if !(typicalDistance > 0) {
		panic(fmt.Sprintf("qp: AddQuadraticPulling: typical distance %g must be strictly positive", typicalDistance))
	}
	force := 1.0 / typicalDistance
	scales := AreaScales(nl)
	for i := 0; i < nl.CellCnt(); i++ {
		sys.X.AddAnchor(force*scales[i], i, pl.Positions[i].X)
		sys.Y.AddAnchor(force*scales[i], i, pl.Positions[i].Y)
	}
}

// AddB2BPulling adds the linearized bound-to-bound pulling forces, in
// place: each cell is anchored at its upper-bound (legalized) position
// with stiffness force·areaScale/max(|UB−LB|, minDistance) per axis.
// Reweighting by the inverse displacement is what turns the iterated
// quadratic solves into an L1 (HPWL-consistent) minimization.
// minDistance must be strictly positive; the placements must cover the
// netlist's cells.
func AddB2BPulling(sys *SystemPair, nl *netlist.Netlist, ub, lb *placement.Placement, force, minDistance float64) {
	if !(minDistance > 0) {
		panic(fmt.Sprintf("qp: AddB2BPulling: min distance %g must be strictly positive", minDistance))
	}
	if ub.CellCnt() != nl.CellCnt() || lb.CellCnt() != nl.CellCnt() {
		panic(fmt.Sprintf("qp: AddB2BPulling: placements cover %d/%d cells, netlist %d",
			ub.CellCnt(), lb.CellCnt(), nl.CellCnt()))
	}
	scales := AreaScales(nl)
	for i := 0; i < nl.CellCnt(); i++ {
		dx := math.Abs(ub.Positions[i].X - lb.Positions[i].X)
		dy := math.Abs(ub.Positions[i].Y - lb.Positions[i].Y)
		sys.X.AddAnchor(force*scales[i]/math.Max(dx, minDistance), i, ub.Positions[i].X)
		sys.Y.AddAnchor(force*scales[i]/math.Max(dy, minDistance), i, ub.Positions[i].Y)
	}
}
