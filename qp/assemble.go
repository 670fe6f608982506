package qp

import (
	"fmt"
	"math"

	"github.com/vdumont/gplace/linsys"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// EmptySystems returns a fresh axis pair sized for the netlist, with
// every axis-immovable cell pinned at its current coordinate by a unit
// diagonal and matching RHS entry. Every model builder starts here.
func EmptySystems(nl *netlist.Netlist, pl *placement.Placement) *SystemPair {
	n := nl.CellCnt()
	if pl.CellCnt() != n {
		panic(fmt.Sprintf("qp: EmptySystems: placement covers %d cells, netlist %d", pl.CellCnt(), n))
	}
	sys := &SystemPair{X: linsys.New(n), Y: linsys.New(n)}
	for i := 0; i < n; i++ {
		attrs := nl.Cell(i).Attributes
		if !attrs.Has(netlist.XMovable) {
			sys.X.AddTriplet(i, i, 1.0)
			sys.X.AddDoublet(i, pl.Positions[i].X)
		}
		if !attrs.Has(netlist.YMovable) {
			sys.Y.AddTriplet(i, i, 1.0)
			sys.Y.AddDoublet(i, pl.Positions[i].Y)
		}
	}
	return sys
}

// addPair stamps the interaction of two 1-D pins with weight w: a
// movable-movable pair becomes a Laplacian edge with offset-corrected
// RHS, a movable-fixed pair an anchor at the fixed pin's position, and a
// fixed-fixed pair nothing.
func addPair(p1, p2 Pin1D, L *linsys.System, w float64) {
	switch {
	case p1.Movable && p2.Movable:
		L.AddForce(w, p1.Cell, p2.Cell, p1.Offset, p2.Offset)
	case p1.Movable:
		L.AddFixedForce(w, p1.Cell, p2.Pos, p1.Offset)
	case p2.Movable:
		L.AddFixedForce(w, p2.Cell, p1.Pos, p2.Offset)
	}
}

// addPairTol is addPair with the distance-derived weight scale/max(tol,
// |p2.Pos − p1.Pos|). The tol floor is what keeps coincident pins from
// producing unbounded weights.
func addPairTol(p1, p2 Pin1D, L *linsys.System, tol, scale float64) {
	addPair(p1, p2, L, scale/math.Max(tol, math.Abs(p2.Pos-p1.Pos)))
}

// checkTol validates the shared numerical floor of the model builders.
// A non-positive tol would reintroduce division blow-up on coincident
// pins, which is a programmer error, not an input condition.
func checkTol(op string, tol float64) {
	if !(tol > 0) {
		panic(fmt.Sprintf("qp: %s: tol %g must be strictly positive", op, tol))
	}
}

// inWindow reports whether a net with cnt pins falls in the half-open
// pin-count window [minPins, maxPins).
func inWindow(cnt, minPins, maxPins int) bool {
	return cnt >= minPins && cnt < maxPins
}
