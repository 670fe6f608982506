package qp

import (
	"github.com/vdumont/gplace/linsys"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// BuildClique assembles the clique model: every unordered pin pair of an
// in-window net becomes an edge of weight 1/(n−1), divided by max(tol,
// distance between the two pins). O(n²) edges per net,
// so callers window it to small nets and cover the rest with BuildStar.
func BuildClique(nl *netlist.Netlist, pl *placement.Placement, tol float64, minPins, maxPins int) *SystemPair {
	checkTol("BuildClique", tol)
	sys := EmptySystems(nl, pl)
	for i := 0; i < nl.NetCnt(); i++ {
		if !inWindow(nl.NetPinCnt(i), minPins, maxPins) {
			continue
		}
		xs, ys := Pins1D(nl, pl, i)
		cliqueAxis(xs, sys.X, tol)
		cliqueAxis(ys, sys.Y, tol)
	}
	return sys
}

func cliqueAxis(pins []Pin1D, L *linsys.System, tol float64) {
	if len(pins) < 2 {
		return
	}
	w := 1.0 / float64(len(pins)-1)
	for a := 0; a+1 < len(pins); a++ {
		for b := a + 1; b < len(pins); b++ {
			addPairTol(pins[a], pins[b], L, tol, w)
		}
	}
}
