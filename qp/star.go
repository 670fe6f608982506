package qp

import (
	"math"

	"github.com/vdumont/gplace/linsys"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// BuildStar assembles the star model: both axis systems grow by NetCnt
// auxiliary variables, and the star center of net i lives at index
// CellCnt+i. Each pin of an in-window net connects to its star center
// with weight 1/n. Nets outside the window — and degenerate nets inside
// it — get a unit diagonal on their auxiliary row so the matrix stays
// invertible. Auxiliary rows are not placement output; writeback ignores
// them.
//
// tol is accepted for signature uniformity with the other builders but
// unused: star weights are uniform, never distance-derived.
func BuildStar(nl *netlist.Netlist, pl *placement.Placement, tol float64, minPins, maxPins int) *SystemPair {
	checkTol("BuildStar", tol)
	sys := EmptySystems(nl, pl)
	sys.X.AddVariables(nl.NetCnt())
	sys.Y.AddVariables(nl.NetCnt())

	cellCnt := nl.CellCnt()
	for i := 0; i < nl.NetCnt(); i++ {
		star := cellCnt + i
		if !inWindow(nl.NetPinCnt(i), minPins, maxPins) {
			sys.X.AddTriplet(star, star, 1.0)
			sys.Y.AddTriplet(star, star, 1.0)
			continue
		}
		xs, ys := Pins1D(nl, pl, i)
		starAxis(xs, sys.X, star)
		starAxis(ys, sys.Y, star)
	}
	return sys
}

func starAxis(pins []Pin1D, L *linsys.System, star int) {
	// Degenerate net: populate the diagonal anyway to avoid a singular row.
	if len(pins) < 2 {
		L.AddTriplet(star, star, 1.0)
		return
	}
	w := 1.0 / float64(len(pins))
	// The center's position is never read (it is always movable); NaN
	// makes any accidental read blow up a selfcheck instead of hiding.
	center := Pin1D{Cell: star, Pos: math.NaN(), Offset: 0, Movable: true}
	for _, p := range pins {
		addPair(p, center, L, w)
	}
}
