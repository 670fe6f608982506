package qp

import (
	"sort"

	"github.com/vdumont/gplace/linsys"
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
)

// BuildHPWLF assembles the bound-to-bound "fast" model: for each net in
// the window, every pin connects to the minimum-position pin with weight
// 1/(n−1), and every non-extreme pin additionally to the maximum-position
// pin. Ties on extreme selection break on the first pin in net order.
// Each weight is divided by max(tol, distance between the two pins).
// Concentrating edges on the extremes approximates the HPWL gradient
// with O(n) edges per net.
func BuildHPWLF(nl *netlist.Netlist, pl *placement.Placement, tol float64, minPins, maxPins int) *SystemPair {
	checkTol("BuildHPWLF", tol)
	sys := EmptySystems(nl, pl)
	for i := 0; i < nl.NetCnt(); i++ {
		if !inWindow(nl.NetPinCnt(i), minPins, maxPins) {
			continue
		}
		xs, ys := Pins1D(nl, pl, i)
		hpwlfAxis(xs, sys.X, tol)
		hpwlfAxis(ys, sys.Y, tol)
	}
	return sys
}

func hpwlfAxis(pins []Pin1D, L *linsys.System, tol float64) {
	if len(pins) < 2 {
		return
	}
	minK, maxK := 0, 0
	for k := 1; k < len(pins); k++ {
		if pins[k].Pos < pins[minK].Pos {
			minK = k
		}
		if pins[k].Pos > pins[maxK].Pos {
			maxK = k
		}
	}
	w := 1.0 / float64(len(pins)-1)
	for k := range pins {
		if k == minK {
			continue
		}
		addPairTol(pins[k], pins[minK], L, tol, w)
		// One connection between the extremes is enough.
		if k != maxK {
			addPairTol(pins[k], pins[maxK], L, tol, w)
		}
	}
}

// BuildHPWLR assembles the bound-to-bound "sorted chain" model: pins are
// sorted by position, pin k connects to pin k+2 with weight ½, and each
// extreme pin also connects to its direct neighbour with weight ½.
// Each weight is divided by max(tol, distance between the two pins).
func BuildHPWLR(nl *netlist.Netlist, pl *placement.Placement, tol float64, minPins, maxPins int) *SystemPair {
	checkTol("BuildHPWLR", tol)
	sys := EmptySystems(nl, pl)
	for i := 0; i < nl.NetCnt(); i++ {
		if !inWindow(nl.NetPinCnt(i), minPins, maxPins) {
			continue
		}
		xs, ys := Pins1D(nl, pl, i)
		hpwlrAxis(xs, sys.X, tol)
		hpwlrAxis(ys, sys.Y, tol)
	}
	return sys
}

func hpwlrAxis(pins []Pin1D, L *linsys.System, tol float64) {
	sorted := append([]Pin1D(nil), pins...)
	// Stable sort: equal positions keep net order, so the chain is
	// deterministic.
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Pos < sorted[b].Pos })
	n := len(sorted)
	for k := 0; k+2 < n; k++ {
		addPairTol(sorted[k], sorted[k+2], L, tol, 0.5)
	}
	if n > 1 {
		addPairTol(sorted[0], sorted[1], L, tol, 0.5)
		addPairTol(sorted[n-1], sorted[n-2], L, tol, 0.5)
	}
}
