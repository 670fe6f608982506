package qp

import (
	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
	"github.com/vdumont/gplace/topology"
)

// BuildMST assembles tree forces: each edge of the rectilinear minimum
// spanning tree over a net's pin positions contributes a unit-scale
// force on both axes. Nets with a single pin are skipped even when the
// window admits them.
func BuildMST(nl *netlist.Netlist, pl *placement.Placement, tol float64, minPins, maxPins int) *SystemPair {
	checkTol("BuildMST", tol)
	sys := EmptySystems(nl, pl)
	for i := 0; i < nl.NetCnt(); i++ {
		if cnt := nl.NetPinCnt(i); !inWindow(cnt, minPins, maxPins) || cnt <= 1 {
			continue
		}
		pins := Pins2D(nl, pl, i)
		points := netPoints(nl, pl, i)
		for _, e := range topology.MST(points) {
			addPairTol(pins[e.From].X(), pins[e.To].X(), sys.X, tol, 1.0)
			addPairTol(pins[e.From].Y(), pins[e.To].Y(), sys.Y, tol, 1.0)
		}
	}
	return sys
}

// BuildRSMT assembles Steiner-tree forces: the topology builder returns
// one edge list per axis (the tree may route the axes differently), and
// each list contributes unit-scale forces on its own axis only.
func BuildRSMT(nl *netlist.Netlist, pl *placement.Placement, tol float64, minPins, maxPins int) *SystemPair {
	checkTol("BuildRSMT", tol)
	sys := EmptySystems(nl, pl)
	for i := 0; i < nl.NetCnt(); i++ {
		if cnt := nl.NetPinCnt(i); !inWindow(cnt, minPins, maxPins) || cnt <= 1 {
			continue
		}
		pins := Pins2D(nl, pl, i)
		points := netPoints(nl, pl, i)
		xEdges, yEdges := topology.RSMT(points, rsmtAccuracy)
		for _, e := range xEdges {
			addPairTol(pins[e.From].X(), pins[e.To].X(), sys.X, tol, 1.0)
		}
		for _, e := range yEdges {
			addPairTol(pins[e.From].Y(), pins[e.To].Y(), sys.Y, tol, 1.0)
		}
	}
	return sys
}
