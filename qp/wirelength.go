package qp

import (
	"math"

	"github.com/vdumont/gplace/netlist"
	"github.com/vdumont/gplace/placement"
	"github.com/vdumont/gplace/topology"
)

// HPWL returns the total half-perimeter wirelength: for each net with at
// least two pins, the width plus height of its pin bounding box.
func HPWL(nl *netlist.Netlist, pl *placement.Placement) float64 {
	var sum float64
	for i := 0; i < nl.NetCnt(); i++ {
		lo, hi := nl.NetPins(i)
		if hi-lo <= 1 {
			continue
		}
		xMin, xMax := math.Inf(1), math.Inf(-1)
		yMin, yMax := math.Inf(1), math.Inf(-1)
		for p := lo; p < hi; p++ {
			pos := pinAbs(nl, pl, p)
			xMin, xMax = math.Min(xMin, pos.X), math.Max(xMax, pos.X)
			yMin, yMax = math.Min(yMin, pos.Y), math.Max(yMax, pos.Y)
		}
		sum += (xMax - xMin) + (yMax - yMin)
	}
	return sum
}

// MSTWirelength returns the total rectilinear spanning-tree length over
// all nets — the exact wirelength under spanning-tree routing.
func MSTWirelength(nl *netlist.Netlist, pl *placement.Placement) float64 {
	var sum float64
	for i := 0; i < nl.NetCnt(); i++ {
		sum += topology.MSTLength(netPoints(nl, pl, i))
	}
	return sum
}

// RSMTWirelength returns the total Steiner-tree length over all nets,
// using the same builder accuracy as BuildRSMT.
func RSMTWirelength(nl *netlist.Netlist, pl *placement.Placement) float64 {
	var sum float64
	for i := 0; i < nl.NetCnt(); i++ {
		sum += topology.RSMTLength(netPoints(nl, pl, i), rsmtAccuracy)
	}
	return sum
}
